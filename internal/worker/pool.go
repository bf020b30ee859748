package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/avc/linecoffee/internal/service"
	"go.uber.org/zap"
)

const sendTimeout = 15 * time.Second

// Pool представляет пул воркеров для доставки сообщений оператору
type Pool struct {
	workers int
	queue   chan *domain.OperatorAlert
	sender  domain.AlertSender
	logger  *zap.Logger
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var _ domain.AlertDispatcher = (*Pool)(nil)

// NewPool создает новый worker pool
func NewPool(sender domain.AlertSender, workers, queueSize int, logger *zap.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pool{
		workers: workers,
		queue:   make(chan *domain.OperatorAlert, queueSize),
		sender:  sender,
		logger:  logger,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Stop закрывает очередь и ждет, пока воркеры доставят оставшиеся сообщения
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

// Dispatch ставит сообщение в очередь без блокировки.
// Если очередь заполнена или пул остановлен, сообщение отбрасывается.
func (p *Pool) Dispatch(alert *domain.OperatorAlert) bool {
	if alert == nil {
		return false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.logger.Warn("alert pool is stopped, dropping alert", zap.String("kind", string(alert.Kind)))
		return false
	}

	select {
	case p.queue <- alert:
		return true
	default:
		p.logger.Warn("alert queue is full, dropping alert", zap.String("kind", string(alert.Kind)))
		return false
	}
}

// Pending возвращает число сообщений в очереди
func (p *Pool) Pending() int {
	return len(p.queue)
}

// worker доставляет сообщения из очереди до ее закрытия
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("alert worker started", zap.Int("worker_id", id))

	for alert := range p.queue {
		p.deliver(ctx, alert)
	}

	p.logger.Info("alert worker stopped", zap.Int("worker_id", id))
}

// deliver отправляет одно сообщение. Ошибки только логируются.
func (p *Pool) deliver(ctx context.Context, alert *domain.OperatorAlert) {
	// Оставшиеся сообщения доставляются и после отмены родительского контекста
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	fields := []zap.Field{zap.String("kind", string(alert.Kind))}
	if alert.Order != nil {
		fields = append(fields, zap.Int64("order_id", alert.Order.ID))
	}

	err := p.sender.Send(sendCtx, alert)
	if err == nil {
		p.logger.Debug("alert delivered", fields...)
		return
	}

	var rateLimitErr *service.RateLimitError
	if errors.As(err, &rateLimitErr) {
		p.logger.Warn("alert channel rate limit exceeded",
			append(fields, zap.Duration("retry_after", rateLimitErr.RetryAfter))...,
		)
		return
	}

	p.logger.Error("failed to deliver alert", append(fields, zap.Error(err))...)
}
