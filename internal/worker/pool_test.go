package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avc/linecoffee/internal/domain"
	domainmocks "github.com/avc/linecoffee/internal/domain/mocks"
	"github.com/avc/linecoffee/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func placedAlert(id int64) *domain.OperatorAlert {
	return &domain.OperatorAlert{
		Kind:  domain.AlertOrderPlaced,
		Order: &domain.Order{ID: id, UserID: 1},
	}
}

func TestPool_DeliversQueuedAlerts(t *testing.T) {
	sender := domainmocks.NewAlertSenderMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(sender, 2, 10, logger)

	var delivered atomic.Int32
	sender.EXPECT().Send(mock.Anything, mock.AnythingOfType("*domain.OperatorAlert")).
		Run(func(args mock.Arguments) { delivered.Add(1) }).
		Return(nil).Times(3)

	// Сообщения, поставленные до запуска, доставляются после Start
	for i := int64(1); i <= 3; i++ {
		require.True(t, pool.Dispatch(placedAlert(i)))
	}

	pool.Start(context.Background())
	pool.Stop()

	assert.Equal(t, int32(3), delivered.Load())
}

func TestPool_DispatchDropsWhenQueueIsFull(t *testing.T) {
	sender := domainmocks.NewAlertSenderMock(t)

	pool := NewPool(sender, 1, 1, zap.NewNop())

	assert.True(t, pool.Dispatch(placedAlert(1)))
	assert.False(t, pool.Dispatch(placedAlert(2)))
	assert.Equal(t, 1, pool.Pending())

	select {
	case alert := <-pool.queue:
		assert.Equal(t, int64(1), alert.Order.ID)
	case <-time.After(100 * time.Millisecond):
		t.Error("expected alert in queue, got timeout")
	}
}

func TestPool_DispatchAfterStop(t *testing.T) {
	pool := NewPool(domainmocks.NewAlertSenderMock(t), 1, 10, zap.NewNop())

	pool.Start(context.Background())
	pool.Stop()

	assert.False(t, pool.Dispatch(placedAlert(1)))
	// Повторная остановка безопасна
	pool.Stop()
}

func TestPool_DispatchNil(t *testing.T) {
	pool := NewPool(domainmocks.NewAlertSenderMock(t), 1, 10, zap.NewNop())

	assert.False(t, pool.Dispatch(nil))
}

func TestPool_Deliver(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "Success", err: nil},
		{name: "Rate limited", err: service.NewRateLimitError(time.Minute)},
		{name: "Channel error", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := domainmocks.NewAlertSenderMock(t)
			pool := NewPool(sender, 1, 1, zap.NewNop())

			alert := placedAlert(42)
			// Ошибка не повторяется: ровно одна попытка
			sender.EXPECT().Send(mock.Anything, alert).Return(tt.err).Once()

			pool.deliver(context.Background(), alert)
		})
	}
}

func TestPool_DeliverAfterCancel(t *testing.T) {
	sender := domainmocks.NewAlertSenderMock(t)
	pool := NewPool(sender, 1, 1, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	alert := placedAlert(7)
	sender.EXPECT().Send(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), alert).Return(nil).Once()

	pool.deliver(ctx, alert)
}
