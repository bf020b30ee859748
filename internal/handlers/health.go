package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const probeTimeout = 2 * time.Second

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// AlertBacklog сообщает число сообщений оператору, ожидающих доставки
type AlertBacklog interface {
	Pending() int
}

// HealthHandler отвечает на пробы живости и готовности
type HealthHandler struct {
	db     Pinger
	alerts AlertBacklog
	logger *zap.Logger
}

// NewHealthHandler создает новый HealthHandler. alerts может быть nil.
func NewHealthHandler(db Pinger, alerts AlertBacklog, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, alerts: alerts, logger: logger}
}

type healthResponse struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	PendingAlerts int    `json:"pendingAlerts"`
}

func (h *HealthHandler) probe(ctx context.Context) (healthResponse, error) {
	resp := healthResponse{Status: "ok", Database: "ok"}
	if h.alerts != nil {
		resp.PendingAlerts = h.alerts.Pending()
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "degraded"
		resp.Database = "unavailable"
		return resp, err
	}

	return resp, nil
}

// Health возвращает состояние сервиса; 503, если база недоступна
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp, err := h.probe(r.Context())
	if err != nil {
		h.logger.Warn("health check: database unavailable", zap.Error(err))
		writeJSON(w, h.logger, http.StatusServiceUnavailable, resp)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

// Ready сообщает, готов ли сервис принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := h.probe(r.Context()); err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		writeJSON(w, h.logger, http.StatusServiceUnavailable, messageResponse{Message: "Service Unavailable"})
		return
	}

	writeJSON(w, h.logger, http.StatusOK, messageResponse{Message: "OK"})
}
