package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var orderOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "linecoffee",
		Name:      "order_operations_total",
		Help:      "Количество операций с заказами по результату.",
	},
	[]string{"operation", "status"},
)

var alertsDispatched = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "linecoffee",
		Name:      "operator_alerts_total",
		Help:      "Количество сообщений оператору по результату постановки в очередь.",
	},
	[]string{"kind", "status"},
)

// observe учитывает результат операции с заказом
func observe(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	orderOperations.WithLabelValues(operation, status).Inc()
}
