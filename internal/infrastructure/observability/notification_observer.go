// Package observability reporta fallos de notificaciones best-effort en logs y métricas.
package observability

import (
	"context"

	"github.com/jhoicas/Finanzas-api/pkg/logger"
	"github.com/jhoicas/Finanzas-api/pkg/metrics"
)

// NotificationObserver implementa auth.NotificationObserver.
type NotificationObserver struct {
	log *logger.Logger
}

func NewNotificationObserver(log *logger.Logger) *NotificationObserver {
	return &NotificationObserver{log: log}
}

// NotificationFailed registra un warning e incrementa finanzas_notifications_failures_total{channel}.
func (o *NotificationObserver) NotificationFailed(ctx context.Context, channel string, err error) {
	metrics.NotificationFailures.WithLabelValues(channel).Inc()
	o.log.Warn().Str("channel", channel).Err(err).Msg("notificación no entregada")
}
