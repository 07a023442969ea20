package observability_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Finanzas-api/internal/infrastructure/observability"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
	"github.com/jhoicas/Finanzas-api/pkg/metrics"
)

func TestNotificationFailed_LogYContador(t *testing.T) {
	var buf bytes.Buffer
	obs := observability.NewNotificationObserver(logger.FromZerolog(zerolog.New(&buf)))
	before := testutil.ToFloat64(metrics.NotificationFailures.WithLabelValues("email"))

	obs.NotificationFailed(context.Background(), "email", errors.New("smtp caído"))

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.NotificationFailures.WithLabelValues("email")))
	assert.Contains(t, buf.String(), "smtp caído")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
