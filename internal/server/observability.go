package server

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nextapp/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-nextapp/internal/app/observability/tracer"
)

// ObservabilityShutdownFunc is the function type returned by InitObservability
type ObservabilityShutdownFunc func(context.Context) error

// InitObservability initializes OpenTelemetry and application metrics
func InitObservability(serviceName, metricsAddr, otlpEndpoint string, logger *zap.Logger) (ObservabilityShutdownFunc, error) {
	otelShutdown, err := tracer.InitOtelProviders(serviceName, metricsAddr, otlpEndpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize OpenTelemetry")
	}

	metrics.InitAppMetrics()
	logger.Info("Observability initialized",
		zap.String("metrics_endpoint", metricsAddr+"/metrics"),
		zap.Bool("trace_export", otlpEndpoint != ""))

	return otelShutdown, nil
}
