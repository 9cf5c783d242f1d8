package observability

import (
	"context"
	"os"

	"quizservice/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// SetupObservability initializes tracing and logging for a service.
func SetupObservability(cfg *config.OpenTelemetryConfig, serviceName string) (trace.TracerProvider, *Logger, error) {
	if serviceName != "" {
		cfg.ServiceName = serviceName
	}

	if err := os.Setenv("OTEL_SERVICE_NAME", cfg.ServiceName); err != nil {
		return nil, nil, err
	}
	if err := os.Setenv("OTEL_SERVICE_VERSION", cfg.ServiceVersion); err != nil {
		return nil, nil, err
	}

	logger := NewLogger(cfg)

	var tp trace.TracerProvider
	if cfg.EnableTracing {
		var err error
		tp, err = InitStandardTracing(cfg)
		if err != nil {
			return nil, nil, err
		}
		otel.SetTracerProvider(tp)

		if err := InitTracing(cfg); err != nil {
			return nil, nil, err
		}

		InitGlobalTracer()

		logger.Info(context.Background(), "Tracing enabled", map[string]interface{}{"service_name": cfg.ServiceName})
	}

	return tp, logger, nil
}
