package otel

import (
	"context"

	"chefbook/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc/credentials/insecure"
)

type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
}

type otelImpl struct {
	tracerProvider *trace.TracerProvider
}

func (o *otelImpl) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := o.tracerProvider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// Shutdown flushes pending spans and stops the exporter.
func Shutdown(ctx context.Context, o Otel) error {
	impl, ok := o.(*otelImpl)
	if !ok {
		return nil
	}

	return impl.tracerProvider.Shutdown(ctx)
}

// New builds the tracer provider. Without an OTLP endpoint spans are recorded but never exported.
func New(config *config.Config) Otel {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(config.App.Name),
	)

	endpoint := config.External.Otel.Endpoint
	if endpoint == "" {
		log.Warn().Msg("OTLP endpoint not configured, traces will not be exported")

		return &otelImpl{tracerProvider: trace.NewTracerProvider(trace.WithResource(res))}
	}

	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create OTLP exporter")
	}

	traceProvider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)

	otel.SetTracerProvider(traceProvider)

	log.Info().Str("endpoint", endpoint).Msg("Tracing initialized")

	return &otelImpl{tracerProvider: traceProvider}
}
