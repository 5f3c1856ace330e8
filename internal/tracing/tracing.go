package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/eventdesk/eventdesk-api/internal/config"
)

// Init wires an OTLP/gRPC trace exporter and installs the tracer provider
// globally. The returned func flushes and shuts the provider down.
func Init(ctx context.Context, conf *config.TracingConfig) (func(), error) {
	dialCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(dialCtx, conf.OTLPEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("grpc.DialContext -> %w", err)
	}

	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("otlptracegrpc.New -> %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(provider)

	zap.L().Info("tracing enabled",
		zap.String("endpoint", conf.OTLPEndpoint),
		zap.String("service", conf.ServiceName),
	)

	return func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("failed to shut down tracer provider", zap.Error(err))
		}
		_ = conn.Close()
	}, nil
}
