package we

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/credentials"
)

type Exporter string

const (
	ExporterNone      Exporter = "none"
	ExporterConsole   Exporter = "console"
	ExporterHoneycomb Exporter = "honeycomb"
	ExporterJaeger    Exporter = "jaeger"
)

type TracingOptions struct {
	Exporter         Exporter
	ServiceName      string
	HoneycombTeam    string
	HoneycombDataset string
	JaegerEndpoint   string
}

func ConsoleExporter() (trace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

func HoneycombExporter(ctx context.Context, team string, dataset string) (*otlptrace.Exporter, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint("api.honeycomb.io:443"),
		otlptracegrpc.WithHeaders(map[string]string{
			"x-honeycomb-team":    team,
			"x-honeycomb-dataset": dataset,
		}),
		otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")),
	}

	client := otlptracegrpc.NewClient(opts...)
	return otlptrace.New(ctx, client)
}

func JaegerExporter(endpoint string) (*jaeger.Exporter, error) {
	return jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
}

func spanExporter(ctx context.Context, options TracingOptions) (trace.SpanExporter, error) {
	switch options.Exporter {
	case ExporterConsole:
		return ConsoleExporter()
	case ExporterHoneycomb:
		return HoneycombExporter(ctx, options.HoneycombTeam, options.HoneycombDataset)
	case ExporterJaeger:
		return JaegerExporter(options.JaegerEndpoint)
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", options.Exporter)
	}
}

// NewTracerProvider installs a global tracer provider for the configured
// exporter. With ExporterNone the global no-op provider is left in place. The
// returned cleanup flushes and stops the provider.
func NewTracerProvider(ctx context.Context, options TracingOptions) (*trace.TracerProvider, func(), error) {
	if options.Exporter == "" || options.Exporter == ExporterNone {
		return nil, func() {}, nil
	}

	exporter, err := spanExporter(ctx, options)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create span exporter")
	}

	provider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(resource.NewSchemaless(attribute.String("service.name", options.ServiceName))),
	)
	otel.SetTracerProvider(provider)

	return provider, func() {
		_ = provider.Shutdown(context.Background())
	}, nil
}
