package trace

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/shadcn-remover/shadcn-remover/internal/build"
)

const tracerName = "github.com/shadcn-remover/shadcn-remover/trace"

// NewSpan starts a span named name using the globally registered tracer provider, see Init.
func NewSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// SpanError records err on span, marks the span as failed and returns err.
func SpanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// CaptureError records err on the span stored in ctx and returns err.
func CaptureError(ctx context.Context, err error) error {
	span := trace.SpanFromContext(ctx)
	return SpanError(span, err)
}

// Shutdown flushes and releases a tracing resource.
type Shutdown func()

// Init registers the global tracer provider.
// Finished spans are written as debug messages, which pterm only prints once debug output is enabled.
func Init(ctx context.Context) ([]Shutdown, error) {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("shadcn-remover"),
			semconv.ServiceVersion(build.Version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create trace resource: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(newDebugProcessor(nil)),
		sdktrace.WithResource(r),
	)
	otel.SetTracerProvider(tracerProvider)

	return []Shutdown{func() { _ = tracerProvider.Shutdown(ctx) }}, nil
}

var _ sdktrace.SpanProcessor = (*debugProcessor)(nil)

// debugProcessor prints every finished span through pterm.Debug.
type debugProcessor struct {
	printer *pterm.PrefixPrinter
}

// newDebugProcessor returns a processor writing to w, or to pterm's default output if w is nil.
func newDebugProcessor(w io.Writer) *debugProcessor {
	printer := pterm.Debug
	if w != nil {
		printer = *printer.WithWriter(w)
	}
	return &debugProcessor{printer: &printer}
}

func (p *debugProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *debugProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	msg := fmt.Sprintf("trace: %s took %s", s.Name(), s.EndTime().Sub(s.StartTime()))
	if s.Status().Code == codes.Error {
		msg += fmt.Sprintf(" (error: %s)", s.Status().Description)
	}
	p.printer.Println(msg)
}

func (p *debugProcessor) Shutdown(context.Context) error { return nil }

func (p *debugProcessor) ForceFlush(context.Context) error { return nil }
