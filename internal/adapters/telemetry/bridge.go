package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/fuse/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor by writing finished spans to a logger.
// Every span is logged at debug level. Errors recorded on a span are not repeated;
// they reach the user through whoever returned them.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a LogBridge writing to logger.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{
		logger: logger,
	}
}

// NewTracerProvider returns a tracer provider whose spans end up in logger.
func NewTracerProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogBridge(logger)))
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration and attributes.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	parts := []string{fmt.Sprintf("%s took %s", s.Name(), s.EndTime().Sub(s.StartTime()))}
	for _, kv := range s.Attributes() {
		parts = append(parts, string(kv.Key)+"="+kv.Value.Emit())
	}
	msg := strings.Join(parts, " ")

	if s.Status().Code == codes.Error {
		msg += " (failed)"
	}
	b.logger.Debug(msg)
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}
