package tracer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/stackbound/rediskit/connection"
	"github.com/stackbound/rediskit/observability"
)

// CommandObserver turns command events from the driver adapters into spans.
// Events arrive after the command finished, so the span is backdated to the
// command's start and ended at the observation time.
type CommandObserver struct {
	tracer *Tracer
}

var _ observability.Observer = (*CommandObserver)(nil)

// NewCommandObserver creates a span-emitting observer on top of the tracer.
func NewCommandObserver(t *Tracer) *CommandObserver {
	return &CommandObserver{tracer: t}
}

// ObserveOperation records one finished command as a span.
func (o *CommandObserver) ObserveOperation(opCtx observability.OperationContext) {
	end := time.Now()
	start := end.Add(-opCtx.Duration)

	tracer := o.tracer.tracer.Tracer("")
	_, span := tracer.Start(context.Background(), opCtx.Component+"."+opCtx.Operation,
		traceSpan.WithTimestamp(start),
		traceSpan.WithSpanKind(traceSpan.SpanKindClient),
	)

	attrs := []attribute.KeyValue{
		attribute.String("db.system", "redis"),
		attribute.String("db.operation", opCtx.Operation),
	}
	if opCtx.Resource != "" {
		attrs = append(attrs, attribute.String("db.redis.key", opCtx.Resource))
	}
	if opCtx.SubResource != "" {
		attrs = append(attrs, attribute.String("db.redis.subresource", opCtx.SubResource))
	}
	if opCtx.Size > 0 {
		attrs = append(attrs, attribute.Int64("db.response.size", opCtx.Size))
	}
	span.SetAttributes(attrs...)

	if opCtx.Error != nil && !connection.IsNilError(opCtx.Error) {
		span.RecordError(opCtx.Error)
		span.SetStatus(codes.Error, opCtx.Error.Error())
	}

	span.End(traceSpan.WithTimestamp(end))
}
