// Package tracer provides distributed tracing functionality using OpenTelemetry.
//
// The tracer package offers a simplified interface for implementing distributed
// tracing in applications built on this library. It abstracts away the
// OpenTelemetry setup ceremony and provides a clean API for creating spans,
// recording errors, and propagating trace context across service boundaries.
// It also exposes a CommandObserver that turns Redis command events emitted by
// the goredis and redigo adapters into client spans.
//
// Core Features:
//   - Simple span creation and management
//   - Error recording and status tracking
//   - Customizable span attributes
//   - Cross-service trace context propagation via W3C trace-context headers
//   - Per-command spans for Redis operations through the observer hook
//
// Basic Usage:
//
//	import (
//		"context"
//
//		"github.com/stackbound/rediskit/logger"
//		"github.com/stackbound/rediskit/tracer"
//	)
//
//	log := logger.NewLoggerClient(logger.Config{Level: "info"})
//
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "checkout",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(context.Background(), "process-order")
//	defer span.End()
//
//	tracerClient.SetAttributes(span, map[string]interface{}{
//		"order.id": orderID,
//	})
//
//	if err := process(ctx); err != nil {
//		tracerClient.RecordErrorOnSpan(span, err)
//	}
//
// Tracing Redis commands:
//
//	client, _ := goredis.NewClient(cfg)
//	client = client.WithObserver(tracer.NewCommandObserver(tracerClient))
//
// Every command executed through the client now produces a span named
// "<component>.<operation>" (for example "goredis.get") carrying db.system,
// db.operation and db.redis.key attributes. Key-miss replies are not recorded
// as span errors.
//
// Context Propagation:
//
//	// Service A: inject the current trace context into a carrier
//	carrier := tracerClient.GetCarrier(ctx)
//	payload.TraceHeaders = carrier
//
//	// Service B: continue the trace from the received carrier
//	ctx = tracerClient.SetCarrierOnContext(context.Background(), payload.TraceHeaders)
//	ctx, span := tracerClient.StartSpan(ctx, "handle-order")
//
// Export is controlled by Config.EnableExport. When enabled, spans are sent
// through the OTLP HTTP exporter; the collector endpoint is read from the
// standard OTEL_EXPORTER_OTLP_* environment variables. When disabled, spans
// are still created (so attributes and context propagation keep working) but
// nothing leaves the process.
//
// For fx applications, use FXModule which wires the client, provides the
// command observer, and shuts the provider down on application stop so
// buffered spans are flushed.
package tracer
