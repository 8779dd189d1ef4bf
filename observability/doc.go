// Package observability defines the Observer contract shared by all client
// packages in this library.
//
// Client packages (goredis, redigo) report every instrumented operation as an
// OperationContext. Concrete observers turn those events into Prometheus
// metrics (package metrics), OpenTelemetry spans (package tracer), or
// anything else the host application needs.
//
// Observers are optional: a client with no observer configured skips
// reporting entirely, so the hot path carries no observability cost unless
// asked for.
//
// Example:
//
//	type logObserver struct{ log *logger.Logger }
//
//	func (o *logObserver) ObserveOperation(op observability.OperationContext) {
//		o.log.Debug("redis operation", op.Error, map[string]interface{}{
//			"operation": op.Operation,
//			"resource":  op.Resource,
//			"duration":  op.Duration.String(),
//		})
//	}
//
//	client.WithObserver(&logObserver{log: log})
package observability
