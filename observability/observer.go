package observability

import "time"

// OperationContext carries the details of a single client operation as seen
// by an Observer. Every component in this library reports operations using
// the same structure so that a single observer implementation can cover
// metrics, tracing, and audit logging at once.
type OperationContext struct {
	// Component identifies the reporting package, e.g. "goredis" or "redigo".
	Component string

	// Operation is the lowercase command name, e.g. "get", "xadd", "publish".
	Operation string

	// Resource is the primary Redis key, stream, or channel the operation
	// touched. May be empty for server-wide commands.
	Resource string

	// SubResource carries additional addressing context such as a hash
	// field, consumer group, or consumer name.
	SubResource string

	// Duration is the wall-clock time the operation took, including any
	// time spent waiting for a pooled connection.
	Duration time.Duration

	// Error is the error returned by the operation, or nil on success.
	Error error

	// Size is an operation-specific size indicator: bytes for payloads,
	// element counts for multi-value results. Zero when not applicable.
	Size int64

	// Metadata holds optional operation-specific key-value pairs,
	// e.g. {"ttl": "60s"} for SET with expiry.
	Metadata map[string]interface{}
}

// Observer receives operation events from instrumented clients.
//
// Implementations must be safe for concurrent use; clients invoke
// ObserveOperation on the calling goroutine and do not serialize calls.
//
//go:generate mockgen -source=observer.go -destination=mocks/observer.go -package=mocks
type Observer interface {
	// ObserveOperation is called once per completed operation.
	ObserveOperation(ctx OperationContext)
}
