package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stackbound/rediskit/connection"
	"github.com/stackbound/rediskit/observability"
)

// CommandObserver translates command events from the driver adapters into
// Prometheus metrics. It implements observability.Observer and is safe for
// concurrent use.
type CommandObserver struct {
	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	commandErrors   *prometheus.CounterVec
}

var _ observability.Observer = (*CommandObserver)(nil)

// NewCommandObserver creates a CommandObserver and registers its collectors
// with the given Metrics instance.
func NewCommandObserver(m *Metrics) *CommandObserver {
	return &CommandObserver{
		commandsTotal: m.CreateCounter(
			"redis_commands_total",
			"Total number of Redis commands executed",
			[]string{"component", "operation"},
		),
		commandDuration: m.CreateHistogram(
			"redis_command_duration_seconds",
			"Duration of Redis commands in seconds",
			[]string{"component", "operation"},
			prometheus.DefBuckets,
		),
		commandErrors: m.CreateCounter(
			"redis_command_errors_total",
			"Total number of Redis commands that returned an error",
			[]string{"component", "operation"},
		),
	}
}

// ObserveOperation records one command execution. Nil-miss results
// (connection.Nil) count as successes; they are replies, not failures.
func (o *CommandObserver) ObserveOperation(opCtx observability.OperationContext) {
	labels := []string{opCtx.Component, opCtx.Operation}

	o.commandsTotal.WithLabelValues(labels...).Inc()
	o.commandDuration.WithLabelValues(labels...).Observe(opCtx.Duration.Seconds())

	if opCtx.Error != nil && !connection.IsNilError(opCtx.Error) {
		o.commandErrors.WithLabelValues(labels...).Inc()
	}
}
