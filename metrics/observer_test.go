package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/stackbound/rediskit/connection"
	"github.com/stackbound/rediskit/observability"
)

func newTestObserver() *CommandObserver {
	m := NewMetrics(Config{ServiceName: "test"})
	return NewCommandObserver(m)
}

func TestObserveOperationCountsCommands(t *testing.T) {
	obs := newTestObserver()

	for i := 0; i < 3; i++ {
		obs.ObserveOperation(observability.OperationContext{
			Component: "goredis",
			Operation: "get",
			Duration:  5 * time.Millisecond,
		})
	}

	count := testutil.ToFloat64(obs.commandsTotal.WithLabelValues("goredis", "get"))
	assert.Equal(t, float64(3), count)

	errCount := testutil.ToFloat64(obs.commandErrors.WithLabelValues("goredis", "get"))
	assert.Equal(t, float64(0), errCount)
}

func TestObserveOperationCountsErrors(t *testing.T) {
	obs := newTestObserver()

	obs.ObserveOperation(observability.OperationContext{
		Component: "redigo",
		Operation: "set",
		Error:     errors.New("connection refused"),
	})

	assert.Equal(t, float64(1), testutil.ToFloat64(obs.commandsTotal.WithLabelValues("redigo", "set")))
	assert.Equal(t, float64(1), testutil.ToFloat64(obs.commandErrors.WithLabelValues("redigo", "set")))
}

func TestObserveOperationNilMissIsNotAnError(t *testing.T) {
	obs := newTestObserver()

	obs.ObserveOperation(observability.OperationContext{
		Component: "goredis",
		Operation: "get",
		Error:     connection.Nil,
	})

	assert.Equal(t, float64(1), testutil.ToFloat64(obs.commandsTotal.WithLabelValues("goredis", "get")))
	assert.Equal(t, float64(0), testutil.ToFloat64(obs.commandErrors.WithLabelValues("goredis", "get")))
}

func TestObserverSeparatesComponents(t *testing.T) {
	obs := newTestObserver()

	obs.ObserveOperation(observability.OperationContext{Component: "goredis", Operation: "get"})
	obs.ObserveOperation(observability.OperationContext{Component: "redigo", Operation: "get"})

	assert.Equal(t, float64(1), testutil.ToFloat64(obs.commandsTotal.WithLabelValues("goredis", "get")))
	assert.Equal(t, float64(1), testutil.ToFloat64(obs.commandsTotal.WithLabelValues("redigo", "get")))
}
