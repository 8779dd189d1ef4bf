package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/stackbound/rediskit/connection"
)

// allowScript counts the call and sets the window expiry atomically. The
// expiry is only set when the counter is fresh, so the window does not slide.
const allowScript = `local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count`

// Store is the subset of connection.Connection the limiter needs. Both
// driver clients satisfy it.
type Store interface {
	connection.ScriptingCommands
}

// Result describes the outcome of one Allow call.
type Result struct {
	// Allowed reports whether the call fits within the current window.
	Allowed bool

	// Count is the number of calls seen in the current window, including
	// this one.
	Count int64

	// Remaining is how many more calls the window accepts. Zero when the
	// limit is reached or exceeded.
	Remaining int64
}

// Limiter is a fixed-window rate limiter. Each window is a counter key with
// a TTL equal to the window length; the counter and its expiry are managed
// by a single server-side script, so concurrent callers never race on the
// window setup.
type Limiter struct {
	store  Store
	limit  int64
	window time.Duration
}

// New creates a limiter allowing limit calls per window.
func New(store Store, limit int64, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		limit:  limit,
		window: window,
	}
}

// Allow counts one call against key and reports whether it is within the
// limit. The call is counted even when rejected, which keeps a flooding
// client locked out for the full window.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	reply, err := l.store.Eval(ctx, allowScript, []string{key}, l.window.Milliseconds())
	if err != nil {
		return Result{}, err
	}

	count, ok := reply.(int64)
	if !ok {
		return Result{}, fmt.Errorf("ratelimit: unexpected script reply type %T", reply)
	}

	result := Result{
		Allowed: count <= l.limit,
		Count:   count,
	}
	if remaining := l.limit - count; remaining > 0 {
		result.Remaining = remaining
	}
	return result, nil
}
