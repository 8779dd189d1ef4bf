package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/stackbound/rediskit/connection"
)

// ErrNotAcquired is returned by Acquire when another holder owns the lock.
var ErrNotAcquired = errors.New("lock: not acquired")

// ErrNotHeld is returned by Release and Refresh when the lock is no longer
// held by this token, either because it expired or because another process
// took it over.
var ErrNotHeld = errors.New("lock: not held")

// releaseScript deletes the lock key only when it still carries our token,
// so a lock that expired and was re-acquired by someone else is never
// released by the previous holder.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end`

// refreshScript extends the TTL only when the key still carries our token.
const refreshScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
else
	return 0
end`

// Store is the subset of connection.Connection the lock needs. Both driver
// clients satisfy it.
type Store interface {
	connection.StringCommands
	connection.ScriptingCommands
}

// Lock is a single-instance distributed lock backed by one Redis server.
// The lock value is a random token, and release and refresh are guarded by
// server-side scripts that compare the token before acting, so only the
// current holder can mutate the lock.
//
// This is not the multi-node Redlock algorithm; with a single Redis server
// (or a failover setup that may lose writes) the usual caveats apply.
type Lock struct {
	store Store
	key   string
	token string
	ttl   time.Duration
}

// New creates a lock on key with the given TTL. The lock is not acquired
// until Acquire is called.
func New(store Store, key string, ttl time.Duration) *Lock {
	return &Lock{
		store: store,
		key:   key,
		ttl:   ttl,
	}
}

// Acquire attempts to take the lock. It returns ErrNotAcquired when the key
// is already held, without blocking or retrying.
func (l *Lock) Acquire(ctx context.Context) error {
	token, err := randomToken()
	if err != nil {
		return fmt.Errorf("lock: generating token: %w", err)
	}

	ok, err := l.store.SetNX(ctx, l.key, token, l.ttl)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAcquired
	}

	l.token = token
	return nil
}

// AcquireWithRetry attempts to take the lock until it succeeds, the context
// is cancelled, or the wait budget runs out. It polls at the given interval.
func (l *Lock) AcquireWithRetry(ctx context.Context, wait, interval time.Duration) error {
	deadline := time.Now().Add(wait)

	for {
		err := l.Acquire(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrNotAcquired) {
			return err
		}
		if time.Now().After(deadline) {
			return ErrNotAcquired
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Release gives the lock up. It returns ErrNotHeld when the key no longer
// carries this lock's token.
func (l *Lock) Release(ctx context.Context) error {
	if l.token == "" {
		return ErrNotHeld
	}

	result, err := l.store.Eval(ctx, releaseScript, []string{l.key}, l.token)
	if err != nil {
		return err
	}

	l.token = ""
	if deleted, ok := result.(int64); !ok || deleted == 0 {
		return ErrNotHeld
	}
	return nil
}

// Refresh extends the lock's TTL back to its full duration. It returns
// ErrNotHeld when the key no longer carries this lock's token.
func (l *Lock) Refresh(ctx context.Context) error {
	if l.token == "" {
		return ErrNotHeld
	}

	result, err := l.store.Eval(ctx, refreshScript, []string{l.key}, l.token, l.ttl.Milliseconds())
	if err != nil {
		return err
	}

	if extended, ok := result.(int64); !ok || extended == 0 {
		l.token = ""
		return ErrNotHeld
	}
	return nil
}

// Token returns the current holder token, or empty when the lock is not
// held by this instance.
func (l *Lock) Token() string {
	return l.token
}

func randomToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
