package lock

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackbound/rediskit/connection"
)

// fakeStore implements the SETNX and token-guarded script semantics the
// lock relies on, over an in-memory map.
type fakeStore struct {
	connection.StringCommands
	connection.ScriptingCommands

	mu   sync.Mutex
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (f *fakeStore) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; ok {
		return false, nil
	}
	f.data[key] = value.(string)
	return true, nil
}

func (f *fakeStore) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := keys[0]
	token := args[0].(string)

	switch script {
	case releaseScript:
		if f.data[key] == token {
			delete(f.data, key)
			return int64(1), nil
		}
		return int64(0), nil
	case refreshScript:
		if f.data[key] == token {
			return int64(1), nil
		}
		return int64(0), nil
	default:
		return nil, fmt.Errorf("unexpected script")
	}
}

func (f *fakeStore) get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeStore) set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}

func (f *fakeStore) del(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
}

func TestAcquireAndRelease(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	l := New(store, "jobs:report", time.Minute)
	require.NoError(t, l.Acquire(ctx))
	assert.NotEmpty(t, l.Token())

	stored, ok := store.get("jobs:report")
	require.True(t, ok)
	assert.Equal(t, l.Token(), stored)

	require.NoError(t, l.Release(ctx))
	assert.Empty(t, l.Token())

	_, ok = store.get("jobs:report")
	assert.False(t, ok)
}

func TestAcquireContention(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	first := New(store, "jobs:report", time.Minute)
	require.NoError(t, first.Acquire(ctx))

	second := New(store, "jobs:report", time.Minute)
	assert.ErrorIs(t, second.Acquire(ctx), ErrNotAcquired)

	// tokens differ per holder
	require.NoError(t, first.Release(ctx))
	require.NoError(t, second.Acquire(ctx))
	assert.NotEqual(t, first.Token(), second.Token())
}

func TestReleaseAfterTakeover(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	l := New(store, "jobs:report", time.Minute)
	require.NoError(t, l.Acquire(ctx))

	// simulate expiry plus re-acquisition by someone else
	store.set("jobs:report", "someone-else")

	assert.ErrorIs(t, l.Release(ctx), ErrNotHeld)

	// the other holder's lock survives
	stored, ok := store.get("jobs:report")
	require.True(t, ok)
	assert.Equal(t, "someone-else", stored)
}

func TestReleaseWithoutAcquire(t *testing.T) {
	l := New(newFakeStore(), "jobs:report", time.Minute)
	assert.ErrorIs(t, l.Release(context.Background()), ErrNotHeld)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	l := New(store, "jobs:report", time.Minute)
	require.NoError(t, l.Acquire(ctx))
	require.NoError(t, l.Refresh(ctx))

	// expiry between refreshes drops the hold
	store.del("jobs:report")
	assert.ErrorIs(t, l.Refresh(ctx), ErrNotHeld)
	assert.Empty(t, l.Token())
}

func TestAcquireWithRetry(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	holder := New(store, "jobs:report", time.Minute)
	require.NoError(t, holder.Acquire(ctx))

	released := make(chan struct{})
	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = holder.Release(ctx)
		close(released)
	}()

	waiter := New(store, "jobs:report", time.Minute)
	require.NoError(t, waiter.AcquireWithRetry(ctx, 5*time.Second, 10*time.Millisecond))
	<-released
	assert.NotEmpty(t, waiter.Token())
}

func TestAcquireWithRetryTimeout(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	holder := New(store, "jobs:report", time.Minute)
	require.NoError(t, holder.Acquire(ctx))

	waiter := New(store, "jobs:report", time.Minute)
	err := waiter.AcquireWithRetry(ctx, 50*time.Millisecond, 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrNotAcquired)
}

func TestAcquireWithRetryCancelled(t *testing.T) {
	store := newFakeStore()

	holder := New(store, "jobs:report", time.Minute)
	require.NoError(t, holder.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	waiter := New(store, "jobs:report", time.Minute)
	err := waiter.AcquireWithRetry(ctx, time.Minute, 10*time.Millisecond)
	assert.ErrorIs(t, err, context.Canceled)
}
