package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackbound/rediskit/connection"
)

// fakeStore counts script calls per key, mimicking the INCR the window
// script performs.
type fakeStore struct {
	connection.ScriptingCommands

	mu     sync.Mutex
	counts map[string]int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{counts: map[string]int64{}}
}

func (f *fakeStore) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[keys[0]]++
	return f.counts[keys[0]], nil
}

func (f *fakeStore) reset(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.counts, key)
}

func TestAllowWithinLimit(t *testing.T) {
	ctx := context.Background()
	limiter := New(newFakeStore(), 3, time.Minute)

	for i := int64(1); i <= 3; i++ {
		res, err := limiter.Allow(ctx, "api:user-1")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, i, res.Count)
		assert.Equal(t, 3-i, res.Remaining)
	}
}

func TestAllowRejectsOverLimit(t *testing.T) {
	ctx := context.Background()
	limiter := New(newFakeStore(), 2, time.Minute)

	for i := 0; i < 2; i++ {
		res, err := limiter.Allow(ctx, "api:user-1")
		require.NoError(t, err)
		require.True(t, res.Allowed)
	}

	res, err := limiter.Allow(ctx, "api:user-1")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(3), res.Count)
	assert.Equal(t, int64(0), res.Remaining)

	// rejected calls still count toward the window
	res, err = limiter.Allow(ctx, "api:user-1")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(4), res.Count)
}

func TestAllowKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	limiter := New(newFakeStore(), 1, time.Minute)

	res, err := limiter.Allow(ctx, "api:user-1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = limiter.Allow(ctx, "api:user-2")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = limiter.Allow(ctx, "api:user-1")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
}

func TestAllowAfterWindowReset(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	limiter := New(store, 1, time.Minute)

	res, err := limiter.Allow(ctx, "api:user-1")
	require.NoError(t, err)
	require.True(t, res.Allowed)

	res, err = limiter.Allow(ctx, "api:user-1")
	require.NoError(t, err)
	require.False(t, res.Allowed)

	// window expiry clears the counter
	store.reset("api:user-1")

	res, err = limiter.Allow(ctx, "api:user-1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, int64(1), res.Count)
}

func TestAllowUnexpectedReplyType(t *testing.T) {
	limiter := New(&stringStore{}, 1, time.Minute)

	_, err := limiter.Allow(context.Background(), "api:user-1")
	assert.Error(t, err)
}

type stringStore struct {
	connection.ScriptingCommands
}

func (s *stringStore) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	return "not-a-count", nil
}
