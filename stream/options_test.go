package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Option bundles must be persistent: a With* call returns a modified copy
// and never touches the receiver, so shared bundles stay stable.
func TestAddOptionsPersistence(t *testing.T) {
	base := AddOptions{}.WithMaxLen(1000)

	withID := base.WithID(MustRecordID("5-1"))
	approx := base.Approximate()

	// base is untouched by the derived copies
	assert.True(t, base.ID().IsAuto())
	assert.False(t, base.IsApproximate())

	maxLen, ok := base.MaxLen()
	assert.True(t, ok)
	assert.Equal(t, int64(1000), maxLen)

	assert.Equal(t, "5-1", withID.ID().String())
	assert.True(t, approx.IsApproximate())
	assert.False(t, withID.IsApproximate())
}

func TestAddOptionsDefaults(t *testing.T) {
	var o AddOptions
	assert.True(t, o.ID().IsAuto())
	_, ok := o.MaxLen()
	assert.False(t, ok)
	assert.False(t, o.NoMkStream())

	assert.True(t, o.WithNoMkStream().NoMkStream())
}

func TestRangeOptionsCount(t *testing.T) {
	var o RangeOptions
	_, ok := o.Count()
	assert.False(t, ok)

	n, ok := o.WithCount(25).Count()
	assert.True(t, ok)
	assert.Equal(t, int64(25), n)

	// zero is a real count, distinct from unset
	n, ok = o.WithCount(0).Count()
	assert.True(t, ok)
	assert.Equal(t, int64(0), n)
}

func TestReadOptionsPersistence(t *testing.T) {
	base := ReadOptions{}.WithCount(10)
	blocking := base.WithBlock(time.Second)
	noAck := base.WithNoAck()

	_, ok := base.Block()
	assert.False(t, ok)
	assert.False(t, base.NoAck())

	d, ok := blocking.Block()
	assert.True(t, ok)
	assert.Equal(t, time.Second, d)

	assert.True(t, noAck.NoAck())
	assert.False(t, blocking.NoAck())

	n, ok := noAck.Count()
	assert.True(t, ok)
	assert.Equal(t, int64(10), n)
}

func TestPendingOptionsRangeDefaults(t *testing.T) {
	var o PendingOptions
	start, end, count := o.Range()
	assert.Equal(t, RangeStart, start)
	assert.Equal(t, RangeEnd, end)
	assert.Equal(t, int64(10), count)

	start, end, count = o.WithRange("5-0", "9-0", 50).Range()
	assert.Equal(t, "5-0", start)
	assert.Equal(t, "9-0", end)
	assert.Equal(t, int64(50), count)
}

func TestPendingOptionsFilters(t *testing.T) {
	o := PendingOptions{}.WithIdle(time.Minute).WithConsumer("worker-1")
	assert.Equal(t, time.Minute, o.Idle())
	assert.Equal(t, "worker-1", o.Consumer())

	var base PendingOptions
	assert.Zero(t, base.Idle())
	assert.Empty(t, base.Consumer())
}

func TestClaimOptions(t *testing.T) {
	base := ClaimOptions{}.WithMinIdle(30 * time.Second)
	forced := base.WithForce().JustID()

	assert.Equal(t, 30*time.Second, base.MinIdle())
	assert.False(t, base.IsForce())
	assert.False(t, base.IsJustID())

	assert.True(t, forced.IsForce())
	assert.True(t, forced.IsJustID())
	assert.Equal(t, 30*time.Second, forced.MinIdle())
}

func TestClaimOptionsOverrides(t *testing.T) {
	var base ClaimOptions
	_, ok := base.Idle()
	assert.False(t, ok)
	_, ok = base.Time()
	assert.False(t, ok)
	_, ok = base.RetryCount()
	assert.False(t, ok)

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	o := base.WithIdle(time.Minute).WithTime(at).WithRetryCount(4)

	idle, ok := o.Idle()
	assert.True(t, ok)
	assert.Equal(t, time.Minute, idle)

	tm, ok := o.Time()
	assert.True(t, ok)
	assert.Equal(t, at, tm)

	n, ok := o.RetryCount()
	assert.True(t, ok)
	assert.Equal(t, int64(4), n)

	// base is untouched
	_, ok = base.Idle()
	assert.False(t, ok)
}

func TestTrimOptions(t *testing.T) {
	byLen := TrimOptions{}.WithMaxLen(500).Approximate()
	n, ok := byLen.MaxLen()
	assert.True(t, ok)
	assert.Equal(t, int64(500), n)
	assert.True(t, byLen.IsApproximate())
	assert.Empty(t, byLen.MinID())

	byID := TrimOptions{}.WithMinID("5-0")
	assert.Equal(t, "5-0", byID.MinID())
	_, ok = byID.MaxLen()
	assert.False(t, ok)
}

func TestRecordWithID(t *testing.T) {
	rec := NewRecord("events", map[string]interface{}{"kind": "signup"})
	assert.True(t, rec.ID.IsAuto())

	pinned := rec.WithID(MustRecordID("7-0"))
	assert.Equal(t, "7-0", pinned.ID.String())
	assert.True(t, rec.ID.IsAuto())
	assert.Equal(t, rec.Values, pinned.Values)
}
