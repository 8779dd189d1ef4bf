package stream

import (
	"errors"
	"time"
)

// ErrNoTrimBound is returned when a trim is attempted with TrimOptions that
// carry neither a MaxLen nor a MinID bound. An unbounded trim would evict
// the whole stream.
var ErrNoTrimBound = errors.New("stream: trim options need MaxLen or MinID")

// Option bundles in this file follow a persistent-update pattern: every
// With* method receives its value by copy and returns the modified copy, so
// a bundle can be shared and extended without synchronization.

// AddOptions parameterizes XADD.
type AddOptions struct {
	id         RecordID
	maxLen     int64
	hasMaxLen  bool
	approx     bool
	noMkStream bool
}

// WithID returns a copy that appends with an explicit entry ID instead of
// server-side auto-generation.
func (o AddOptions) WithID(id RecordID) AddOptions {
	o.id = id
	return o
}

// WithMaxLen returns a copy that trims the stream to at most n entries
// after the append.
func (o AddOptions) WithMaxLen(n int64) AddOptions {
	o.maxLen = n
	o.hasMaxLen = true
	return o
}

// Approximate returns a copy that makes MAXLEN trimming approximate ("~"),
// trading precision for much cheaper trims.
func (o AddOptions) Approximate() AddOptions {
	o.approx = true
	return o
}

// WithNoMkStream returns a copy that fails the append instead of creating
// the stream when the key does not exist.
func (o AddOptions) WithNoMkStream() AddOptions {
	o.noMkStream = true
	return o
}

// ID returns the explicit entry ID, or AutoID when none was set.
func (o AddOptions) ID() RecordID {
	if o.id.IsZero() {
		return AutoID
	}
	return o.id
}

// MaxLen returns the trim threshold and whether one was set.
func (o AddOptions) MaxLen() (int64, bool) {
	return o.maxLen, o.hasMaxLen
}

// IsApproximate reports whether MAXLEN trimming is approximate.
func (o AddOptions) IsApproximate() bool {
	return o.approx
}

// NoMkStream reports whether the append must not create the stream.
func (o AddOptions) NoMkStream() bool {
	return o.noMkStream
}

// RangeOptions parameterizes XRANGE and XREVRANGE.
type RangeOptions struct {
	count    int64
	hasCount bool
}

// WithCount returns a copy limiting the reply to n entries.
func (o RangeOptions) WithCount(n int64) RangeOptions {
	o.count = n
	o.hasCount = true
	return o
}

// Count returns the entry limit and whether one was set.
func (o RangeOptions) Count() (int64, bool) {
	return o.count, o.hasCount
}

// ReadOptions parameterizes XREAD and XREADGROUP.
type ReadOptions struct {
	count    int64
	hasCount bool
	block    time.Duration
	hasBlock bool
	noAck    bool
}

// WithCount returns a copy limiting each stream's reply to n entries.
func (o ReadOptions) WithCount(n int64) ReadOptions {
	o.count = n
	o.hasCount = true
	return o
}

// WithBlock returns a copy that blocks up to d waiting for entries.
// A zero d blocks indefinitely.
func (o ReadOptions) WithBlock(d time.Duration) ReadOptions {
	o.block = d
	o.hasBlock = true
	return o
}

// WithNoAck returns a copy that skips the pending entries list on group
// reads (XREADGROUP NOACK).
func (o ReadOptions) WithNoAck() ReadOptions {
	o.noAck = true
	return o
}

// Count returns the per-stream entry limit and whether one was set.
func (o ReadOptions) Count() (int64, bool) {
	return o.count, o.hasCount
}

// Block returns the blocking budget and whether blocking was requested.
func (o ReadOptions) Block() (time.Duration, bool) {
	return o.block, o.hasBlock
}

// NoAck reports whether group reads skip the pending entries list.
func (o ReadOptions) NoAck() bool {
	return o.noAck
}

// PendingOptions parameterizes the extended form of XPENDING.
type PendingOptions struct {
	start    string
	end      string
	count    int64
	idle     time.Duration
	consumer string
}

// WithRange returns a copy restricting the scan to the [start, end] ID
// window, returning at most count rows.
func (o PendingOptions) WithRange(start, end string, count int64) PendingOptions {
	o.start = start
	o.end = end
	o.count = count
	return o
}

// WithIdle returns a copy that only reports entries idle for at least d.
func (o PendingOptions) WithIdle(d time.Duration) PendingOptions {
	o.idle = d
	return o
}

// WithConsumer returns a copy restricted to entries pending for the named
// consumer.
func (o PendingOptions) WithConsumer(consumer string) PendingOptions {
	o.consumer = consumer
	return o
}

// Range returns the ID window and row limit; defaults are "-", "+" and 10.
func (o PendingOptions) Range() (start, end string, count int64) {
	start, end, count = o.start, o.end, o.count
	if start == "" {
		start = RangeStart
	}
	if end == "" {
		end = RangeEnd
	}
	if count == 0 {
		count = 10
	}
	return start, end, count
}

// Idle returns the minimum idle time filter.
func (o PendingOptions) Idle() time.Duration {
	return o.idle
}

// Consumer returns the consumer filter, empty for all consumers.
func (o PendingOptions) Consumer() string {
	return o.consumer
}

// ClaimOptions parameterizes XCLAIM.
type ClaimOptions struct {
	minIdle    time.Duration
	idle       time.Duration
	hasIdle    bool
	lastSeen   time.Time
	hasTime    bool
	retryCount int64
	hasRetry   bool
	justID     bool
	force      bool
}

// WithMinIdle returns a copy that only claims entries idle for at least d.
func (o ClaimOptions) WithMinIdle(d time.Duration) ClaimOptions {
	o.minIdle = d
	return o
}

// WithIdle returns a copy that sets the claimed entries' idle time to d
// instead of resetting it to zero.
func (o ClaimOptions) WithIdle(d time.Duration) ClaimOptions {
	o.idle = d
	o.hasIdle = true
	return o
}

// WithTime returns a copy that sets the claimed entries' last-delivery time
// to an absolute timestamp. An alternative to WithIdle.
func (o ClaimOptions) WithTime(t time.Time) ClaimOptions {
	o.lastSeen = t
	o.hasTime = true
	return o
}

// WithRetryCount returns a copy that sets the claimed entries' delivery
// counter instead of incrementing it.
func (o ClaimOptions) WithRetryCount(n int64) ClaimOptions {
	o.retryCount = n
	o.hasRetry = true
	return o
}

// JustID returns a copy that makes the server reply with IDs only, without
// the entry payloads, and without resetting idle times.
func (o ClaimOptions) JustID() ClaimOptions {
	o.justID = true
	return o
}

// WithForce returns a copy that creates the pending entry even when the ID
// is not currently pending for any consumer.
func (o ClaimOptions) WithForce() ClaimOptions {
	o.force = true
	return o
}

// MinIdle returns the minimum idle time for a claim.
func (o ClaimOptions) MinIdle() time.Duration {
	return o.minIdle
}

// Idle returns the explicit idle override and whether one was set.
func (o ClaimOptions) Idle() (time.Duration, bool) {
	return o.idle, o.hasIdle
}

// Time returns the last-delivery timestamp override and whether one was set.
func (o ClaimOptions) Time() (time.Time, bool) {
	return o.lastSeen, o.hasTime
}

// RetryCount returns the delivery-counter override and whether one was set.
func (o ClaimOptions) RetryCount() (int64, bool) {
	return o.retryCount, o.hasRetry
}

// IsJustID reports whether the reply carries IDs only.
func (o ClaimOptions) IsJustID() bool {
	return o.justID
}

// IsForce reports whether the claim creates missing pending entries.
func (o ClaimOptions) IsForce() bool {
	return o.force
}

// TrimOptions parameterizes XTRIM. Exactly one of MaxLen or MinID must be
// set.
type TrimOptions struct {
	maxLen    int64
	hasMaxLen bool
	minID     string
	approx    bool
}

// WithMaxLen returns a copy trimming the stream to at most n entries.
func (o TrimOptions) WithMaxLen(n int64) TrimOptions {
	o.maxLen = n
	o.hasMaxLen = true
	return o
}

// WithMinID returns a copy evicting entries with IDs lower than id.
func (o TrimOptions) WithMinID(id string) TrimOptions {
	o.minID = id
	return o
}

// Approximate returns a copy that makes the trim approximate ("~").
func (o TrimOptions) Approximate() TrimOptions {
	o.approx = true
	return o
}

// MaxLen returns the entry threshold and whether one was set.
func (o TrimOptions) MaxLen() (int64, bool) {
	return o.maxLen, o.hasMaxLen
}

// MinID returns the ID threshold, empty when unset.
func (o TrimOptions) MinID() string {
	return o.minID
}

// IsApproximate reports whether the trim is approximate.
func (o TrimOptions) IsApproximate() bool {
	return o.approx
}
