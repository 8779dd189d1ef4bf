package stream

import (
	"fmt"
	"strconv"
	"strings"
)

// RecordID identifies a single entry within a Redis stream.
//
// The textual form is "<milliseconds>-<sequence>", e.g. "1526919030474-55".
// The zero value is not a valid ID; use AutoID to let the server assign one.
// RecordID values are immutable.
type RecordID struct {
	raw string
	ms  uint64
	seq uint64
}

// AutoID is the sentinel ID ("*") instructing the server to auto-generate
// the entry ID on XADD.
var AutoID = RecordID{raw: "*"}

// NewRecordID parses raw into a RecordID.
//
// Accepts either the "*" auto-generation sentinel or a "<ms>-<seq>" pair in
// which both components parse as unsigned 64-bit integers. Anything else is
// rejected, keeping the invariant that a non-auto RecordID always carries
// both numeric components.
func NewRecordID(raw string) (RecordID, error) {
	if raw == "*" {
		return AutoID, nil
	}

	msPart, seqPart, ok := strings.Cut(raw, "-")
	if !ok {
		return RecordID{}, fmt.Errorf("stream: invalid record id %q: missing '-' delimiter", raw)
	}

	ms, err := strconv.ParseUint(msPart, 10, 64)
	if err != nil {
		return RecordID{}, fmt.Errorf("stream: invalid record id %q: bad timestamp: %w", raw, err)
	}

	seq, err := strconv.ParseUint(seqPart, 10, 64)
	if err != nil {
		return RecordID{}, fmt.Errorf("stream: invalid record id %q: bad sequence: %w", raw, err)
	}

	return RecordID{raw: raw, ms: ms, seq: seq}, nil
}

// MustRecordID is like NewRecordID but panics on invalid input.
// Intended for constants and tests.
func MustRecordID(raw string) RecordID {
	id, err := NewRecordID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// RecordIDFromParts builds a RecordID from a millisecond timestamp and a
// sequence number.
func RecordIDFromParts(ms, seq uint64) RecordID {
	return RecordID{
		raw: strconv.FormatUint(ms, 10) + "-" + strconv.FormatUint(seq, 10),
		ms:  ms,
		seq: seq,
	}
}

// String returns the wire form of the ID ("*" for AutoID).
func (id RecordID) String() string {
	return id.raw
}

// Timestamp returns the millisecond component. Zero for AutoID.
func (id RecordID) Timestamp() uint64 {
	return id.ms
}

// Sequence returns the sequence component. Zero for AutoID.
func (id RecordID) Sequence() uint64 {
	return id.seq
}

// IsAuto reports whether the ID is the auto-generation sentinel.
func (id RecordID) IsAuto() bool {
	return id.raw == "*"
}

// IsZero reports whether the ID is the zero value.
func (id RecordID) IsZero() bool {
	return id.raw == ""
}

// Compare orders two IDs the way the server does: by timestamp, then by
// sequence. Returns -1, 0, or 1. AutoID and the zero value sort before
// everything.
func (id RecordID) Compare(other RecordID) int {
	switch {
	case id.ms < other.ms:
		return -1
	case id.ms > other.ms:
		return 1
	case id.seq < other.seq:
		return -1
	case id.seq > other.seq:
		return 1
	default:
		return 0
	}
}

// Before reports whether id sorts strictly before other.
func (id RecordID) Before(other RecordID) bool {
	return id.Compare(other) < 0
}

// Next returns the smallest ID strictly greater than id. Useful for
// resuming an exclusive XRANGE scan after the last seen entry.
func (id RecordID) Next() RecordID {
	if id.seq == ^uint64(0) {
		return RecordIDFromParts(id.ms+1, 0)
	}
	return RecordIDFromParts(id.ms, id.seq+1)
}
