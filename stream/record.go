package stream

import "time"

// Range endpoint sentinels for XRANGE / XREVRANGE / XPENDING.
const (
	// RangeStart addresses the lowest ID in a stream ("-").
	RangeStart = "-"

	// RangeEnd addresses the highest ID in a stream ("+").
	RangeEnd = "+"
)

// Record is a single stream entry: the stream it belongs to, its ID, and the
// field-value payload.
type Record struct {
	// Stream is the key of the stream the record was read from or is
	// destined for.
	Stream string

	// ID is the entry ID. AutoID on records built for XADD without an
	// explicit ID.
	ID RecordID

	// Values holds the entry's field-value pairs. Values read from the
	// server are strings.
	Values map[string]interface{}
}

// NewRecord builds a Record for appending: the ID defaults to AutoID.
func NewRecord(stream string, values map[string]interface{}) Record {
	return Record{
		Stream: stream,
		ID:     AutoID,
		Values: values,
	}
}

// WithID returns a copy of the record carrying the given ID.
func (r Record) WithID(id RecordID) Record {
	r.ID = id
	return r
}

// PendingSummary is the condensed XPENDING reply: how many entries are
// pending for a group, the ID window they span, and the per-consumer counts.
type PendingSummary struct {
	// Count is the total number of pending entries in the group.
	Count int64

	// Min and Max bound the IDs of the pending entries. Zero values when
	// the group has no pending entries.
	Min RecordID
	Max RecordID

	// Consumers maps consumer name to its pending entry count.
	Consumers map[string]int64
}

// PendingEntry is one row of the extended XPENDING reply.
type PendingEntry struct {
	// ID is the pending entry's ID.
	ID RecordID

	// Consumer is the group member the entry was delivered to.
	Consumer string

	// Idle is the time since the entry was last delivered.
	Idle time.Duration

	// DeliveryCount is the number of times the entry has been delivered.
	DeliveryCount int64
}

// Info is the XINFO STREAM summary.
type Info struct {
	// Length is the number of entries in the stream.
	Length int64

	// Groups is the number of consumer groups on the stream.
	Groups int64

	// LastGeneratedID is the last ID the server generated for the stream.
	LastGeneratedID RecordID

	// FirstEntry and LastEntry are the oldest and newest entries, when the
	// stream is non-empty.
	FirstEntry *Record
	LastEntry  *Record
}

// GroupInfo is one row of the XINFO GROUPS reply.
type GroupInfo struct {
	// Name is the consumer group name.
	Name string

	// Consumers is the number of consumers known to the group.
	Consumers int64

	// Pending is the number of entries delivered but not yet acknowledged.
	Pending int64

	// LastDeliveredID is the last entry ID delivered to the group.
	LastDeliveredID RecordID
}
