package stream

import "fmt"

// ReadOffset selects where a stream read starts. It is one of three modes:
//
//   - Latest: only entries appended after the read began ("$")
//   - LastConsumed: entries never delivered to this consumer group (">")
//   - From: entries after an explicit offset
//
// The zero value behaves like Latest. ReadOffset values are immutable.
type ReadOffset struct {
	offset string
}

// Latest returns the offset for entries appended after the read begins.
func Latest() ReadOffset {
	return ReadOffset{offset: "$"}
}

// LastConsumed returns the offset for entries not yet delivered to the
// consumer group. Only meaningful with XREADGROUP.
func LastConsumed() ReadOffset {
	return ReadOffset{offset: ">"}
}

// From returns an explicit offset, e.g. "0" or "1526919030474-55".
func From(offset string) ReadOffset {
	return ReadOffset{offset: offset}
}

// FromID returns the offset immediately at id; reads through it are
// exclusive, so entries strictly after id are returned.
func FromID(id RecordID) ReadOffset {
	return ReadOffset{offset: id.String()}
}

// FromStart returns the offset addressing the beginning of the stream.
func FromStart() ReadOffset {
	return ReadOffset{offset: "0"}
}

// Token returns the wire token for the offset. The zero value maps to "$".
func (ro ReadOffset) Token() string {
	if ro.offset == "" {
		return "$"
	}
	return ro.offset
}

// IsLatest reports whether the offset is the "$" mode.
func (ro ReadOffset) IsLatest() bool {
	return ro.offset == "$" || ro.offset == ""
}

// IsLastConsumed reports whether the offset is the ">" mode.
func (ro ReadOffset) IsLastConsumed() bool {
	return ro.offset == ">"
}

// String implements fmt.Stringer.
func (ro ReadOffset) String() string {
	return ro.Token()
}

// Offset pairs a stream key with the ReadOffset to start reading from.
// It is a read cursor descriptor only and is never mutated after
// construction.
type Offset struct {
	stream string
	read   ReadOffset
}

// NewOffset builds an Offset for the given stream key. The key must be
// non-empty.
func NewOffset(stream string, read ReadOffset) (Offset, error) {
	if stream == "" {
		return Offset{}, fmt.Errorf("stream: offset requires a non-empty stream key")
	}
	return Offset{stream: stream, read: read}, nil
}

// MustOffset is like NewOffset but panics on an empty stream key.
func MustOffset(stream string, read ReadOffset) Offset {
	o, err := NewOffset(stream, read)
	if err != nil {
		panic(err)
	}
	return o
}

// LatestOffset is shorthand for an Offset at "$".
func LatestOffset(stream string) Offset {
	return Offset{stream: stream, read: Latest()}
}

// StartOffset is shorthand for an Offset at "0".
func StartOffset(stream string) Offset {
	return Offset{stream: stream, read: FromStart()}
}

// Stream returns the stream key.
func (o Offset) Stream() string {
	return o.stream
}

// ReadOffset returns the read position.
func (o Offset) ReadOffset() ReadOffset {
	return o.read
}

// String implements fmt.Stringer.
func (o Offset) String() string {
	return o.stream + "@" + o.read.Token()
}
