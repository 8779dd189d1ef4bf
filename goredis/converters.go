package goredis

import (
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stackbound/rediskit/stream"
)

func parseRecordID(raw string) (stream.RecordID, error) {
	id, err := stream.NewRecordID(raw)
	if err != nil {
		return stream.RecordID{}, fmt.Errorf("goredis: server returned malformed entry id: %w", err)
	}
	return id, nil
}

func recordIDStrings(ids []stream.RecordID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func recordFromMessage(key string, msg redis.XMessage) (stream.Record, error) {
	id, err := parseRecordID(msg.ID)
	if err != nil {
		return stream.Record{}, err
	}
	return stream.Record{
		Stream: key,
		ID:     id,
		Values: msg.Values,
	}, nil
}

func recordsFromMessages(key string, msgs []redis.XMessage) ([]stream.Record, error) {
	records := make([]stream.Record, 0, len(msgs))
	for _, msg := range msgs {
		record, err := recordFromMessage(key, msg)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func recordsFromStreams(streams []redis.XStream) ([]stream.Record, error) {
	var records []stream.Record
	for _, s := range streams {
		recs, err := recordsFromMessages(s.Stream, s.Messages)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

func recordsFromIDs(key string, ids []string) ([]stream.Record, error) {
	records := make([]stream.Record, 0, len(ids))
	for _, raw := range ids {
		id, err := parseRecordID(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, stream.Record{Stream: key, ID: id})
	}
	return records, nil
}

// recordFromReply decodes one XCLAIM array entry from the generic command
// path: [id, [field1, value1, ...]].
func recordFromReply(key string, entry interface{}) (stream.Record, error) {
	pair, ok := entry.([]interface{})
	if !ok || len(pair) != 2 {
		return stream.Record{}, fmt.Errorf("goredis: unexpected stream entry reply %T", entry)
	}

	rawID, ok := pair[0].(string)
	if !ok {
		return stream.Record{}, fmt.Errorf("goredis: unexpected entry id type %T", pair[0])
	}
	id, err := parseRecordID(rawID)
	if err != nil {
		return stream.Record{}, err
	}

	fields, ok := pair[1].([]interface{})
	if !ok || len(fields)%2 != 0 {
		return stream.Record{}, fmt.Errorf("goredis: unexpected entry payload %T", pair[1])
	}

	values := make(map[string]interface{}, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		field, ok := fields[i].(string)
		if !ok {
			return stream.Record{}, fmt.Errorf("goredis: unexpected field name type %T", fields[i])
		}
		values[field] = fields[i+1]
	}

	return stream.Record{Stream: key, ID: id, Values: values}, nil
}

// offsetArgs flattens offsets to the Streams argument form go-redis expects:
// all keys first, then the matching offset tokens.
func offsetArgs(offsets []stream.Offset) []string {
	args := make([]string, 0, len(offsets)*2)
	for _, o := range offsets {
		args = append(args, o.Stream())
	}
	for _, o := range offsets {
		args = append(args, o.ReadOffset().Token())
	}
	return args
}

// blockDuration maps the read options onto go-redis blocking semantics:
// go-redis only sends BLOCK when the duration is >= 0, so an unset block
// becomes -1.
func blockDuration(opts stream.ReadOptions) time.Duration {
	if d, ok := opts.Block(); ok {
		return d
	}
	return -1
}

// isNoRecords reports whether a read reply means "nothing there": go-redis
// signals both an empty non-blocking read and a blocking-read timeout with
// redis.Nil.
func isNoRecords(err error) bool {
	return errors.Is(err, redis.Nil)
}
