package redigo

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/stackbound/rediskit/stream"
)

// stringArgs widens a string slice to the interface slice redigo wants.
func stringArgs(values []string) []interface{} {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

// convertReply rewrites a raw redigo reply into the contract shape: bulk
// strings become string, nested arrays are converted recursively.
func convertReply(reply interface{}) interface{} {
	switch v := reply.(type) {
	case []byte:
		return string(v)
	case []interface{}:
		for i := range v {
			v[i] = convertReply(v[i])
		}
		return v
	default:
		return reply
	}
}

// nilValues converts a multi-bulk reply into the MGET/HMGET shape: present
// values as string, absent ones as nil.
func nilValues(reply interface{}, err error) ([]interface{}, error) {
	values, err := redis.Values(reply, err)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if b, ok := v.([]byte); ok {
			values[i] = string(b)
		}
	}
	return values, nil
}

func parseRecordID(raw string) (stream.RecordID, error) {
	id, err := stream.NewRecordID(raw)
	if err != nil {
		return stream.RecordID{}, fmt.Errorf("redigo: server returned malformed entry id: %w", err)
	}
	return id, nil
}

// parseEntry decodes one stream entry reply: [id, [field1, value1, ...]].
func parseEntry(key string, entry interface{}) (stream.Record, error) {
	pair, err := redis.Values(entry, nil)
	if err != nil || len(pair) != 2 {
		return stream.Record{}, fmt.Errorf("redigo: unexpected stream entry reply %T", entry)
	}

	rawID, err := redis.String(pair[0], nil)
	if err != nil {
		return stream.Record{}, fmt.Errorf("redigo: unexpected entry id: %w", err)
	}
	id, err := parseRecordID(rawID)
	if err != nil {
		return stream.Record{}, err
	}

	record := stream.Record{Stream: key, ID: id}
	if pair[1] == nil {
		return record, nil
	}

	fields, err := redis.Strings(pair[1], nil)
	if err != nil || len(fields)%2 != 0 {
		return stream.Record{}, fmt.Errorf("redigo: unexpected entry payload for id %s", rawID)
	}

	values := make(map[string]interface{}, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		values[fields[i]] = fields[i+1]
	}
	record.Values = values
	return record, nil
}

// parseEntries decodes an XRANGE-style reply: a list of entries.
func parseEntries(key string, reply interface{}, err error) ([]stream.Record, error) {
	entries, err := redis.Values(reply, err)
	if err != nil {
		return nil, normalize(err)
	}

	records := make([]stream.Record, 0, len(entries))
	for _, entry := range entries {
		record, err := parseEntry(key, entry)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// parseReadReply decodes an XREAD/XREADGROUP reply: a list of
// [stream, entries] pairs, flattened into one record slice.
func parseReadReply(reply interface{}, err error) ([]stream.Record, error) {
	if reply == nil && err == nil {
		return nil, nil
	}
	streams, err := redis.Values(reply, err)
	if err != nil {
		return nil, normalize(err)
	}

	var records []stream.Record
	for _, s := range streams {
		pair, err := redis.Values(s, nil)
		if err != nil || len(pair) != 2 {
			return nil, fmt.Errorf("redigo: unexpected stream reply %T", s)
		}
		key, err := redis.String(pair[0], nil)
		if err != nil {
			return nil, fmt.Errorf("redigo: unexpected stream key: %w", err)
		}
		entries, err := parseEntries(key, pair[1], nil)
		if err != nil {
			return nil, err
		}
		records = append(records, entries...)
	}
	return records, nil
}

// parsePendingSummary decodes the condensed XPENDING reply:
// [count, min, max, [[consumer, count], ...]].
func parsePendingSummary(reply interface{}, err error) (stream.PendingSummary, error) {
	values, err := redis.Values(reply, err)
	if err != nil {
		return stream.PendingSummary{}, normalize(err)
	}
	if len(values) != 4 {
		return stream.PendingSummary{}, fmt.Errorf("redigo: unexpected XPENDING reply length %d", len(values))
	}

	summary := stream.PendingSummary{}
	if summary.Count, err = redis.Int64(values[0], nil); err != nil {
		return stream.PendingSummary{}, err
	}

	if values[1] != nil {
		raw, err := redis.String(values[1], nil)
		if err != nil {
			return stream.PendingSummary{}, err
		}
		if summary.Min, err = parseRecordID(raw); err != nil {
			return stream.PendingSummary{}, err
		}
	}
	if values[2] != nil {
		raw, err := redis.String(values[2], nil)
		if err != nil {
			return stream.PendingSummary{}, err
		}
		if summary.Max, err = parseRecordID(raw); err != nil {
			return stream.PendingSummary{}, err
		}
	}

	if values[3] != nil {
		consumers, err := redis.Values(values[3], nil)
		if err != nil {
			return stream.PendingSummary{}, err
		}
		summary.Consumers = make(map[string]int64, len(consumers))
		for _, row := range consumers {
			pair, err := redis.Strings(row, nil)
			if err != nil || len(pair) != 2 {
				return stream.PendingSummary{}, fmt.Errorf("redigo: unexpected XPENDING consumer row %T", row)
			}
			count, err := redis.Int64([]byte(pair[1]), nil)
			if err != nil {
				return stream.PendingSummary{}, err
			}
			summary.Consumers[pair[0]] = count
		}
	}
	return summary, nil
}

// parsePendingEntries decodes the extended XPENDING reply: rows of
// [id, consumer, idle-ms, delivery-count].
func parsePendingEntries(reply interface{}, err error) ([]stream.PendingEntry, error) {
	rows, err := redis.Values(reply, err)
	if err != nil {
		return nil, normalize(err)
	}

	entries := make([]stream.PendingEntry, 0, len(rows))
	for _, row := range rows {
		fields, err := redis.Values(row, nil)
		if err != nil || len(fields) != 4 {
			return nil, fmt.Errorf("redigo: unexpected XPENDING row %T", row)
		}

		rawID, err := redis.String(fields[0], nil)
		if err != nil {
			return nil, err
		}
		id, err := parseRecordID(rawID)
		if err != nil {
			return nil, err
		}
		consumer, err := redis.String(fields[1], nil)
		if err != nil {
			return nil, err
		}
		idleMs, err := redis.Int64(fields[2], nil)
		if err != nil {
			return nil, err
		}
		deliveries, err := redis.Int64(fields[3], nil)
		if err != nil {
			return nil, err
		}

		entries = append(entries, stream.PendingEntry{
			ID:            id,
			Consumer:      consumer,
			Idle:          time.Duration(idleMs) * time.Millisecond,
			DeliveryCount: deliveries,
		})
	}
	return entries, nil
}

// infoMap flattens an XINFO-style reply ([field, value, field, value, ...])
// into a lookup map. Values stay raw.
func infoMap(reply interface{}) (map[string]interface{}, error) {
	fields, err := redis.Values(reply, nil)
	if err != nil || len(fields)%2 != 0 {
		return nil, fmt.Errorf("redigo: unexpected XINFO reply %T", reply)
	}

	m := make(map[string]interface{}, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		name, err := redis.String(fields[i], nil)
		if err != nil {
			return nil, err
		}
		m[name] = fields[i+1]
	}
	return m, nil
}
