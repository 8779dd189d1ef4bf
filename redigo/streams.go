package redigo

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/stackbound/rediskit/connection"
	"github.com/stackbound/rediskit/stream"
)

// XAdd appends the field-value pairs to the stream at key and returns the ID
// the server assigned (or the explicit one from opts).
func (c *Client) XAdd(ctx context.Context, key string, values map[string]interface{}, opts stream.AddOptions) (stream.RecordID, error) {
	if err := connection.ValidateKey(key); err != nil {
		return stream.RecordID{}, err
	}

	start := time.Now()

	args := []interface{}{key}
	if opts.NoMkStream() {
		args = append(args, "NOMKSTREAM")
	}
	if maxLen, ok := opts.MaxLen(); ok {
		args = append(args, "MAXLEN")
		if opts.IsApproximate() {
			args = append(args, "~")
		}
		args = append(args, maxLen)
	}
	args = append(args, opts.ID().String())
	for field, value := range values {
		args = append(args, field, value)
	}

	raw, err := redis.String(c.do(ctx, "XADD", args...))
	err = normalize(err)
	c.observeOperation("xadd", key, "", time.Since(start), err, int64(len(values)), nil)
	if err != nil {
		return stream.RecordID{}, err
	}

	return parseRecordID(raw)
}

// XAck acknowledges the given entries for group, returning how many were
// actually pending.
func (c *Client) XAck(ctx context.Context, key, group string, ids ...stream.RecordID) (int64, error) {
	args := []interface{}{key, group}
	for _, id := range ids {
		args = append(args, id.String())
	}

	result, err := redis.Int64(c.do(ctx, "XACK", args...))
	return result, normalize(err)
}

// XLen returns the number of entries in the stream at key.
func (c *Client) XLen(ctx context.Context, key string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "XLEN", key))
	return result, normalize(err)
}

// XRange returns the entries with IDs between start and end, ascending.
func (c *Client) XRange(ctx context.Context, key, start, end string, opts stream.RangeOptions) ([]stream.Record, error) {
	args := []interface{}{key, start, end}
	if count, ok := opts.Count(); ok {
		args = append(args, "COUNT", count)
	}

	reply, err := c.do(ctx, "XRANGE", args...)
	return parseEntries(key, reply, err)
}

// XRevRange is XRange in descending order; start is the higher bound.
func (c *Client) XRevRange(ctx context.Context, key, start, end string, opts stream.RangeOptions) ([]stream.Record, error) {
	args := []interface{}{key, start, end}
	if count, ok := opts.Count(); ok {
		args = append(args, "COUNT", count)
	}

	reply, err := c.do(ctx, "XREVRANGE", args...)
	return parseEntries(key, reply, err)
}

// XDel removes the given entries from the stream at key, returning how many
// existed.
func (c *Client) XDel(ctx context.Context, key string, ids ...stream.RecordID) (int64, error) {
	args := []interface{}{key}
	for _, id := range ids {
		args = append(args, id.String())
	}

	result, err := redis.Int64(c.do(ctx, "XDEL", args...))
	return result, normalize(err)
}

// XTrim evicts entries from the stream at key per opts, returning how many
// were removed.
func (c *Client) XTrim(ctx context.Context, key string, opts stream.TrimOptions) (int64, error) {
	if _, ok := opts.MaxLen(); !ok && opts.MinID() == "" {
		return 0, stream.ErrNoTrimBound
	}

	args := []interface{}{key}
	if opts.MinID() != "" {
		args = append(args, "MINID")
		if opts.IsApproximate() {
			args = append(args, "~")
		}
		args = append(args, opts.MinID())
	} else {
		maxLen, _ := opts.MaxLen()
		args = append(args, "MAXLEN")
		if opts.IsApproximate() {
			args = append(args, "~")
		}
		args = append(args, maxLen)
	}

	result, err := redis.Int64(c.do(ctx, "XTRIM", args...))
	return result, normalize(err)
}

// XRead reads new entries from the given streams. A blocking read that times
// out returns no records and no error.
func (c *Client) XRead(ctx context.Context, opts stream.ReadOptions, offsets ...stream.Offset) ([]stream.Record, error) {
	var args []interface{}
	if count, ok := opts.Count(); ok {
		args = append(args, "COUNT", count)
	}
	block, hasBlock := opts.Block()
	if hasBlock {
		args = append(args, "BLOCK", block.Milliseconds())
	}
	args = append(args, "STREAMS")
	for _, o := range offsets {
		args = append(args, o.Stream())
	}
	for _, o := range offsets {
		args = append(args, o.ReadOffset().Token())
	}

	var (
		reply interface{}
		err   error
	)
	if hasBlock {
		reply, err = c.doBlocking(ctx, block, "XREAD", args...)
	} else {
		reply, err = c.do(ctx, "XREAD", args...)
	}
	return parseReadReply(reply, err)
}

// XReadGroup reads entries on behalf of a consumer-group member. A blocking
// read that times out returns no records and no error.
func (c *Client) XReadGroup(ctx context.Context, consumer stream.Consumer, opts stream.ReadOptions, offsets ...stream.Offset) ([]stream.Record, error) {
	args := []interface{}{"GROUP", consumer.Group(), consumer.Name()}
	if count, ok := opts.Count(); ok {
		args = append(args, "COUNT", count)
	}
	block, hasBlock := opts.Block()
	if hasBlock {
		args = append(args, "BLOCK", block.Milliseconds())
	}
	if opts.NoAck() {
		args = append(args, "NOACK")
	}
	args = append(args, "STREAMS")
	for _, o := range offsets {
		args = append(args, o.Stream())
	}
	for _, o := range offsets {
		args = append(args, o.ReadOffset().Token())
	}

	var (
		reply interface{}
		err   error
	)
	if hasBlock {
		reply, err = c.doBlocking(ctx, block, "XREADGROUP", args...)
	} else {
		reply, err = c.do(ctx, "XREADGROUP", args...)
	}
	return parseReadReply(reply, err)
}

// XClaim transfers ownership of the given pending entries to consumer.
func (c *Client) XClaim(ctx context.Context, key string, consumer stream.Consumer, opts stream.ClaimOptions, ids ...stream.RecordID) ([]stream.Record, error) {
	args := []interface{}{key, consumer.Group(), consumer.Name(), opts.MinIdle().Milliseconds()}
	for _, id := range ids {
		args = append(args, id.String())
	}
	if idle, ok := opts.Idle(); ok {
		args = append(args, "IDLE", idle.Milliseconds())
	}
	if tm, ok := opts.Time(); ok {
		args = append(args, "TIME", tm.UnixMilli())
	}
	if n, ok := opts.RetryCount(); ok {
		args = append(args, "RETRYCOUNT", n)
	}
	if opts.IsForce() {
		args = append(args, "FORCE")
	}
	if opts.IsJustID() {
		args = append(args, "JUSTID")
	}

	reply, err := c.do(ctx, "XCLAIM", args...)
	if err != nil {
		return nil, normalize(err)
	}

	if opts.IsJustID() {
		claimed, err := redis.Strings(reply, nil)
		if err != nil {
			return nil, err
		}
		records := make([]stream.Record, 0, len(claimed))
		for _, raw := range claimed {
			id, err := parseRecordID(raw)
			if err != nil {
				return nil, err
			}
			records = append(records, stream.Record{Stream: key, ID: id})
		}
		return records, nil
	}

	return parseEntries(key, reply, nil)
}

// XPending returns the condensed pending summary for group on the stream at
// key.
func (c *Client) XPending(ctx context.Context, key, group string) (stream.PendingSummary, error) {
	reply, err := c.do(ctx, "XPENDING", key, group)
	return parsePendingSummary(reply, err)
}

// XPendingExt returns individual pending entries for group per opts.
func (c *Client) XPendingExt(ctx context.Context, key, group string, opts stream.PendingOptions) ([]stream.PendingEntry, error) {
	args := []interface{}{key, group}
	if opts.Idle() > 0 {
		args = append(args, "IDLE", opts.Idle().Milliseconds())
	}
	rangeStart, rangeEnd, count := opts.Range()
	args = append(args, rangeStart, rangeEnd, count)
	if opts.Consumer() != "" {
		args = append(args, opts.Consumer())
	}

	reply, err := c.do(ctx, "XPENDING", args...)
	return parsePendingEntries(reply, err)
}

// XGroupCreate creates a consumer group on the stream at key, reading from
// offset. With mkStream the stream is created when missing.
func (c *Client) XGroupCreate(ctx context.Context, key, group string, offset stream.ReadOffset, mkStream bool) error {
	args := []interface{}{"CREATE", key, group, offset.Token()}
	if mkStream {
		args = append(args, "MKSTREAM")
	}

	_, err := c.do(ctx, "XGROUP", args...)
	return normalize(err)
}

// XGroupSetID repositions the group's delivery cursor.
func (c *Client) XGroupSetID(ctx context.Context, key, group string, offset stream.ReadOffset) error {
	_, err := c.do(ctx, "XGROUP", "SETID", key, group, offset.Token())
	return normalize(err)
}

// XGroupDestroy removes the group, returning 1 when it existed.
func (c *Client) XGroupDestroy(ctx context.Context, key, group string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "XGROUP", "DESTROY", key, group))
	return result, normalize(err)
}

// XGroupCreateConsumer adds consumer to its group, returning 1 when it was
// created.
func (c *Client) XGroupCreateConsumer(ctx context.Context, key string, consumer stream.Consumer) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "XGROUP", "CREATECONSUMER", key, consumer.Group(), consumer.Name()))
	return result, normalize(err)
}

// XGroupDelConsumer removes consumer from its group, returning its pending
// entry count.
func (c *Client) XGroupDelConsumer(ctx context.Context, key string, consumer stream.Consumer) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "XGROUP", "DELCONSUMER", key, consumer.Group(), consumer.Name()))
	return result, normalize(err)
}

// XInfoStream returns the stream summary for key.
func (c *Client) XInfoStream(ctx context.Context, key string) (stream.Info, error) {
	reply, err := c.do(ctx, "XINFO", "STREAM", key)
	if err != nil {
		return stream.Info{}, normalize(err)
	}

	fields, err := infoMap(reply)
	if err != nil {
		return stream.Info{}, err
	}

	info := stream.Info{}
	if v, ok := fields["length"]; ok {
		if info.Length, err = redis.Int64(v, nil); err != nil {
			return stream.Info{}, err
		}
	}
	if v, ok := fields["groups"]; ok {
		if info.Groups, err = redis.Int64(v, nil); err != nil {
			return stream.Info{}, err
		}
	}
	if v, ok := fields["last-generated-id"]; ok {
		raw, err := redis.String(v, nil)
		if err != nil {
			return stream.Info{}, err
		}
		if info.LastGeneratedID, err = parseRecordID(raw); err != nil {
			return stream.Info{}, err
		}
	}
	if v, ok := fields["first-entry"]; ok && v != nil {
		first, err := parseEntry(key, v)
		if err != nil {
			return stream.Info{}, err
		}
		info.FirstEntry = &first
	}
	if v, ok := fields["last-entry"]; ok && v != nil {
		last, err := parseEntry(key, v)
		if err != nil {
			return stream.Info{}, err
		}
		info.LastEntry = &last
	}
	return info, nil
}

// XInfoGroups returns one row per consumer group on the stream at key.
func (c *Client) XInfoGroups(ctx context.Context, key string) ([]stream.GroupInfo, error) {
	reply, err := c.do(ctx, "XINFO", "GROUPS", key)
	if err != nil {
		return nil, normalize(err)
	}

	rows, err := redis.Values(reply, nil)
	if err != nil {
		return nil, err
	}

	groups := make([]stream.GroupInfo, 0, len(rows))
	for _, row := range rows {
		fields, err := infoMap(row)
		if err != nil {
			return nil, err
		}

		info := stream.GroupInfo{}
		if v, ok := fields["name"]; ok {
			if info.Name, err = redis.String(v, nil); err != nil {
				return nil, err
			}
		}
		if v, ok := fields["consumers"]; ok {
			if info.Consumers, err = redis.Int64(v, nil); err != nil {
				return nil, err
			}
		}
		if v, ok := fields["pending"]; ok {
			if info.Pending, err = redis.Int64(v, nil); err != nil {
				return nil, err
			}
		}
		if v, ok := fields["last-delivered-id"]; ok {
			raw, err := redis.String(v, nil)
			if err != nil {
				return nil, err
			}
			if info.LastDeliveredID, err = parseRecordID(raw); err != nil {
				return nil, err
			}
		}
		groups = append(groups, info)
	}
	return groups, nil
}
