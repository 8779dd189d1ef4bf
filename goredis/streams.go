package goredis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

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
	c.mu.RLock()
	defer c.mu.RUnlock()

	args := &redis.XAddArgs{
		Stream:     key,
		ID:         opts.ID().String(),
		Values:     values,
		NoMkStream: opts.NoMkStream(),
	}
	if maxLen, ok := opts.MaxLen(); ok {
		args.MaxLen = maxLen
		args.Approx = opts.IsApproximate()
	}

	raw, err := c.client.XAdd(ctx, args).Result()
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
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.XAck(ctx, key, group, recordIDStrings(ids)...).Result()
	return result, normalize(err)
}

// XLen returns the number of entries in the stream at key.
func (c *Client) XLen(ctx context.Context, key string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.XLen(ctx, key).Result()
	return result, normalize(err)
}

// XRange returns the entries with IDs between start and end, ascending.
func (c *Client) XRange(ctx context.Context, key, start, end string, opts stream.RangeOptions) ([]stream.Record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var (
		msgs []redis.XMessage
		err  error
	)
	if count, ok := opts.Count(); ok {
		msgs, err = c.client.XRangeN(ctx, key, start, end, count).Result()
	} else {
		msgs, err = c.client.XRange(ctx, key, start, end).Result()
	}
	if err != nil {
		return nil, normalize(err)
	}

	return recordsFromMessages(key, msgs)
}

// XRevRange is XRange in descending order; start is the higher bound.
func (c *Client) XRevRange(ctx context.Context, key, start, end string, opts stream.RangeOptions) ([]stream.Record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var (
		msgs []redis.XMessage
		err  error
	)
	if count, ok := opts.Count(); ok {
		msgs, err = c.client.XRevRangeN(ctx, key, start, end, count).Result()
	} else {
		msgs, err = c.client.XRevRange(ctx, key, start, end).Result()
	}
	if err != nil {
		return nil, normalize(err)
	}

	return recordsFromMessages(key, msgs)
}

// XDel removes the given entries from the stream at key, returning how many
// existed.
func (c *Client) XDel(ctx context.Context, key string, ids ...stream.RecordID) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.XDel(ctx, key, recordIDStrings(ids)...).Result()
	return result, normalize(err)
}

// XTrim evicts entries from the stream at key per opts, returning how many
// were removed.
func (c *Client) XTrim(ctx context.Context, key string, opts stream.TrimOptions) (int64, error) {
	if _, ok := opts.MaxLen(); !ok && opts.MinID() == "" {
		return 0, stream.ErrNoTrimBound
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var (
		result int64
		err    error
	)
	switch {
	case opts.MinID() != "":
		if opts.IsApproximate() {
			result, err = c.client.XTrimMinIDApprox(ctx, key, opts.MinID(), 0).Result()
		} else {
			result, err = c.client.XTrimMinID(ctx, key, opts.MinID()).Result()
		}
	default:
		maxLen, _ := opts.MaxLen()
		if opts.IsApproximate() {
			result, err = c.client.XTrimMaxLenApprox(ctx, key, maxLen, 0).Result()
		} else {
			result, err = c.client.XTrimMaxLen(ctx, key, maxLen).Result()
		}
	}
	return result, normalize(err)
}

// XRead reads new entries from the given streams. A blocking read that times
// out returns no records and no error.
func (c *Client) XRead(ctx context.Context, opts stream.ReadOptions, offsets ...stream.Offset) ([]stream.Record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	args := &redis.XReadArgs{
		Streams: offsetArgs(offsets),
		Block:   blockDuration(opts),
	}
	if count, ok := opts.Count(); ok {
		args.Count = count
	}

	result, err := c.client.XRead(ctx, args).Result()
	if err != nil {
		if isNoRecords(err) {
			return nil, nil
		}
		return nil, normalize(err)
	}

	return recordsFromStreams(result)
}

// XReadGroup reads entries on behalf of a consumer-group member. A blocking
// read that times out returns no records and no error.
func (c *Client) XReadGroup(ctx context.Context, consumer stream.Consumer, opts stream.ReadOptions, offsets ...stream.Offset) ([]stream.Record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	args := &redis.XReadGroupArgs{
		Group:    consumer.Group(),
		Consumer: consumer.Name(),
		Streams:  offsetArgs(offsets),
		Block:    blockDuration(opts),
		NoAck:    opts.NoAck(),
	}
	if count, ok := opts.Count(); ok {
		args.Count = count
	}

	result, err := c.client.XReadGroup(ctx, args).Result()
	if err != nil {
		if isNoRecords(err) {
			return nil, nil
		}
		return nil, normalize(err)
	}

	return recordsFromStreams(result)
}

// XClaim transfers ownership of the given pending entries to consumer.
func (c *Client) XClaim(ctx context.Context, key string, consumer stream.Consumer, opts stream.ClaimOptions, ids ...stream.RecordID) ([]stream.Record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// The typed XClaim API has no FORCE, IDLE, TIME, or RETRYCOUNT flags,
	// so claims that use them go through the generic command path.
	if claimNeedsGenericPath(opts) {
		return c.xClaimExt(ctx, key, consumer, opts, ids)
	}

	args := &redis.XClaimArgs{
		Stream:   key,
		Group:    consumer.Group(),
		Consumer: consumer.Name(),
		MinIdle:  opts.MinIdle(),
		Messages: recordIDStrings(ids),
	}

	if opts.IsJustID() {
		claimed, err := c.client.XClaimJustID(ctx, args).Result()
		if err != nil {
			return nil, normalize(err)
		}
		return recordsFromIDs(key, claimed)
	}

	msgs, err := c.client.XClaim(ctx, args).Result()
	if err != nil {
		return nil, normalize(err)
	}

	return recordsFromMessages(key, msgs)
}

func claimNeedsGenericPath(opts stream.ClaimOptions) bool {
	if opts.IsForce() {
		return true
	}
	if _, ok := opts.Idle(); ok {
		return true
	}
	if _, ok := opts.Time(); ok {
		return true
	}
	if _, ok := opts.RetryCount(); ok {
		return true
	}
	return false
}

func (c *Client) xClaimExt(ctx context.Context, key string, consumer stream.Consumer, opts stream.ClaimOptions, ids []stream.RecordID) ([]stream.Record, error) {
	args := []interface{}{"xclaim", key, consumer.Group(), consumer.Name(), opts.MinIdle().Milliseconds()}
	for _, id := range ids {
		args = append(args, id.String())
	}
	if idle, ok := opts.Idle(); ok {
		args = append(args, "idle", idle.Milliseconds())
	}
	if tm, ok := opts.Time(); ok {
		args = append(args, "time", tm.UnixMilli())
	}
	if n, ok := opts.RetryCount(); ok {
		args = append(args, "retrycount", n)
	}
	if opts.IsForce() {
		args = append(args, "force")
	}
	if opts.IsJustID() {
		args = append(args, "justid")
	}

	reply, err := c.client.Do(ctx, args...).Result()
	if err != nil {
		return nil, normalize(err)
	}

	entries, ok := reply.([]interface{})
	if !ok {
		return nil, fmt.Errorf("goredis: unexpected XCLAIM reply type %T", reply)
	}

	if opts.IsJustID() {
		claimed := make([]string, 0, len(entries))
		for _, entry := range entries {
			id, ok := entry.(string)
			if !ok {
				return nil, fmt.Errorf("goredis: unexpected XCLAIM id type %T", entry)
			}
			claimed = append(claimed, id)
		}
		return recordsFromIDs(key, claimed)
	}

	records := make([]stream.Record, 0, len(entries))
	for _, entry := range entries {
		record, err := recordFromReply(key, entry)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// XPending returns the condensed pending summary for group on the stream at
// key.
func (c *Client) XPending(ctx context.Context, key, group string) (stream.PendingSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.XPending(ctx, key, group).Result()
	if err != nil {
		return stream.PendingSummary{}, normalize(err)
	}

	summary := stream.PendingSummary{
		Count:     result.Count,
		Consumers: result.Consumers,
	}
	if result.Lower != "" {
		if summary.Min, err = parseRecordID(result.Lower); err != nil {
			return stream.PendingSummary{}, err
		}
	}
	if result.Higher != "" {
		if summary.Max, err = parseRecordID(result.Higher); err != nil {
			return stream.PendingSummary{}, err
		}
	}
	return summary, nil
}

// XPendingExt returns individual pending entries for group per opts.
func (c *Client) XPendingExt(ctx context.Context, key, group string, opts stream.PendingOptions) ([]stream.PendingEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rangeStart, rangeEnd, count := opts.Range()
	result, err := c.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream:   key,
		Group:    group,
		Idle:     opts.Idle(),
		Start:    rangeStart,
		End:      rangeEnd,
		Count:    count,
		Consumer: opts.Consumer(),
	}).Result()
	if err != nil {
		return nil, normalize(err)
	}

	entries := make([]stream.PendingEntry, 0, len(result))
	for _, row := range result {
		id, err := parseRecordID(row.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, stream.PendingEntry{
			ID:            id,
			Consumer:      row.Consumer,
			Idle:          row.Idle,
			DeliveryCount: row.RetryCount,
		})
	}
	return entries, nil
}

// XGroupCreate creates a consumer group on the stream at key, reading from
// offset. With mkStream the stream is created when missing.
func (c *Client) XGroupCreate(ctx context.Context, key, group string, offset stream.ReadOffset, mkStream bool) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var err error
	if mkStream {
		err = c.client.XGroupCreateMkStream(ctx, key, group, offset.Token()).Err()
	} else {
		err = c.client.XGroupCreate(ctx, key, group, offset.Token()).Err()
	}
	return normalize(err)
}

// XGroupSetID repositions the group's delivery cursor.
func (c *Client) XGroupSetID(ctx context.Context, key, group string, offset stream.ReadOffset) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return normalize(c.client.XGroupSetID(ctx, key, group, offset.Token()).Err())
}

// XGroupDestroy removes the group, returning 1 when it existed.
func (c *Client) XGroupDestroy(ctx context.Context, key, group string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.XGroupDestroy(ctx, key, group).Result()
	return result, normalize(err)
}

// XGroupCreateConsumer adds consumer to its group, returning 1 when it was
// created.
func (c *Client) XGroupCreateConsumer(ctx context.Context, key string, consumer stream.Consumer) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.XGroupCreateConsumer(ctx, key, consumer.Group(), consumer.Name()).Result()
	return result, normalize(err)
}

// XGroupDelConsumer removes consumer from its group, returning its pending
// entry count.
func (c *Client) XGroupDelConsumer(ctx context.Context, key string, consumer stream.Consumer) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.XGroupDelConsumer(ctx, key, consumer.Group(), consumer.Name()).Result()
	return result, normalize(err)
}

// XInfoStream returns the stream summary for key.
func (c *Client) XInfoStream(ctx context.Context, key string) (stream.Info, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.XInfoStream(ctx, key).Result()
	if err != nil {
		return stream.Info{}, normalize(err)
	}

	info := stream.Info{
		Length: result.Length,
		Groups: result.Groups,
	}
	if result.LastGeneratedID != "" {
		if info.LastGeneratedID, err = parseRecordID(result.LastGeneratedID); err != nil {
			return stream.Info{}, err
		}
	}
	if result.FirstEntry.ID != "" {
		first, err := recordFromMessage(key, result.FirstEntry)
		if err != nil {
			return stream.Info{}, err
		}
		info.FirstEntry = &first
	}
	if result.LastEntry.ID != "" {
		last, err := recordFromMessage(key, result.LastEntry)
		if err != nil {
			return stream.Info{}, err
		}
		info.LastEntry = &last
	}
	return info, nil
}

// XInfoGroups returns one row per consumer group on the stream at key.
func (c *Client) XInfoGroups(ctx context.Context, key string) ([]stream.GroupInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.XInfoGroups(ctx, key).Result()
	if err != nil {
		return nil, normalize(err)
	}

	groups := make([]stream.GroupInfo, 0, len(result))
	for _, row := range result {
		info := stream.GroupInfo{
			Name:      row.Name,
			Consumers: row.Consumers,
			Pending:   row.Pending,
		}
		if row.LastDeliveredID != "" {
			if info.LastDeliveredID, err = parseRecordID(row.LastDeliveredID); err != nil {
				return nil, err
			}
		}
		groups = append(groups, info)
	}
	return groups, nil
}
