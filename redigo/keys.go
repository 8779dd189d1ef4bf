package redigo

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/stackbound/rediskit/connection"
)

// Del deletes one or more keys.
// Returns the number of keys that were deleted.
func (c *Client) Del(ctx context.Context, keys ...string) (int64, error) {
	start := time.Now()

	result, err := redis.Int64(c.do(ctx, "DEL", stringArgs(keys)...))
	err = normalize(err)
	resource := ""
	if len(keys) > 0 {
		resource = keys[0]
	}
	c.observeOperation("del", resource, "", time.Since(start), err, result, map[string]interface{}{
		"key_count": len(keys),
	})
	return result, err
}

// Exists checks if one or more keys exist.
// Returns the number of keys that exist.
func (c *Client) Exists(ctx context.Context, keys ...string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "EXISTS", stringArgs(keys)...))
	return result, normalize(err)
}

// Expire sets a timeout on a key.
// After the timeout has expired, the key will be automatically deleted.
func (c *Client) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := redis.Bool(c.do(ctx, "PEXPIRE", key, ttl.Milliseconds()))
	return result, normalize(err)
}

// ExpireAt sets an expiration timestamp on a key.
// The key will be deleted when the timestamp is reached.
func (c *Client) ExpireAt(ctx context.Context, key string, tm time.Time) (bool, error) {
	result, err := redis.Bool(c.do(ctx, "EXPIREAT", key, tm.Unix()))
	return result, normalize(err)
}

// TTL returns the remaining time to live of a key that has a timeout.
// Returns connection.TTLNoExpiry if the key exists but has no associated
// expire, connection.TTLMissing if the key does not exist.
func (c *Client) TTL(ctx context.Context, key string) (time.Duration, error) {
	secs, err := redis.Int64(c.do(ctx, "TTL", key))
	if err != nil {
		return 0, normalize(err)
	}
	return ttlFromSeconds(secs), nil
}

// ttlFromSeconds maps a TTL reply to a Duration. The -1/-2 sentinels stay
// raw Durations rather than being scaled to seconds, so both drivers report
// the same values.
func ttlFromSeconds(secs int64) time.Duration {
	switch secs {
	case -1:
		return connection.TTLNoExpiry
	case -2:
		return connection.TTLMissing
	}
	return time.Duration(secs) * time.Second
}

// Persist removes the expiration from a key.
func (c *Client) Persist(ctx context.Context, key string) (bool, error) {
	result, err := redis.Bool(c.do(ctx, "PERSIST", key))
	return result, normalize(err)
}

// Keys returns all keys matching the given pattern.
// Prefer Scan on large keyspaces.
func (c *Client) Keys(ctx context.Context, pattern string) ([]string, error) {
	result, err := redis.Strings(c.do(ctx, "KEYS", pattern))
	return result, normalize(err)
}

// Scan iterates the keyspace one page at a time.
func (c *Client) Scan(ctx context.Context, cursor uint64, match string, count int64) (connection.ScanResult, error) {
	args := []interface{}{cursor}
	if match != "" {
		args = append(args, "MATCH", match)
	}
	if count > 0 {
		args = append(args, "COUNT", count)
	}

	values, err := redis.Values(c.do(ctx, "SCAN", args...))
	if err != nil {
		return connection.ScanResult{}, normalize(err)
	}

	next, err := redis.Uint64(values[0], nil)
	if err != nil {
		return connection.ScanResult{}, err
	}
	keys, err := redis.Strings(values[1], nil)
	if err != nil {
		return connection.ScanResult{}, err
	}

	return connection.ScanResult{Cursor: next, Keys: keys}, nil
}

// Type returns the type of the value stored at key.
func (c *Client) Type(ctx context.Context, key string) (string, error) {
	result, err := redis.String(c.do(ctx, "TYPE", key))
	return result, normalize(err)
}

// Rename renames key to newKey, overwriting an existing newKey.
func (c *Client) Rename(ctx context.Context, key, newKey string) error {
	_, err := c.do(ctx, "RENAME", key, newKey)
	return normalize(err)
}
