package goredis

import (
	"context"
	"time"

	"github.com/stackbound/rediskit/connection"
)

// Del deletes one or more keys.
// Returns the number of keys that were deleted.
func (c *Client) Del(ctx context.Context, keys ...string) (int64, error) {
	start := time.Now()
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Del(ctx, keys...).Result()
	resource := ""
	if len(keys) > 0 {
		resource = keys[0]
	}
	c.observeOperation("del", resource, "", time.Since(start), err, result, map[string]interface{}{
		"key_count": len(keys),
	})
	return result, normalize(err)
}

// Exists checks if one or more keys exist.
// Returns the number of keys that exist.
func (c *Client) Exists(ctx context.Context, keys ...string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Exists(ctx, keys...).Result()
	return result, normalize(err)
}

// Expire sets a timeout on a key.
// After the timeout has expired, the key will be automatically deleted.
func (c *Client) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Expire(ctx, key, ttl).Result()
	return result, normalize(err)
}

// ExpireAt sets an expiration timestamp on a key.
// The key will be deleted when the timestamp is reached.
func (c *Client) ExpireAt(ctx context.Context, key string, tm time.Time) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ExpireAt(ctx, key, tm).Result()
	return result, normalize(err)
}

// TTL returns the remaining time to live of a key that has a timeout.
// Returns connection.TTLNoExpiry if the key exists but has no associated
// expire, connection.TTLMissing if the key does not exist.
func (c *Client) TTL(ctx context.Context, key string) (time.Duration, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.TTL(ctx, key).Result()
	// The driver reports the sentinel replies as raw -1/-2 Durations, which
	// already match connection.TTLNoExpiry and connection.TTLMissing.
	return result, normalize(err)
}

// Persist removes the expiration from a key.
func (c *Client) Persist(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Persist(ctx, key).Result()
	return result, normalize(err)
}

// Keys returns all keys matching the given pattern.
// Prefer Scan on large keyspaces.
func (c *Client) Keys(ctx context.Context, pattern string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Keys(ctx, pattern).Result()
	return result, normalize(err)
}

// Scan iterates the keyspace one page at a time.
func (c *Client) Scan(ctx context.Context, cursor uint64, match string, count int64) (connection.ScanResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys, next, err := c.client.Scan(ctx, cursor, match, count).Result()
	if err != nil {
		return connection.ScanResult{}, normalize(err)
	}

	return connection.ScanResult{Cursor: next, Keys: keys}, nil
}

// Type returns the type of the value stored at key.
func (c *Client) Type(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Type(ctx, key).Result()
	return result, normalize(err)
}

// Rename renames key to newKey, overwriting an existing newKey.
func (c *Client) Rename(ctx context.Context, key, newKey string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return normalize(c.client.Rename(ctx, key, newKey).Err())
}
