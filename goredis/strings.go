package goredis

import (
	"context"
	"time"
)

// Get returns the string value stored at key.
// Returns connection.Nil when the key does not exist.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Get(ctx, key).Result()
	err = normalize(err)
	c.observeOperation("get", key, "", time.Since(start), err, int64(len(result)), nil)
	return result, err
}

// Set stores value at key. A zero ttl means the key never expires.
func (c *Client) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	start := time.Now()
	c.mu.RLock()
	defer c.mu.RUnlock()

	err := normalize(c.client.Set(ctx, key, value, ttl).Err())
	c.observeOperation("set", key, "", time.Since(start), err, 0, map[string]interface{}{
		"ttl": ttl.String(),
	})
	return err
}

// SetNX stores value at key only if the key does not exist.
// Returns true if the value was set.
func (c *Client) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.SetNX(ctx, key, value, ttl).Result()
	return result, normalize(err)
}

// GetSet atomically sets key to value and returns the old value.
// Returns connection.Nil when the key did not exist before.
func (c *Client) GetSet(ctx context.Context, key string, value interface{}) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.GetSet(ctx, key, value).Result()
	return result, normalize(err)
}

// MGet returns the values of all the given keys.
// Missing keys yield nil entries in the result slice.
func (c *Client) MGet(ctx context.Context, keys ...string) ([]interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.MGet(ctx, keys...).Result()
	return result, normalize(err)
}

// MSet sets multiple key/value pairs in a single round trip.
// Pairs must alternate key and value.
func (c *Client) MSet(ctx context.Context, pairs ...interface{}) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return normalize(c.client.MSet(ctx, pairs...).Err())
}

// Append appends value to the string stored at key.
// Returns the length of the string after the append.
func (c *Client) Append(ctx context.Context, key, value string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Append(ctx, key, value).Result()
	return result, normalize(err)
}

// StrLen returns the length of the string stored at key.
func (c *Client) StrLen(ctx context.Context, key string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.StrLen(ctx, key).Result()
	return result, normalize(err)
}

// Incr increments the integer stored at key by one.
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Incr(ctx, key).Result()
	return result, normalize(err)
}

// IncrBy increments the integer stored at key by increment.
func (c *Client) IncrBy(ctx context.Context, key string, increment int64) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.IncrBy(ctx, key, increment).Result()
	return result, normalize(err)
}

// IncrByFloat increments the float stored at key by increment.
func (c *Client) IncrByFloat(ctx context.Context, key string, increment float64) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.IncrByFloat(ctx, key, increment).Result()
	return result, normalize(err)
}

// Decr decrements the integer stored at key by one.
func (c *Client) Decr(ctx context.Context, key string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Decr(ctx, key).Result()
	return result, normalize(err)
}

// DecrBy decrements the integer stored at key by decrement.
func (c *Client) DecrBy(ctx context.Context, key string, decrement int64) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.DecrBy(ctx, key, decrement).Result()
	return result, normalize(err)
}
