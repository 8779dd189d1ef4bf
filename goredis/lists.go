package goredis

import (
	"context"
	"time"
)

// LPush prepends values to the list stored at key.
// Returns the length of the list after the push.
func (c *Client) LPush(ctx context.Context, key string, values ...interface{}) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.LPush(ctx, key, values...).Result()
	return result, normalize(err)
}

// RPush appends values to the list stored at key.
// Returns the length of the list after the push.
func (c *Client) RPush(ctx context.Context, key string, values ...interface{}) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.RPush(ctx, key, values...).Result()
	return result, normalize(err)
}

// LPop removes and returns the first element of the list stored at key.
// Returns connection.Nil when the list is empty or missing.
func (c *Client) LPop(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.LPop(ctx, key).Result()
	return result, normalize(err)
}

// RPop removes and returns the last element of the list stored at key.
// Returns connection.Nil when the list is empty or missing.
func (c *Client) RPop(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.RPop(ctx, key).Result()
	return result, normalize(err)
}

// LRange returns the elements of the list stored at key in [start, stop].
// Negative indices count from the end of the list.
func (c *Client) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.LRange(ctx, key, start, stop).Result()
	return result, normalize(err)
}

// LLen returns the length of the list stored at key.
func (c *Client) LLen(ctx context.Context, key string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.LLen(ctx, key).Result()
	return result, normalize(err)
}

// LRem removes up to count occurrences of value from the list stored at key.
// A negative count removes from the tail, zero removes all occurrences.
func (c *Client) LRem(ctx context.Context, key string, count int64, value interface{}) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.LRem(ctx, key, count, value).Result()
	return result, normalize(err)
}

// LTrim trims the list stored at key to the range [start, stop].
func (c *Client) LTrim(ctx context.Context, key string, start, stop int64) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return normalize(c.client.LTrim(ctx, key, start, stop).Err())
}

// LIndex returns the element at index in the list stored at key.
// Returns connection.Nil when the index is out of range.
func (c *Client) LIndex(ctx context.Context, key string, index int64) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.LIndex(ctx, key, index).Result()
	return result, normalize(err)
}

// LSet sets the element at index in the list stored at key.
func (c *Client) LSet(ctx context.Context, key string, index int64, value interface{}) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return normalize(c.client.LSet(ctx, key, index, value).Err())
}

// BLPop blocks until an element is available on one of the given lists,
// or the timeout elapses. A zero timeout blocks indefinitely.
// Returns connection.Nil on timeout.
func (c *Client) BLPop(ctx context.Context, timeout time.Duration, keys ...string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.BLPop(ctx, timeout, keys...).Result()
	return result, normalize(err)
}

// BRPop blocks until an element is available on one of the given lists,
// or the timeout elapses. A zero timeout blocks indefinitely.
// Returns connection.Nil on timeout.
func (c *Client) BRPop(ctx context.Context, timeout time.Duration, keys ...string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.BRPop(ctx, timeout, keys...).Result()
	return result, normalize(err)
}
