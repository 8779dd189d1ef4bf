package redigo

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"
)

// LPush prepends values to the list stored at key.
// Returns the length of the list after the push.
func (c *Client) LPush(ctx context.Context, key string, values ...interface{}) (int64, error) {
	args := append([]interface{}{key}, values...)
	result, err := redis.Int64(c.do(ctx, "LPUSH", args...))
	return result, normalize(err)
}

// RPush appends values to the list stored at key.
// Returns the length of the list after the push.
func (c *Client) RPush(ctx context.Context, key string, values ...interface{}) (int64, error) {
	args := append([]interface{}{key}, values...)
	result, err := redis.Int64(c.do(ctx, "RPUSH", args...))
	return result, normalize(err)
}

// LPop removes and returns the first element of the list stored at key.
// Returns connection.Nil when the list is empty or missing.
func (c *Client) LPop(ctx context.Context, key string) (string, error) {
	result, err := redis.String(c.do(ctx, "LPOP", key))
	return result, normalize(err)
}

// RPop removes and returns the last element of the list stored at key.
// Returns connection.Nil when the list is empty or missing.
func (c *Client) RPop(ctx context.Context, key string) (string, error) {
	result, err := redis.String(c.do(ctx, "RPOP", key))
	return result, normalize(err)
}

// LRange returns the elements of the list stored at key in [start, stop].
// Negative indices count from the end of the list.
func (c *Client) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	result, err := redis.Strings(c.do(ctx, "LRANGE", key, start, stop))
	return result, normalize(err)
}

// LLen returns the length of the list stored at key.
func (c *Client) LLen(ctx context.Context, key string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "LLEN", key))
	return result, normalize(err)
}

// LRem removes up to count occurrences of value from the list stored at key.
// A negative count removes from the tail, zero removes all occurrences.
func (c *Client) LRem(ctx context.Context, key string, count int64, value interface{}) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "LREM", key, count, value))
	return result, normalize(err)
}

// LTrim trims the list stored at key to the range [start, stop].
func (c *Client) LTrim(ctx context.Context, key string, start, stop int64) error {
	_, err := c.do(ctx, "LTRIM", key, start, stop)
	return normalize(err)
}

// LIndex returns the element at index in the list stored at key.
// Returns connection.Nil when the index is out of range.
func (c *Client) LIndex(ctx context.Context, key string, index int64) (string, error) {
	result, err := redis.String(c.do(ctx, "LINDEX", key, index))
	return result, normalize(err)
}

// LSet sets the element at index in the list stored at key.
func (c *Client) LSet(ctx context.Context, key string, index int64, value interface{}) error {
	_, err := c.do(ctx, "LSET", key, index, value)
	return normalize(err)
}

// BLPop blocks until an element is available on one of the given lists,
// or the timeout elapses. A zero timeout blocks indefinitely.
// Returns connection.Nil on timeout.
func (c *Client) BLPop(ctx context.Context, timeout time.Duration, keys ...string) ([]string, error) {
	args := append(stringArgs(keys), formatSeconds(timeout))
	result, err := redis.Strings(c.doBlocking(ctx, timeout, "BLPOP", args...))
	return result, normalize(err)
}

// BRPop blocks until an element is available on one of the given lists,
// or the timeout elapses. A zero timeout blocks indefinitely.
// Returns connection.Nil on timeout.
func (c *Client) BRPop(ctx context.Context, timeout time.Duration, keys ...string) ([]string, error) {
	args := append(stringArgs(keys), formatSeconds(timeout))
	result, err := redis.Strings(c.doBlocking(ctx, timeout, "BRPOP", args...))
	return result, normalize(err)
}

// formatSeconds renders a timeout the way the blocking commands expect:
// integer seconds when whole, fractional otherwise.
func formatSeconds(d time.Duration) interface{} {
	if d%time.Second == 0 {
		return int64(d / time.Second)
	}
	return d.Seconds()
}
