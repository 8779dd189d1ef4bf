package redigo

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"
)

// Get returns the string value stored at key.
// Returns connection.Nil when the key does not exist.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()

	result, err := redis.String(c.do(ctx, "GET", key))
	err = normalize(err)
	c.observeOperation("get", key, "", time.Since(start), err, int64(len(result)), nil)
	return result, err
}

// Set stores value at key. A zero ttl means the key never expires.
func (c *Client) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	start := time.Now()

	args := []interface{}{key, value}
	if ttl > 0 {
		args = append(args, "PX", ttl.Milliseconds())
	}

	_, err := c.do(ctx, "SET", args...)
	err = normalize(err)
	c.observeOperation("set", key, "", time.Since(start), err, 0, map[string]interface{}{
		"ttl": ttl.String(),
	})
	return err
}

// SetNX stores value at key only if the key does not exist.
// Returns true if the value was set.
func (c *Client) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	args := []interface{}{key, value}
	if ttl > 0 {
		args = append(args, "PX", ttl.Milliseconds())
	}
	args = append(args, "NX")

	// SET ... NX replies OK when set, nil when the key already existed.
	reply, err := c.do(ctx, "SET", args...)
	if err != nil {
		return false, normalize(err)
	}
	return reply != nil, nil
}

// GetSet atomically sets key to value and returns the old value.
// Returns connection.Nil when the key did not exist before.
func (c *Client) GetSet(ctx context.Context, key string, value interface{}) (string, error) {
	result, err := redis.String(c.do(ctx, "GETSET", key, value))
	return result, normalize(err)
}

// MGet returns the values of all the given keys.
// Missing keys yield nil entries in the result slice.
func (c *Client) MGet(ctx context.Context, keys ...string) ([]interface{}, error) {
	result, err := nilValues(c.do(ctx, "MGET", stringArgs(keys)...))
	return result, normalize(err)
}

// MSet sets multiple key/value pairs in a single round trip.
// Pairs must alternate key and value.
func (c *Client) MSet(ctx context.Context, pairs ...interface{}) error {
	_, err := c.do(ctx, "MSET", pairs...)
	return normalize(err)
}

// Append appends value to the string stored at key.
// Returns the length of the string after the append.
func (c *Client) Append(ctx context.Context, key, value string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "APPEND", key, value))
	return result, normalize(err)
}

// StrLen returns the length of the string stored at key.
func (c *Client) StrLen(ctx context.Context, key string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "STRLEN", key))
	return result, normalize(err)
}

// Incr increments the integer stored at key by one.
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "INCR", key))
	return result, normalize(err)
}

// IncrBy increments the integer stored at key by increment.
func (c *Client) IncrBy(ctx context.Context, key string, increment int64) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "INCRBY", key, increment))
	return result, normalize(err)
}

// IncrByFloat increments the float stored at key by increment.
func (c *Client) IncrByFloat(ctx context.Context, key string, increment float64) (float64, error) {
	result, err := redis.Float64(c.do(ctx, "INCRBYFLOAT", key, increment))
	return result, normalize(err)
}

// Decr decrements the integer stored at key by one.
func (c *Client) Decr(ctx context.Context, key string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "DECR", key))
	return result, normalize(err)
}

// DecrBy decrements the integer stored at key by decrement.
func (c *Client) DecrBy(ctx context.Context, key string, decrement int64) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "DECRBY", key, decrement))
	return result, normalize(err)
}
