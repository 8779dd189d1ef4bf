package redigo

import (
	"context"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

// DBSize returns the number of keys in the selected database.
func (c *Client) DBSize(ctx context.Context) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "DBSIZE"))
	return result, normalize(err)
}

// FlushDB removes all keys from the selected database.
func (c *Client) FlushDB(ctx context.Context) error {
	_, err := c.do(ctx, "FLUSHDB")
	return normalize(err)
}

// FlushAll removes all keys from all databases.
func (c *Client) FlushAll(ctx context.Context) error {
	_, err := c.do(ctx, "FLUSHALL")
	return normalize(err)
}

// Info returns the server's INFO text, optionally restricted to sections.
func (c *Client) Info(ctx context.Context, sections ...string) (string, error) {
	result, err := redis.String(c.do(ctx, "INFO", stringArgs(sections)...))
	return result, normalize(err)
}

// Time returns the server clock.
func (c *Client) Time(ctx context.Context) (time.Time, error) {
	values, err := redis.Int64s(c.do(ctx, "TIME"))
	if err != nil {
		return time.Time{}, normalize(err)
	}
	if len(values) != 2 {
		return time.Time{}, fmt.Errorf("redigo: unexpected TIME reply length %d", len(values))
	}
	return time.Unix(values[0], values[1]*int64(time.Microsecond)), nil
}

// ConfigGet returns configuration parameters matching parameter, which may be
// a glob pattern.
func (c *Client) ConfigGet(ctx context.Context, parameter string) (map[string]string, error) {
	result, err := redis.StringMap(c.do(ctx, "CONFIG", "GET", parameter))
	return result, normalize(err)
}

// ConfigSet updates a configuration parameter at runtime.
func (c *Client) ConfigSet(ctx context.Context, parameter, value string) error {
	_, err := c.do(ctx, "CONFIG", "SET", parameter, value)
	return normalize(err)
}
