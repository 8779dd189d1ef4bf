package goredis

import (
	"context"
	"time"
)

// DBSize returns the number of keys in the selected database.
func (c *Client) DBSize(ctx context.Context) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.DBSize(ctx).Result()
	return result, normalize(err)
}

// FlushDB removes all keys from the selected database.
func (c *Client) FlushDB(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return normalize(c.client.FlushDB(ctx).Err())
}

// FlushAll removes all keys from all databases.
func (c *Client) FlushAll(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return normalize(c.client.FlushAll(ctx).Err())
}

// Info returns the server's INFO text, optionally restricted to sections.
func (c *Client) Info(ctx context.Context, sections ...string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Info(ctx, sections...).Result()
	return result, normalize(err)
}

// Time returns the server clock.
func (c *Client) Time(ctx context.Context) (time.Time, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Time(ctx).Result()
	return result, normalize(err)
}

// ConfigGet returns configuration parameters matching parameter, which may be
// a glob pattern.
func (c *Client) ConfigGet(ctx context.Context, parameter string) (map[string]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ConfigGet(ctx, parameter).Result()
	return result, normalize(err)
}

// ConfigSet updates a configuration parameter at runtime.
func (c *Client) ConfigSet(ctx context.Context, parameter, value string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return normalize(c.client.ConfigSet(ctx, parameter, value).Err())
}
