package goredis

import (
	"context"
)

// Do executes an arbitrary command and returns the raw reply.
func (c *Client) Do(ctx context.Context, command string, args ...interface{}) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cmdArgs := make([]interface{}, 0, len(args)+1)
	cmdArgs = append(cmdArgs, command)
	cmdArgs = append(cmdArgs, args...)

	result, err := c.client.Do(ctx, cmdArgs...).Result()
	return result, normalize(err)
}

// Ping checks if the Redis server is reachable and responsive.
// It returns an error if the connection fails.
func (c *Client) Ping(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.client.Ping(ctx).Err()
}

// Echo returns message round-tripped through the server.
func (c *Client) Echo(ctx context.Context, message string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Echo(ctx, message).Result()
	return result, normalize(err)
}
