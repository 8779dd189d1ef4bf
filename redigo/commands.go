package redigo

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/stackbound/rediskit/connection"
)

// do checks out a pooled connection, runs one command, and returns the raw
// reply. Bulk strings come back as []byte; the per-command wrappers parse
// them with the redigo reply helpers.
func (c *Client) do(ctx context.Context, command string, args ...interface{}) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, connection.ErrClosed
	}

	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return redis.DoContext(conn, ctx, command, args...)
}

// doBlocking runs a blocking command with a read deadline sized to the
// block timeout instead of the pool's ReadTimeout. A zero timeout removes
// the deadline entirely.
func (c *Client) doBlocking(ctx context.Context, timeout time.Duration, command string, args ...interface{}) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, connection.ErrClosed
	}

	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	deadline := time.Duration(0)
	if timeout > 0 {
		deadline = timeout + time.Second
	}
	return redis.DoWithTimeout(conn, deadline, command, args...)
}

// Do executes an arbitrary command and returns the raw reply. Bulk strings
// are converted to string to match the contract shared with the go-redis
// adapter.
func (c *Client) Do(ctx context.Context, command string, args ...interface{}) (interface{}, error) {
	reply, err := c.do(ctx, command, args...)
	if err != nil {
		return nil, normalize(err)
	}
	return convertReply(reply), nil
}

// Ping checks if the Redis server is reachable and responsive.
// It returns an error if the connection fails.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, "PING")
	return err
}

// Echo returns message round-tripped through the server.
func (c *Client) Echo(ctx context.Context, message string) (string, error) {
	result, err := redis.String(c.do(ctx, "ECHO", message))
	return result, normalize(err)
}
