package goredis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/stackbound/rediskit/connection"
)

// Multi opens a MULTI/EXEC transaction. Commands queued on the returned
// transaction are buffered client-side and sent as one block on Exec.
func (c *Client) Multi(ctx context.Context) (connection.Tx, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, connection.ErrClosed
	}

	return &transaction{pipe: c.client.TxPipeline()}, nil
}

// Watch runs fn with optimistic locking on keys. The transaction handed to
// fn aborts with connection.ErrTxFailed when any watched key changes before
// Exec.
func (c *Client) Watch(ctx context.Context, fn func(tx connection.Tx) error, keys ...string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return connection.ErrClosed
	}

	err := c.client.Watch(ctx, func(rtx *redis.Tx) error {
		return fn(&transaction{pipe: rtx.TxPipeline()})
	}, keys...)
	return normalize(err)
}

// transaction adapts a go-redis transactional pipeline to the connection.Tx
// contract.
type transaction struct {
	pipe redis.Pipeliner
	cmds []*redis.Cmd
}

// Queue buffers a command for execution.
func (t *transaction) Queue(ctx context.Context, command string, args ...interface{}) error {
	cmdArgs := make([]interface{}, 0, len(args)+1)
	cmdArgs = append(cmdArgs, command)
	cmdArgs = append(cmdArgs, args...)

	t.cmds = append(t.cmds, t.pipe.Do(ctx, cmdArgs...))
	return nil
}

// Exec sends the queued commands and returns their replies in queue order.
// Returns connection.ErrTxFailed when a watched key changed.
func (t *transaction) Exec(ctx context.Context) ([]interface{}, error) {
	if _, err := t.pipe.Exec(ctx); err != nil {
		return nil, normalize(err)
	}

	results := make([]interface{}, len(t.cmds))
	for i, cmd := range t.cmds {
		value, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				results[i] = nil
				continue
			}
			return nil, normalize(err)
		}
		results[i] = value
	}
	return results, nil
}

// Discard drops the queued commands without sending them.
func (t *transaction) Discard() error {
	t.pipe.Discard()
	t.cmds = nil
	return nil
}
