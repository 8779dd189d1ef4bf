package redigo

import (
	"context"

	"github.com/gomodule/redigo/redis"

	"github.com/stackbound/rediskit/connection"
)

// Multi opens a MULTI/EXEC transaction on a dedicated pooled connection.
// The connection returns to the pool when Exec or Discard is called.
func (c *Client) Multi(ctx context.Context) (connection.Tx, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, connection.ErrClosed
	}

	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return nil, err
	}

	return &transaction{conn: conn}, nil
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

	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return err
	}

	tx := &transaction{conn: conn}
	defer tx.release()

	if _, err := conn.Do("WATCH", stringArgs(keys)...); err != nil {
		return err
	}

	return fn(tx)
}

// transaction adapts a redigo connection running MULTI/EXEC to the
// connection.Tx contract. MULTI is sent lazily on the first Queue so a Watch
// callback can inspect keys before queueing.
type transaction struct {
	conn    redis.Conn
	started bool
	done    bool
}

// Queue buffers a command for execution.
func (t *transaction) Queue(ctx context.Context, command string, args ...interface{}) error {
	if !t.started {
		if err := t.conn.Send("MULTI"); err != nil {
			return err
		}
		t.started = true
	}
	return t.conn.Send(command, args...)
}

// Exec sends the queued commands and returns their replies in queue order.
// Returns connection.ErrTxFailed when a watched key changed.
func (t *transaction) Exec(ctx context.Context) ([]interface{}, error) {
	defer t.release()

	if !t.started {
		if err := t.conn.Send("MULTI"); err != nil {
			return nil, err
		}
	}

	// EXEC replies with a nil array when a watched key changed.
	reply, err := t.conn.Do("EXEC")
	if err != nil {
		return nil, normalize(err)
	}
	if reply == nil {
		return nil, connection.ErrTxFailed
	}

	values, ok := reply.([]interface{})
	if !ok {
		return nil, connection.ErrTxFailed
	}
	for i := range values {
		values[i] = convertReply(values[i])
	}
	return values, nil
}

// Discard drops the queued commands without executing them.
func (t *transaction) Discard() error {
	defer t.release()

	if !t.started {
		return nil
	}
	_, err := t.conn.Do("DISCARD")
	return err
}

// release returns the connection to the pool exactly once.
func (t *transaction) release() {
	if t.done {
		return
	}
	t.done = true
	t.conn.Close()
}
