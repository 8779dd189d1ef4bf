package redigo

import (
	"context"
	"sync"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/stackbound/rediskit/connection"
)

// Publish posts message to channel, returning the number of subscribers that
// received it.
func (c *Client) Publish(ctx context.Context, channel string, message interface{}) (int64, error) {
	if err := connection.ValidateKey(channel); err != nil {
		return 0, err
	}

	start := time.Now()
	result, err := redis.Int64(c.do(ctx, "PUBLISH", channel, message))
	err = normalize(err)
	c.observeOperation("publish", channel, "", time.Since(start), err, result, nil)
	return result, err
}

// Subscribe subscribes to the given channels. The returned subscription must
// be closed when no longer needed.
func (c *Client) Subscribe(ctx context.Context, channels ...string) (connection.PubSub, error) {
	return c.subscribe(ctx, false, channels)
}

// PSubscribe subscribes to channels matching the given patterns.
func (c *Client) PSubscribe(ctx context.Context, patterns ...string) (connection.PubSub, error) {
	return c.subscribe(ctx, true, patterns)
}

func (c *Client) subscribe(ctx context.Context, patterns bool, targets []string) (connection.PubSub, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, connection.ErrClosed
	}

	// Subscriptions hold their connection for their whole lifetime, so it
	// comes from the dedicated dialer rather than the pooled set.
	conn, err := c.dialPubSub()
	if err != nil {
		return nil, err
	}

	psc := redis.PubSubConn{Conn: conn}
	if patterns {
		err = psc.PSubscribe(stringArgs(targets)...)
	} else {
		err = psc.Subscribe(stringArgs(targets)...)
	}
	if err != nil {
		conn.Close()
		return nil, err
	}

	return newSubscription(psc), nil
}

// subscription adapts a redigo PubSubConn to the connection.PubSub contract.
// A single goroutine drains the connection and feeds the exposed channel; it
// exits when the connection errors, which Close forces, or when the
// subscription is closed while a send is in flight, so a consumer that stops
// draining cannot strand it.
type subscription struct {
	psc  redis.PubSubConn
	ch   chan *connection.Message
	done chan struct{}
	once sync.Once
}

func newSubscription(psc redis.PubSubConn) *subscription {
	s := &subscription{
		psc:  psc,
		ch:   make(chan *connection.Message),
		done: make(chan struct{}),
	}

	go func() {
		defer close(s.ch)
		for {
			switch v := psc.Receive().(type) {
			case redis.Message:
				out := &connection.Message{
					Channel: v.Channel,
					Pattern: v.Pattern,
					Payload: string(v.Data),
				}
				select {
				case s.ch <- out:
				case <-s.done:
					return
				}
			case redis.Subscription:
				if v.Count == 0 {
					return
				}
			case error:
				return
			}
		}
	}()

	return s
}

// Channel returns the stream of received messages. The channel is closed when
// the subscription is closed.
func (s *subscription) Channel() <-chan *connection.Message {
	return s.ch
}

// Close unsubscribes and releases the subscription's connection.
func (s *subscription) Close() error {
	s.once.Do(func() { close(s.done) })
	return s.psc.Conn.Close()
}
