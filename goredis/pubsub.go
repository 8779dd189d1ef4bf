package goredis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stackbound/rediskit/connection"
)

// Publish posts message to channel, returning the number of subscribers that
// received it.
func (c *Client) Publish(ctx context.Context, channel string, message interface{}) (int64, error) {
	if err := connection.ValidateKey(channel); err != nil {
		return 0, err
	}

	start := time.Now()
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Publish(ctx, channel, message).Result()
	err = normalize(err)
	c.observeOperation("publish", channel, "", time.Since(start), err, result, nil)
	return result, err
}

// Subscribe subscribes to the given channels. The returned subscription must
// be closed when no longer needed.
func (c *Client) Subscribe(ctx context.Context, channels ...string) (connection.PubSub, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, connection.ErrClosed
	}

	return newSubscription(c.client.Subscribe(ctx, channels...)), nil
}

// PSubscribe subscribes to channels matching the given patterns.
func (c *Client) PSubscribe(ctx context.Context, patterns ...string) (connection.PubSub, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, connection.ErrClosed
	}

	return newSubscription(c.client.PSubscribe(ctx, patterns...)), nil
}

// subscription adapts *redis.PubSub to the connection.PubSub contract. A
// single goroutine pumps driver messages into the exposed channel and exits
// when the driver channel closes or the subscription is closed, whichever
// comes first, so a consumer that stops draining cannot strand it.
type subscription struct {
	pubsub *redis.PubSub
	ch     chan *connection.Message
	done   chan struct{}
	once   sync.Once
}

func newSubscription(pubsub *redis.PubSub) *subscription {
	s := &subscription{
		pubsub: pubsub,
		ch:     make(chan *connection.Message),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(s.ch)
		for msg := range pubsub.Channel() {
			out := &connection.Message{
				Channel: msg.Channel,
				Pattern: msg.Pattern,
				Payload: msg.Payload,
			}
			select {
			case s.ch <- out:
			case <-s.done:
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

// Close unsubscribes and releases the subscription.
func (s *subscription) Close() error {
	s.once.Do(func() { close(s.done) })
	return s.pubsub.Close()
}
