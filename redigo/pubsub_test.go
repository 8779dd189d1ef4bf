package redigo

import (
	"testing"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/require"
)

// chattyConn feeds an endless stream of pub/sub messages and stays usable
// after Close, so only the subscription's own exit path can end the pump.
type chattyConn struct{}

func (chattyConn) Close() error { return nil }
func (chattyConn) Err() error   { return nil }
func (chattyConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	return nil, nil
}
func (chattyConn) Send(cmd string, args ...interface{}) error { return nil }
func (chattyConn) Flush() error                               { return nil }
func (chattyConn) Receive() (interface{}, error) {
	return []interface{}{[]byte("message"), []byte("events"), []byte("payload")}, nil
}

func TestSubscriptionCloseWithoutDraining(t *testing.T) {
	sub := newSubscription(redis.PubSubConn{Conn: chattyConn{}})

	// Never read a message, so the pump is parked on its send when Close
	// arrives. Closing twice must also be safe.
	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-sub.Channel():
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
