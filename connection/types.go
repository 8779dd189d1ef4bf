package connection

import (
	"context"
	"time"
)

// TTL sentinel replies, normalized across drivers. Both are raw Duration
// values, never scaled to seconds.
const (
	// TTLNoExpiry is returned by TTL when the key exists but carries no
	// timeout.
	TTLNoExpiry time.Duration = -1

	// TTLMissing is returned by TTL when the key does not exist.
	TTLMissing time.Duration = -2
)

// Z is a sorted-set member with its score.
type Z struct {
	Score  float64
	Member string
}

// ZRangeBy bounds a score-range query. Min and Max use the server grammar:
// "-inf", "+inf", "(1.5" for exclusive bounds, "1.5" for inclusive ones.
type ZRangeBy struct {
	Min    string
	Max    string
	Offset int64
	Count  int64
}

// Message is a single pub/sub delivery. Pattern is set only for
// pattern-based subscriptions.
type Message struct {
	Channel string
	Pattern string
	Payload string
}

// PubSub is an active subscription. Messages arrive on Channel until the
// subscription is closed; the channel is closed afterwards.
type PubSub interface {
	// Channel returns the delivery channel for this subscription.
	Channel() <-chan *Message

	// Close unsubscribes and releases the underlying connection.
	Close() error
}

// ScanResult is one page of a SCAN iteration.
type ScanResult struct {
	// Cursor is the cursor to pass to the next Scan call; zero when the
	// iteration is complete.
	Cursor uint64

	// Keys are the keys found in this page.
	Keys []string
}

// Tx is an open MULTI block. Commands are queued with Queue and executed
// atomically by Exec. A Tx is single-use: after Exec or Discard it must be
// abandoned.
type Tx interface {
	// Queue appends a command to the transaction. The command executes
	// when Exec is called; Queue itself reports only queueing errors.
	Queue(ctx context.Context, command string, args ...interface{}) error

	// Exec runs the queued commands atomically and returns one reply per
	// command. Returns ErrTxFailed when a watched key changed.
	Exec(ctx context.Context) ([]interface{}, error)

	// Discard drops the queued commands and releases the underlying
	// connection.
	Discard() error
}
