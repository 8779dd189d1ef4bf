package stream

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBatchSize is the per-read entry limit when none is configured.
	DefaultBatchSize int64 = 100

	// DefaultBlock is the per-read blocking budget when none is configured.
	DefaultBlock = 2 * time.Second

	// DefaultRetryInterval is the pause after a failed read when none is
	// configured.
	DefaultRetryInterval = time.Second
)

var (
	// ErrEmptyStream is returned when a listener is configured without a
	// stream key.
	ErrEmptyStream = errors.New("stream: stream key cannot be empty")

	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("stream: listener already started")
)

// Reader is the slice of the connection contract the listener drives.
// Both driver clients in this library satisfy it.
type Reader interface {
	XRead(ctx context.Context, opts ReadOptions, offsets ...Offset) ([]Record, error)
	XReadGroup(ctx context.Context, consumer Consumer, opts ReadOptions, offsets ...Offset) ([]Record, error)
	XAck(ctx context.Context, key, group string, ids ...RecordID) (int64, error)
	XGroupCreate(ctx context.Context, key, group string, offset ReadOffset, mkStream bool) error
}

// Handler processes one delivered record. Returning an error stops the
// record from being acknowledged; it will be redelivered per the consumer
// group's pending semantics.
type Handler func(ctx context.Context, rec Record) error

// Logger is the narrow logging interface the listener accepts.
type Logger interface {
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// ListenerConfig configures a Listener.
type ListenerConfig struct {
	// Stream is the stream key to consume. Required.
	Stream string

	// Consumer selects consumer-group mode when non-zero: the listener
	// creates the group if missing, reads with ">" and acknowledges
	// records after the handler succeeds. When zero, the listener uses
	// plain XREAD and tracks its own cursor.
	Consumer Consumer

	// Offset is the starting read position. Defaults to Latest. In group
	// mode it is only used when creating the group.
	Offset ReadOffset

	// BatchSize is the per-read entry limit. Default: DefaultBatchSize.
	BatchSize int64

	// Block is the per-read blocking budget. Default: DefaultBlock.
	Block time.Duration

	// RetryInterval is the pause after a failed read, so a persistent
	// server error does not spin the loop. Default: DefaultRetryInterval.
	RetryInterval time.Duration

	// Logger receives read and handler failures. Optional.
	Logger Logger
}

// Listener continuously reads a stream and feeds records to a handler on a
// dedicated goroutine. It is the channel-and-callback rendition of a
// reactive stream consumer: delivery order follows the stream order, and in
// group mode an entry is acknowledged only after its handler returns nil.
type Listener struct {
	reader Reader
	cfg    ListenerConfig

	group  *errgroup.Group
	cancel context.CancelFunc
}

// NewListener builds a Listener over any Reader implementation.
func NewListener(reader Reader, cfg ListenerConfig) (*Listener, error) {
	if cfg.Stream == "" {
		return nil, ErrEmptyStream
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Block <= 0 {
		cfg.Block = DefaultBlock
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = DefaultRetryInterval
	}

	return &Listener{
		reader: reader,
		cfg:    cfg,
	}, nil
}

// Start begins consuming and returns immediately. In group mode the consumer
// group is created first; a group that already exists is not an error.
// The read loop stops when ctx is cancelled or Stop is called.
func (l *Listener) Start(ctx context.Context, h Handler) error {
	if l.group != nil {
		return ErrAlreadyStarted
	}

	if !l.cfg.Consumer.IsZero() {
		if err := l.reader.XGroupCreate(ctx, l.cfg.Stream, l.cfg.Consumer.Group(), l.cfg.Offset, true); err != nil && !isBusyGroup(err) {
			return fmt.Errorf("stream: create group %q: %w", l.cfg.Consumer.Group(), err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	l.group = g
	l.cancel = cancel

	g.Go(func() error {
		if l.cfg.Consumer.IsZero() {
			return l.readLoop(ctx, h)
		}
		return l.groupLoop(ctx, h)
	})

	return nil
}

// Stop cancels the read loop and waits for it to drain. Returns the loop's
// terminal error, if any, excluding context cancellation.
func (l *Listener) Stop() error {
	if l.group == nil {
		return nil
	}
	l.cancel()

	err := l.group.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// readLoop consumes via plain XREAD, advancing its own cursor. XREAD is
// exclusive, so the last seen ID is passed back unmodified.
func (l *Listener) readLoop(ctx context.Context, h Handler) error {
	offset := l.cfg.Offset
	opts := ReadOptions{}.WithCount(l.cfg.BatchSize).WithBlock(l.cfg.Block)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		recs, err := l.reader.XRead(ctx, opts, MustOffset(l.cfg.Stream, offset))
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.warn("stream read failed", err)

			if err := l.pause(ctx); err != nil {
				return err
			}
			continue
		}

		for _, rec := range recs {
			if err := h(ctx, rec); err != nil {
				l.warn("stream handler failed", err)
			}
			offset = FromID(rec.ID)
		}
	}
}

// groupLoop consumes via XREADGROUP and acknowledges each record after its
// handler succeeds. Failed records stay pending for redelivery.
func (l *Listener) groupLoop(ctx context.Context, h Handler) error {
	opts := ReadOptions{}.WithCount(l.cfg.BatchSize).WithBlock(l.cfg.Block)
	offset := MustOffset(l.cfg.Stream, LastConsumed())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		recs, err := l.reader.XReadGroup(ctx, l.cfg.Consumer, opts, offset)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.warn("stream group read failed", err)

			if err := l.pause(ctx); err != nil {
				return err
			}
			continue
		}

		for _, rec := range recs {
			if err := h(ctx, rec); err != nil {
				l.warn("stream handler failed", err)

				continue
			}

			if _, err := l.reader.XAck(ctx, l.cfg.Stream, l.cfg.Consumer.Group(), rec.ID); err != nil {
				l.warn("stream ack failed", err)
			}
		}
	}
}

// pause sleeps for the retry interval between failed reads, returning early
// when ctx is cancelled.
func (l *Listener) pause(ctx context.Context) error {
	timer := time.NewTimer(l.cfg.RetryInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (l *Listener) warn(msg string, err error) {
	if l.cfg.Logger == nil {
		return
	}
	l.cfg.Logger.Warn(msg, err, map[string]interface{}{
		"stream": l.cfg.Stream,
	})
}

// isBusyGroup matches the server reply for XGROUP CREATE on an existing
// group. The text is part of the server contract, not of either driver.
func isBusyGroup(err error) bool {
	return err != nil && strings.Contains(err.Error(), "BUSYGROUP")
}
