package stream

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader serves pre-loaded record batches and then blocks until the
// context is cancelled, mimicking a blocking XREAD on an idle stream.
type fakeReader struct {
	mu      sync.Mutex
	batches [][]Record

	readOffsets    []string
	groupConsumers []Consumer
	acks           []RecordID
	groupCreates   int
	groupCreateErr error
	readErr        error
	reads          int
}

func (f *fakeReader) next(ctx context.Context) ([]Record, error) {
	f.mu.Lock()
	f.reads++
	if f.readErr != nil {
		f.mu.Unlock()
		return nil, f.readErr
	}
	if len(f.batches) > 0 {
		batch := f.batches[0]
		f.batches = f.batches[1:]
		f.mu.Unlock()
		return batch, nil
	}
	f.mu.Unlock()

	<-ctx.Done()
	return nil, ctx.Err()
}

func (f *fakeReader) XRead(ctx context.Context, opts ReadOptions, offsets ...Offset) ([]Record, error) {
	f.mu.Lock()
	for _, o := range offsets {
		f.readOffsets = append(f.readOffsets, o.ReadOffset().Token())
	}
	f.mu.Unlock()
	return f.next(ctx)
}

func (f *fakeReader) XReadGroup(ctx context.Context, consumer Consumer, opts ReadOptions, offsets ...Offset) ([]Record, error) {
	f.mu.Lock()
	f.groupConsumers = append(f.groupConsumers, consumer)
	f.mu.Unlock()
	return f.next(ctx)
}

func (f *fakeReader) XAck(ctx context.Context, key, group string, ids ...RecordID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acks = append(f.acks, ids...)
	return int64(len(ids)), nil
}

func (f *fakeReader) XGroupCreate(ctx context.Context, key, group string, offset ReadOffset, mkStream bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groupCreates++
	return f.groupCreateErr
}

func (f *fakeReader) ackedIDs() []RecordID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordID{}, f.acks...)
}

func (f *fakeReader) offsets() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.readOffsets...)
}

func (f *fakeReader) readCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

func record(id string) Record {
	return Record{
		Stream: "events",
		ID:     MustRecordID(id),
		Values: map[string]interface{}{"n": id},
	}
}

func collectRecords(t *testing.T, ch <-chan Record, n int) []Record {
	t.Helper()
	out := make([]Record, 0, n)
	for len(out) < n {
		select {
		case rec := <-ch:
			out = append(out, rec)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for records, got %d of %d", len(out), n)
		}
	}
	return out
}

func TestNewListenerValidation(t *testing.T) {
	_, err := NewListener(&fakeReader{}, ListenerConfig{})
	assert.ErrorIs(t, err, ErrEmptyStream)

	l, err := NewListener(&fakeReader{}, ListenerConfig{Stream: "events"})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestListenerPlainMode(t *testing.T) {
	reader := &fakeReader{
		batches: [][]Record{
			{record("1-0"), record("1-1")},
			{record("2-0")},
		},
	}

	l, err := NewListener(reader, ListenerConfig{Stream: "events"})
	require.NoError(t, err)

	got := make(chan Record, 8)
	require.NoError(t, l.Start(context.Background(), func(ctx context.Context, rec Record) error {
		got <- rec
		return nil
	}))

	recs := collectRecords(t, got, 3)
	require.NoError(t, l.Stop())

	assert.Equal(t, "1-0", recs[0].ID.String())
	assert.Equal(t, "1-1", recs[1].ID.String())
	assert.Equal(t, "2-0", recs[2].ID.String())

	// the cursor starts at "$" and then follows the last delivered ID
	offsets := reader.offsets()
	require.GreaterOrEqual(t, len(offsets), 2)
	assert.Equal(t, "$", offsets[0])
	assert.Equal(t, "1-1", offsets[1])

	// no group machinery in plain mode
	assert.Zero(t, reader.groupCreates)
	assert.Empty(t, reader.ackedIDs())
}

func TestListenerPlainModeExplicitOffset(t *testing.T) {
	reader := &fakeReader{batches: [][]Record{{record("5-0")}}}

	l, err := NewListener(reader, ListenerConfig{
		Stream: "events",
		Offset: FromStart(),
	})
	require.NoError(t, err)

	got := make(chan Record, 1)
	require.NoError(t, l.Start(context.Background(), func(ctx context.Context, rec Record) error {
		got <- rec
		return nil
	}))

	collectRecords(t, got, 1)
	require.NoError(t, l.Stop())

	assert.Equal(t, "0", reader.offsets()[0])
}

func TestListenerGroupMode(t *testing.T) {
	reader := &fakeReader{
		batches: [][]Record{
			{record("1-0"), record("1-1"), record("1-2")},
		},
	}

	l, err := NewListener(reader, ListenerConfig{
		Stream:   "events",
		Consumer: MustConsumer("billing", "worker-1"),
	})
	require.NoError(t, err)

	// the middle record fails and must stay pending
	got := make(chan Record, 8)
	require.NoError(t, l.Start(context.Background(), func(ctx context.Context, rec Record) error {
		got <- rec
		if rec.ID.String() == "1-1" {
			return errors.New("boom")
		}
		return nil
	}))

	collectRecords(t, got, 3)

	// acks are asynchronous relative to handler delivery
	require.Eventually(t, func() bool {
		return len(reader.ackedIDs()) == 2
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, l.Stop())

	acked := reader.ackedIDs()
	assert.Equal(t, "1-0", acked[0].String())
	assert.Equal(t, "1-2", acked[1].String())

	assert.Equal(t, 1, reader.groupCreates)
	require.NotEmpty(t, reader.groupConsumers)
	assert.Equal(t, "billing", reader.groupConsumers[0].Group())
}

func TestListenerGroupAlreadyExists(t *testing.T) {
	reader := &fakeReader{
		groupCreateErr: errors.New("BUSYGROUP Consumer Group name already exists"),
	}

	l, err := NewListener(reader, ListenerConfig{
		Stream:   "events",
		Consumer: MustConsumer("billing", "worker-1"),
	})
	require.NoError(t, err)

	require.NoError(t, l.Start(context.Background(), func(ctx context.Context, rec Record) error {
		return nil
	}))
	require.NoError(t, l.Stop())
}

func TestListenerGroupCreateFailure(t *testing.T) {
	reader := &fakeReader{
		groupCreateErr: errors.New("LOADING Redis is loading the dataset in memory"),
	}

	l, err := NewListener(reader, ListenerConfig{
		Stream:   "events",
		Consumer: MustConsumer("billing", "worker-1"),
	})
	require.NoError(t, err)

	err = l.Start(context.Background(), func(ctx context.Context, rec Record) error { return nil })
	assert.Error(t, err)
}

func TestListenerStartTwice(t *testing.T) {
	l, err := NewListener(&fakeReader{}, ListenerConfig{Stream: "events"})
	require.NoError(t, err)

	noop := func(ctx context.Context, rec Record) error { return nil }
	require.NoError(t, l.Start(context.Background(), noop))
	assert.ErrorIs(t, l.Start(context.Background(), noop), ErrAlreadyStarted)
	require.NoError(t, l.Stop())
}

func TestListenerStopWithoutStart(t *testing.T) {
	l, err := NewListener(&fakeReader{}, ListenerConfig{Stream: "events"})
	require.NoError(t, err)
	assert.NoError(t, l.Stop())
}

func TestListenerStopsOnContextCancel(t *testing.T) {
	reader := &fakeReader{}
	l, err := NewListener(reader, ListenerConfig{Stream: "events"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, l.Start(ctx, func(ctx context.Context, rec Record) error { return nil }))

	cancel()
	assert.NoError(t, l.Stop())
}

func TestListenerPausesAfterReadError(t *testing.T) {
	reader := &fakeReader{readErr: errors.New("connection refused")}
	l, err := NewListener(reader, ListenerConfig{
		Stream:        "events",
		RetryInterval: time.Hour,
	})
	require.NoError(t, err)

	require.NoError(t, l.Start(context.Background(), func(ctx context.Context, rec Record) error { return nil }))

	require.Eventually(t, func() bool {
		return reader.readCount() == 1
	}, time.Second, 5*time.Millisecond)

	// A failing reader must not be hammered: the loop sits in its retry
	// pause instead of re-reading immediately.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, reader.readCount())

	// Stop interrupts the pause.
	assert.NoError(t, l.Stop())
}
