package goredis

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackbound/rediskit/stream"
)

func TestRecordsFromStreams(t *testing.T) {
	streams := []redis.XStream{
		{
			Stream: "orders",
			Messages: []redis.XMessage{
				{ID: "1-0", Values: map[string]interface{}{"total": "10"}},
				{ID: "1-1", Values: map[string]interface{}{"total": "20"}},
			},
		},
		{
			Stream: "refunds",
			Messages: []redis.XMessage{
				{ID: "2-0", Values: map[string]interface{}{"total": "5"}},
			},
		},
	}

	records, err := recordsFromStreams(streams)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "orders", records[0].Stream)
	assert.Equal(t, "1-0", records[0].ID.String())
	assert.Equal(t, "refunds", records[2].Stream)
	assert.Equal(t, map[string]interface{}{"total": "5"}, records[2].Values)
}

func TestRecordsFromMessagesRejectsMalformedIDs(t *testing.T) {
	good := []redis.XMessage{
		{ID: "1-0", Values: map[string]interface{}{"k": "v"}},
		{ID: "2-0", Values: map[string]interface{}{"k": "v"}},
	}

	records, err := recordsFromMessages("events", good)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1-0", records[0].ID.String())
	assert.Equal(t, "2-0", records[1].ID.String())

	bad := []redis.XMessage{
		{ID: "1-0", Values: map[string]interface{}{"k": "v"}},
		{ID: "garbage", Values: map[string]interface{}{"k": "v"}},
	}

	_, err = recordsFromMessages("events", bad)
	assert.Error(t, err)

	_, err = recordsFromStreams([]redis.XStream{{Stream: "events", Messages: bad}})
	assert.Error(t, err)
}

func TestRecordsFromIDs(t *testing.T) {
	records, err := recordsFromIDs("events", []string{"1-0", "1-1"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "events", records[0].Stream)
	assert.Nil(t, records[0].Values)

	_, err = recordsFromIDs("events", []string{"1-0", "bad"})
	assert.Error(t, err)
}

func TestRecordFromReply(t *testing.T) {
	entry := []interface{}{
		"1526919030474-55",
		[]interface{}{"kind", "signup", "plan", "pro"},
	}

	rec, err := recordFromReply("events", entry)
	require.NoError(t, err)
	assert.Equal(t, "1526919030474-55", rec.ID.String())
	assert.Equal(t, map[string]interface{}{"kind": "signup", "plan": "pro"}, rec.Values)
}

func TestRecordFromReplyMalformed(t *testing.T) {
	tests := []struct {
		name  string
		entry interface{}
	}{
		{name: "not an array", entry: "1-0"},
		{name: "wrong length", entry: []interface{}{"1-0"}},
		{name: "bad id", entry: []interface{}{"nope", []interface{}{}}},
		{name: "odd field count", entry: []interface{}{"1-0", []interface{}{"orphan"}}},
		{name: "non-string field", entry: []interface{}{"1-0", []interface{}{42, "v"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := recordFromReply("events", tc.entry)
			assert.Error(t, err)
		})
	}
}

func TestOffsetArgs(t *testing.T) {
	args := offsetArgs([]stream.Offset{
		stream.LatestOffset("a"),
		stream.StartOffset("b"),
		stream.MustOffset("c", stream.From("5-0")),
	})

	// keys first, then the matching offset tokens
	assert.Equal(t, []string{"a", "b", "c", "$", "0", "5-0"}, args)
}

func TestBlockDuration(t *testing.T) {
	assert.Equal(t, time.Duration(-1), blockDuration(stream.ReadOptions{}))
	assert.Equal(t, time.Second, blockDuration(stream.ReadOptions{}.WithBlock(time.Second)))

	// zero blocks indefinitely and must still be sent
	assert.Equal(t, time.Duration(0), blockDuration(stream.ReadOptions{}.WithBlock(0)))
}

func TestIsNoRecords(t *testing.T) {
	assert.True(t, isNoRecords(redis.Nil))
	assert.False(t, isNoRecords(nil))
	assert.False(t, isNoRecords(assert.AnError))
}
