package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOffsetTokens(t *testing.T) {
	tests := []struct {
		name   string
		offset ReadOffset
		want   string
	}{
		{name: "latest", offset: Latest(), want: "$"},
		{name: "last consumed", offset: LastConsumed(), want: ">"},
		{name: "explicit", offset: From("1526919030474-55"), want: "1526919030474-55"},
		{name: "from id", offset: FromID(MustRecordID("7-0")), want: "7-0"},
		{name: "from start", offset: FromStart(), want: "0"},
		{name: "zero value behaves like latest", offset: ReadOffset{}, want: "$"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.offset.Token())
			assert.Equal(t, tc.want, tc.offset.String())
		})
	}
}

func TestReadOffsetModes(t *testing.T) {
	assert.True(t, Latest().IsLatest())
	assert.True(t, ReadOffset{}.IsLatest())
	assert.False(t, FromStart().IsLatest())

	assert.True(t, LastConsumed().IsLastConsumed())
	assert.False(t, Latest().IsLastConsumed())
}

func TestNewOffset(t *testing.T) {
	o, err := NewOffset("events", Latest())
	require.NoError(t, err)
	assert.Equal(t, "events", o.Stream())
	assert.Equal(t, "$", o.ReadOffset().Token())
	assert.Equal(t, "events@$", o.String())

	_, err = NewOffset("", Latest())
	assert.Error(t, err)
}

func TestMustOffsetPanicsOnEmptyStream(t *testing.T) {
	assert.Panics(t, func() { MustOffset("", Latest()) })
}

func TestOffsetShorthands(t *testing.T) {
	assert.Equal(t, "$", LatestOffset("events").ReadOffset().Token())
	assert.Equal(t, "0", StartOffset("events").ReadOffset().Token())
	assert.Equal(t, "events", StartOffset("events").Stream())
}
