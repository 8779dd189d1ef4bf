package goredis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackbound/rediskit/stream"
)

func TestXTrimRejectsUnboundedTrim(t *testing.T) {
	client := &Client{}

	_, err := client.XTrim(context.Background(), "events", stream.TrimOptions{})
	assert.ErrorIs(t, err, stream.ErrNoTrimBound)

	_, err = client.XTrim(context.Background(), "events", stream.TrimOptions{}.Approximate())
	assert.ErrorIs(t, err, stream.ErrNoTrimBound)
}
