package redigo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stackbound/rediskit/connection"
)

func TestTTLFromSeconds(t *testing.T) {
	tests := []struct {
		name string
		secs int64
		want time.Duration
	}{
		{name: "positive ttl scales to seconds", secs: 90, want: 90 * time.Second},
		{name: "zero ttl", secs: 0, want: 0},
		{name: "no expiry stays sentinel", secs: -1, want: connection.TTLNoExpiry},
		{name: "missing key stays sentinel", secs: -2, want: connection.TTLMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ttlFromSeconds(tt.secs))
		})
	}
}

func TestTTLSentinelsAreNotSeconds(t *testing.T) {
	// The sentinels are raw Durations shared with the other driver, not
	// scaled replies.
	assert.NotEqual(t, -1*time.Second, ttlFromSeconds(-1))
	assert.NotEqual(t, -2*time.Second, ttlFromSeconds(-2))
}
