package connection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// JSON helpers form the serialization-aware layer over any StringCommands
// implementation. They are plain functions rather than interface methods so
// that every driver gets them for free.

// SetJSON serializes value to JSON and stores it at key.
func SetJSON(ctx context.Context, c StringCommands, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return c.Set(ctx, key, string(data), ttl)
}

// GetJSON retrieves the value at key and deserializes it from JSON into
// dest. Returns Nil when the key is absent.
func GetJSON(ctx context.Context, c StringCommands, key string, dest interface{}) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// MGetJSON retrieves several keys at once and deserializes each present
// value into the matching element of dests. Absent keys leave their dest
// untouched; the returned booleans report which keys were found. dests must
// be the same length as keys.
func MGetJSON(ctx context.Context, c StringCommands, keys []string, dests []interface{}) ([]bool, error) {
	if len(keys) != len(dests) {
		return nil, fmt.Errorf("rediskit: MGetJSON needs one dest per key, got %d keys and %d dests", len(keys), len(dests))
	}

	values, err := c.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}
	if len(values) != len(keys) {
		return nil, fmt.Errorf("rediskit: MGET returned %d values for %d keys", len(values), len(keys))
	}

	found := make([]bool, len(keys))
	for i, v := range values {
		if v == nil {
			continue
		}
		raw, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("rediskit: unexpected MGET value type %T for key %q", v, keys[i])
		}
		if err := json.Unmarshal([]byte(raw), dests[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON for key %q: %w", keys[i], err)
		}
		found[i] = true
	}
	return found, nil
}

// SetNXJSON serializes value to JSON and stores it at key only when the key
// does not exist. Returns whether the key was set.
func SetNXJSON(ctx context.Context, c StringCommands, key string, value interface{}, ttl time.Duration) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return c.SetNX(ctx, key, string(data), ttl)
}
