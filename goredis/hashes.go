package goredis

import (
	"context"
)

// HSet sets the given field/value pairs in the hash stored at key.
// Returns the number of fields that were added.
func (c *Client) HSet(ctx context.Context, key string, values ...interface{}) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.HSet(ctx, key, values...).Result()
	return result, normalize(err)
}

// HSetNX sets field in the hash stored at key only if field does not exist.
func (c *Client) HSetNX(ctx context.Context, key, field string, value interface{}) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.HSetNX(ctx, key, field, value).Result()
	return result, normalize(err)
}

// HGet returns the value of field in the hash stored at key.
// Returns connection.Nil when the key or field does not exist.
func (c *Client) HGet(ctx context.Context, key, field string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.HGet(ctx, key, field).Result()
	return result, normalize(err)
}

// HGetAll returns all fields and values of the hash stored at key.
func (c *Client) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.HGetAll(ctx, key).Result()
	return result, normalize(err)
}

// HMGet returns the values of the given fields in the hash stored at key.
// Missing fields yield nil entries in the result slice.
func (c *Client) HMGet(ctx context.Context, key string, fields ...string) ([]interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.HMGet(ctx, key, fields...).Result()
	return result, normalize(err)
}

// HDel deletes the given fields from the hash stored at key.
// Returns the number of fields that were removed.
func (c *Client) HDel(ctx context.Context, key string, fields ...string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.HDel(ctx, key, fields...).Result()
	return result, normalize(err)
}

// HExists checks whether field exists in the hash stored at key.
func (c *Client) HExists(ctx context.Context, key, field string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.HExists(ctx, key, field).Result()
	return result, normalize(err)
}

// HLen returns the number of fields in the hash stored at key.
func (c *Client) HLen(ctx context.Context, key string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.HLen(ctx, key).Result()
	return result, normalize(err)
}

// HKeys returns all field names of the hash stored at key.
func (c *Client) HKeys(ctx context.Context, key string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.HKeys(ctx, key).Result()
	return result, normalize(err)
}

// HVals returns all values of the hash stored at key.
func (c *Client) HVals(ctx context.Context, key string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.HVals(ctx, key).Result()
	return result, normalize(err)
}

// HIncrBy increments the integer stored at field in the hash at key.
func (c *Client) HIncrBy(ctx context.Context, key, field string, increment int64) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.HIncrBy(ctx, key, field, increment).Result()
	return result, normalize(err)
}

// HIncrByFloat increments the float stored at field in the hash at key.
func (c *Client) HIncrByFloat(ctx context.Context, key, field string, increment float64) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.HIncrByFloat(ctx, key, field, increment).Result()
	return result, normalize(err)
}
