package goredis

import (
	"context"
)

// Eval runs script server-side with the given keys and args.
func (c *Client) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.Eval(ctx, script, keys, args...).Result()
	return result, normalize(err)
}

// EvalSha runs a script cached server-side by its SHA1 digest.
func (c *Client) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.EvalSha(ctx, sha1, keys, args...).Result()
	return result, normalize(err)
}

// ScriptLoad caches script server-side and returns its SHA1 digest.
func (c *Client) ScriptLoad(ctx context.Context, script string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ScriptLoad(ctx, script).Result()
	return result, normalize(err)
}

// ScriptExists reports, per hash, whether the script is cached server-side.
func (c *Client) ScriptExists(ctx context.Context, hashes ...string) ([]bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ScriptExists(ctx, hashes...).Result()
	return result, normalize(err)
}

// ScriptFlush drops the server's script cache.
func (c *Client) ScriptFlush(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return normalize(c.client.ScriptFlush(ctx).Err())
}
