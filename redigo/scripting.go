package redigo

import (
	"context"

	"github.com/gomodule/redigo/redis"
)

// Eval runs script server-side with the given keys and args.
func (c *Client) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	cmdArgs := make([]interface{}, 0, len(keys)+len(args)+2)
	cmdArgs = append(cmdArgs, script, len(keys))
	cmdArgs = append(cmdArgs, stringArgs(keys)...)
	cmdArgs = append(cmdArgs, args...)

	reply, err := c.do(ctx, "EVAL", cmdArgs...)
	if err != nil {
		return nil, normalize(err)
	}
	return convertReply(reply), nil
}

// EvalSha runs a script cached server-side by its SHA1 digest.
func (c *Client) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) (interface{}, error) {
	cmdArgs := make([]interface{}, 0, len(keys)+len(args)+2)
	cmdArgs = append(cmdArgs, sha1, len(keys))
	cmdArgs = append(cmdArgs, stringArgs(keys)...)
	cmdArgs = append(cmdArgs, args...)

	reply, err := c.do(ctx, "EVALSHA", cmdArgs...)
	if err != nil {
		return nil, normalize(err)
	}
	return convertReply(reply), nil
}

// ScriptLoad caches script server-side and returns its SHA1 digest.
func (c *Client) ScriptLoad(ctx context.Context, script string) (string, error) {
	result, err := redis.String(c.do(ctx, "SCRIPT", "LOAD", script))
	return result, normalize(err)
}

// ScriptExists reports, per hash, whether the script is cached server-side.
func (c *Client) ScriptExists(ctx context.Context, hashes ...string) ([]bool, error) {
	args := append([]interface{}{"EXISTS"}, stringArgs(hashes)...)
	flags, err := redis.Ints(c.do(ctx, "SCRIPT", args...))
	if err != nil {
		return nil, normalize(err)
	}

	result := make([]bool, len(flags))
	for i, f := range flags {
		result[i] = f == 1
	}
	return result, nil
}

// ScriptFlush drops the server's script cache.
func (c *Client) ScriptFlush(ctx context.Context) error {
	_, err := c.do(ctx, "SCRIPT", "FLUSH")
	return normalize(err)
}
