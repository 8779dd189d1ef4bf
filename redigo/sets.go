package redigo

import (
	"context"

	"github.com/gomodule/redigo/redis"
)

// SAdd adds members to the set stored at key.
// Returns the number of members that were added.
func (c *Client) SAdd(ctx context.Context, key string, members ...interface{}) (int64, error) {
	args := append([]interface{}{key}, members...)
	result, err := redis.Int64(c.do(ctx, "SADD", args...))
	return result, normalize(err)
}

// SRem removes members from the set stored at key.
// Returns the number of members that were removed.
func (c *Client) SRem(ctx context.Context, key string, members ...interface{}) (int64, error) {
	args := append([]interface{}{key}, members...)
	result, err := redis.Int64(c.do(ctx, "SREM", args...))
	return result, normalize(err)
}

// SMembers returns all members of the set stored at key.
func (c *Client) SMembers(ctx context.Context, key string) ([]string, error) {
	result, err := redis.Strings(c.do(ctx, "SMEMBERS", key))
	return result, normalize(err)
}

// SIsMember checks whether member belongs to the set stored at key.
func (c *Client) SIsMember(ctx context.Context, key string, member interface{}) (bool, error) {
	result, err := redis.Bool(c.do(ctx, "SISMEMBER", key, member))
	return result, normalize(err)
}

// SCard returns the number of members in the set stored at key.
func (c *Client) SCard(ctx context.Context, key string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "SCARD", key))
	return result, normalize(err)
}

// SPop removes and returns a random member of the set stored at key.
// Returns connection.Nil when the set is empty or missing.
func (c *Client) SPop(ctx context.Context, key string) (string, error) {
	result, err := redis.String(c.do(ctx, "SPOP", key))
	return result, normalize(err)
}

// SPopN removes and returns up to count random members of the set stored at key.
func (c *Client) SPopN(ctx context.Context, key string, count int64) ([]string, error) {
	result, err := redis.Strings(c.do(ctx, "SPOP", key, count))
	return result, normalize(err)
}

// SRandMember returns a random member of the set stored at key without removing it.
// Returns connection.Nil when the set is empty or missing.
func (c *Client) SRandMember(ctx context.Context, key string) (string, error) {
	result, err := redis.String(c.do(ctx, "SRANDMEMBER", key))
	return result, normalize(err)
}

// SInter returns the intersection of the given sets.
func (c *Client) SInter(ctx context.Context, keys ...string) ([]string, error) {
	result, err := redis.Strings(c.do(ctx, "SINTER", stringArgs(keys)...))
	return result, normalize(err)
}

// SUnion returns the union of the given sets.
func (c *Client) SUnion(ctx context.Context, keys ...string) ([]string, error) {
	result, err := redis.Strings(c.do(ctx, "SUNION", stringArgs(keys)...))
	return result, normalize(err)
}

// SDiff returns the members of the first set that are in none of the others.
func (c *Client) SDiff(ctx context.Context, keys ...string) ([]string, error) {
	result, err := redis.Strings(c.do(ctx, "SDIFF", stringArgs(keys)...))
	return result, normalize(err)
}
