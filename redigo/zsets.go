package redigo

import (
	"context"

	"github.com/gomodule/redigo/redis"

	"github.com/stackbound/rediskit/connection"
)

// ZAdd adds members with scores to the sorted set stored at key.
// Returns the number of members that were added.
func (c *Client) ZAdd(ctx context.Context, key string, members ...connection.Z) (int64, error) {
	args := make([]interface{}, 0, len(members)*2+1)
	args = append(args, key)
	for _, m := range members {
		args = append(args, m.Score, m.Member)
	}

	result, err := redis.Int64(c.do(ctx, "ZADD", args...))
	return result, normalize(err)
}

// ZRem removes members from the sorted set stored at key.
// Returns the number of members that were removed.
func (c *Client) ZRem(ctx context.Context, key string, members ...interface{}) (int64, error) {
	args := append([]interface{}{key}, members...)
	result, err := redis.Int64(c.do(ctx, "ZREM", args...))
	return result, normalize(err)
}

// ZRange returns the members of the sorted set stored at key in [start, stop],
// ordered by ascending score.
func (c *Client) ZRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	result, err := redis.Strings(c.do(ctx, "ZRANGE", key, start, stop))
	return result, normalize(err)
}

// ZRangeWithScores returns the members and scores of the sorted set stored at
// key in [start, stop], ordered by ascending score.
func (c *Client) ZRangeWithScores(ctx context.Context, key string, start, stop int64) ([]connection.Z, error) {
	return parseZs(c.do(ctx, "ZRANGE", key, start, stop, "WITHSCORES"))
}

// ZRevRange returns the members of the sorted set stored at key in [start, stop],
// ordered by descending score.
func (c *Client) ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	result, err := redis.Strings(c.do(ctx, "ZREVRANGE", key, start, stop))
	return result, normalize(err)
}

// ZRevRangeWithScores returns the members and scores of the sorted set stored
// at key in [start, stop], ordered by descending score.
func (c *Client) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]connection.Z, error) {
	return parseZs(c.do(ctx, "ZREVRANGE", key, start, stop, "WITHSCORES"))
}

// ZRangeByScore returns the members of the sorted set stored at key whose
// scores fall within the given range.
func (c *Client) ZRangeByScore(ctx context.Context, key string, by connection.ZRangeBy) ([]string, error) {
	min, max := by.Min, by.Max
	if min == "" {
		min = "-inf"
	}
	if max == "" {
		max = "+inf"
	}

	args := []interface{}{key, min, max}
	if by.Offset != 0 || by.Count != 0 {
		args = append(args, "LIMIT", by.Offset, by.Count)
	}

	result, err := redis.Strings(c.do(ctx, "ZRANGEBYSCORE", args...))
	return result, normalize(err)
}

// ZScore returns the score of member in the sorted set stored at key.
// Returns connection.Nil when the key or member does not exist.
func (c *Client) ZScore(ctx context.Context, key, member string) (float64, error) {
	result, err := redis.Float64(c.do(ctx, "ZSCORE", key, member))
	return result, normalize(err)
}

// ZCard returns the number of members in the sorted set stored at key.
func (c *Client) ZCard(ctx context.Context, key string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "ZCARD", key))
	return result, normalize(err)
}

// ZCount returns the number of members in the sorted set stored at key whose
// scores fall within [min, max].
func (c *Client) ZCount(ctx context.Context, key, min, max string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "ZCOUNT", key, min, max))
	return result, normalize(err)
}

// ZIncrBy increments the score of member in the sorted set stored at key.
func (c *Client) ZIncrBy(ctx context.Context, key string, increment float64, member string) (float64, error) {
	result, err := redis.Float64(c.do(ctx, "ZINCRBY", key, increment, member))
	return result, normalize(err)
}

// ZRank returns the ascending rank of member in the sorted set stored at key.
// Returns connection.Nil when the key or member does not exist.
func (c *Client) ZRank(ctx context.Context, key, member string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "ZRANK", key, member))
	return result, normalize(err)
}

// ZRevRank returns the descending rank of member in the sorted set stored at key.
// Returns connection.Nil when the key or member does not exist.
func (c *Client) ZRevRank(ctx context.Context, key, member string) (int64, error) {
	result, err := redis.Int64(c.do(ctx, "ZREVRANK", key, member))
	return result, normalize(err)
}

// parseZs decodes a WITHSCORES reply (member, score alternating) into Z
// pairs.
func parseZs(reply interface{}, err error) ([]connection.Z, error) {
	flat, err := redis.Strings(reply, err)
	if err != nil {
		return nil, normalize(err)
	}

	zs := make([]connection.Z, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		score, err := redis.Float64([]byte(flat[i+1]), nil)
		if err != nil {
			return nil, err
		}
		zs = append(zs, connection.Z{Score: score, Member: flat[i]})
	}
	return zs, nil
}
