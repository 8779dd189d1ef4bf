package goredis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/stackbound/rediskit/connection"
)

// ZAdd adds members with scores to the sorted set stored at key.
// Returns the number of members that were added.
func (c *Client) ZAdd(ctx context.Context, key string, members ...connection.Z) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	zs := make([]redis.Z, len(members))
	for i, m := range members {
		zs[i] = redis.Z{Score: m.Score, Member: m.Member}
	}

	result, err := c.client.ZAdd(ctx, key, zs...).Result()
	return result, normalize(err)
}

// ZRem removes members from the sorted set stored at key.
// Returns the number of members that were removed.
func (c *Client) ZRem(ctx context.Context, key string, members ...interface{}) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ZRem(ctx, key, members...).Result()
	return result, normalize(err)
}

// ZRange returns the members of the sorted set stored at key in [start, stop],
// ordered by ascending score.
func (c *Client) ZRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ZRange(ctx, key, start, stop).Result()
	return result, normalize(err)
}

// ZRangeWithScores returns the members and scores of the sorted set stored at key
// in [start, stop], ordered by ascending score.
func (c *Client) ZRangeWithScores(ctx context.Context, key string, start, stop int64) ([]connection.Z, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ZRangeWithScores(ctx, key, start, stop).Result()
	if err != nil {
		return nil, normalize(err)
	}

	return fromRedisZs(result), nil
}

// ZRevRange returns the members of the sorted set stored at key in [start, stop],
// ordered by descending score.
func (c *Client) ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ZRevRange(ctx, key, start, stop).Result()
	return result, normalize(err)
}

// ZRevRangeWithScores returns the members and scores of the sorted set stored at
// key in [start, stop], ordered by descending score.
func (c *Client) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]connection.Z, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ZRevRangeWithScores(ctx, key, start, stop).Result()
	if err != nil {
		return nil, normalize(err)
	}

	return fromRedisZs(result), nil
}

// ZRangeByScore returns the members of the sorted set stored at key whose scores
// fall within the given range.
func (c *Client) ZRangeByScore(ctx context.Context, key string, by connection.ZRangeBy) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ZRangeByScore(ctx, key, &redis.ZRangeBy{
		Min:    by.Min,
		Max:    by.Max,
		Offset: by.Offset,
		Count:  by.Count,
	}).Result()
	return result, normalize(err)
}

// ZScore returns the score of member in the sorted set stored at key.
// Returns connection.Nil when the key or member does not exist.
func (c *Client) ZScore(ctx context.Context, key, member string) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ZScore(ctx, key, member).Result()
	return result, normalize(err)
}

// ZCard returns the number of members in the sorted set stored at key.
func (c *Client) ZCard(ctx context.Context, key string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ZCard(ctx, key).Result()
	return result, normalize(err)
}

// ZCount returns the number of members in the sorted set stored at key whose
// scores fall within [min, max].
func (c *Client) ZCount(ctx context.Context, key, min, max string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ZCount(ctx, key, min, max).Result()
	return result, normalize(err)
}

// ZIncrBy increments the score of member in the sorted set stored at key.
func (c *Client) ZIncrBy(ctx context.Context, key string, increment float64, member string) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ZIncrBy(ctx, key, increment, member).Result()
	return result, normalize(err)
}

// ZRank returns the ascending rank of member in the sorted set stored at key.
// Returns connection.Nil when the key or member does not exist.
func (c *Client) ZRank(ctx context.Context, key, member string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ZRank(ctx, key, member).Result()
	return result, normalize(err)
}

// ZRevRank returns the descending rank of member in the sorted set stored at key.
// Returns connection.Nil when the key or member does not exist.
func (c *Client) ZRevRank(ctx context.Context, key, member string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, err := c.client.ZRevRank(ctx, key, member).Result()
	return result, normalize(err)
}

func fromRedisZs(zs []redis.Z) []connection.Z {
	out := make([]connection.Z, len(zs))
	for i, z := range zs {
		out[i] = connection.Z{Score: z.Score, Member: z.Member.(string)}
	}
	return out
}
