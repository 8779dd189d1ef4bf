package goredis

import (
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/stackbound/rediskit/connection"
)

// normalize maps go-redis sentinel errors onto the connection contract.
// Every other error propagates untouched — retries, pooling, and protocol
// failures are the driver's to report.
func normalize(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.Nil):
		return connection.Nil
	case errors.Is(err, redis.TxFailedErr):
		return connection.ErrTxFailed
	default:
		return err
	}
}
