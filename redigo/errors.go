package redigo

import (
	"errors"

	"github.com/gomodule/redigo/redis"

	"github.com/stackbound/rediskit/connection"
)

// normalize maps the redigo nil sentinel onto the connection contract.
// Every other error propagates untouched.
func normalize(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.ErrNil):
		return connection.Nil
	default:
		return err
	}
}
