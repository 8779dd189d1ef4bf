// Package redigo implements the connection.Connection contract on top of
// the redigo driver.
//
// Unlike go-redis, redigo speaks in raw argument vectors and generic replies.
// This package does the marshaling both ways: command methods build the
// argument list per the Redis command grammar, and reply helpers parse the
// nested []interface{} replies back into the shared value objects. The result
// is byte-for-byte the same surface the goredis package offers, so the two
// adapters are interchangeable behind connection.Connection.
//
// # Connection Handling
//
// The client wraps a redis.Pool: every command checks out a connection, runs,
// and returns it. Blocking commands (BLPOP, XREAD BLOCK, ...) extend the read
// deadline to cover the block timeout. Subscriptions and transactions hold a
// dedicated connection for their lifetime.
//
// # Direct Usage
//
//	client, err := redigo.NewClient(redigo.Config{
//		Host: "localhost",
//		Port: 6379,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	err = client.Set(ctx, "user:123", "John Doe", 5*time.Minute)
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule, // Optional: provides logger
//		redigo.FXModule, // Provides *redigo.Client
//		fx.Provide(func() redigo.Config {
//			return redigo.Config{Host: "localhost", Port: 6379}
//		}),
//	)
//	app.Run()
//
// # Error Normalization
//
// redis.ErrNil never escapes this package: a missing key, field, or empty pop
// is connection.Nil, and an aborted MULTI/EXEC is connection.ErrTxFailed —
// exactly as the go-redis adapter reports them.
//
// # Thread Safety
//
// All methods on the client are safe for concurrent use by multiple
// goroutines; the pool serializes access to individual connections.
package redigo
