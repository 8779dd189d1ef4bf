// Package goredis implements the connection.Connection contract on top of
// the go-redis driver.
//
// The package wraps redis.UniversalClient, so the same Client type serves
// single-node, cluster, and sentinel deployments. All command groups of the
// uniform surface are implemented here: keys, strings, hashes, lists, sets,
// sorted sets, streams, pub/sub, transactions, scripting, and server
// administration.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - connection.Connection interface: Defines the uniform command contract
//   - Client struct: Concrete implementation backed by go-redis
//   - NewClient constructor: Returns *Client (concrete type)
//   - FX module: Provides *Client for dependency injection
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a client directly:
//
//	import (
//		"context"
//		"time"
//
//		"github.com/stackbound/rediskit/goredis"
//	)
//
//	client, err := goredis.NewClient(goredis.Config{
//		Host:     "localhost",
//		Port:     6379,
//		Password: "",
//		DB:       0,
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
// For production applications using Uber's fx, use the FXModule:
//
//	import (
//		"github.com/stackbound/rediskit/goredis"
//		"github.com/stackbound/rediskit/logger"
//		"go.uber.org/fx"
//	)
//
//	app := fx.New(
//		logger.FXModule,  // Optional: provides logger
//		goredis.FXModule, // Provides *goredis.Client
//		fx.Provide(func() goredis.Config {
//			return goredis.Config{
//				Host: "localhost",
//				Port: 6379,
//			}
//		}),
//		fx.Invoke(func(client *goredis.Client) {
//			ctx := context.Background()
//			client.Set(ctx, "key", "value", 0)
//		}),
//	)
//	app.Run()
//
// # Observability (Observer Hook)
//
// The client supports optional observability through the Observer interface
// from the observability package. This allows external systems to track
// operations without coupling the package to specific metrics/tracing
// implementations.
//
// Using WithObserver (non-FX usage):
//
//	client, err := goredis.NewClient(config)
//	if err != nil {
//	    return err
//	}
//	client = client.WithObserver(myObserver).WithLogger(myLogger)
//	defer client.Close()
//
// The observer receives events for hot-path operations:
//   - Component: "goredis"
//   - Operations: "get", "set", "del", "publish", "xadd"
//   - Resource: key or channel name
//   - Duration: operation duration
//   - Error: any error that occurred
//   - Size: bytes or count returned/affected
//   - Metadata: operation-specific details (e.g., ttl, key_count)
//
// # Streams
//
// Stream commands accept and return the value objects from package stream:
//
//	id, err := client.XAdd(ctx, "events", map[string]interface{}{
//		"kind": "user.created",
//		"id":   "123",
//	}, stream.AddOptions{}.WithMaxLen(10000).Approximate())
//
//	records, err := client.XRead(ctx,
//		stream.ReadOptions{}.WithCount(100).WithBlock(2*time.Second),
//		stream.LatestOffset("events"))
//
// A blocking XRead or XReadGroup that times out returns no records and no
// error, so poll loops need no special-casing.
//
// # Transactions (MULTI/EXEC)
//
//	tx, err := client.Multi(ctx)
//	if err != nil {
//	    return err
//	}
//	tx.Queue(ctx, "set", "a", "1")
//	tx.Queue(ctx, "incr", "counter")
//	replies, err := tx.Exec(ctx)
//
// Optimistic locking with WATCH:
//
//	err = client.Watch(ctx, func(tx connection.Tx) error {
//		tx.Queue(ctx, "set", "counter", next)
//		_, err := tx.Exec(ctx)
//		return err
//	}, "counter")
//
// Exec returns connection.ErrTxFailed when a watched key changed.
//
// # Error Normalization
//
// Driver-specific sentinels never escape this package: a missing key is
// connection.Nil, an aborted transaction is connection.ErrTxFailed. Callers
// compare with errors.Is or the connection.IsNilError helper and stay
// portable across drivers.
//
// # Cluster Configuration
//
//	client, err := goredis.NewClusterClient(goredis.ClusterConfig{
//		Addrs: []string{
//			"localhost:7000",
//			"localhost:7001",
//			"localhost:7002",
//		},
//		Password: "secret",
//	})
//
// # Sentinel Configuration
//
//	client, err := goredis.NewFailoverClient(goredis.FailoverConfig{
//		MasterName: "mymaster",
//		SentinelAddrs: []string{
//			"localhost:26379",
//			"localhost:26380",
//		},
//	})
//
// # TLS/SSL Configuration
//
//	client, err := goredis.NewClient(goredis.Config{
//		Host: "redis.example.com",
//		Port: 6380,
//		TLS: goredis.TLSConfig{
//			Enabled:        true,
//			CACertPath:     "/path/to/ca.crt",
//			ClientCertPath: "/path/to/client.crt",
//			ClientKeyPath:  "/path/to/client.key",
//		},
//	})
//
// # Thread Safety
//
// All methods on the client are safe for concurrent use by multiple
// goroutines. The underlying connection pool handles concurrent access
// efficiently.
package goredis
