// Package stream holds the value objects of the Redis Streams command
// surface: entry IDs, read offsets, consumers, option bundles, and result
// views. The driver packages (goredis, redigo) translate these into their
// native argument and reply types; nothing in this package talks to a
// server.
//
// All types are immutable. Option bundles grow through With* methods that
// return modified copies:
//
//	opts := stream.AddOptions{}.WithMaxLen(10_000).Approximate()
//	id, err := conn.XAdd(ctx, "events", values, opts)
//
// The package also provides Listener, a continuous consumer that drives
// XREAD or XREADGROUP against any connection implementation and hands each
// entry to a handler, acknowledging it on success:
//
//	l, err := stream.NewListener(conn, stream.ListenerConfig{
//		Stream:   "events",
//		Consumer: stream.MustConsumer("billing", "worker-1"),
//	})
//	if err != nil { ... }
//	if err := l.Start(ctx, handle); err != nil { ... }
//	defer l.Stop()
package stream
