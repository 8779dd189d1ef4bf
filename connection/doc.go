// Package connection declares the uniform Redis command contract implemented
// by the driver packages in this library.
//
// The contract is split into command-group interfaces (KeyCommands,
// StringCommands, HashCommands, StreamCommands, ...) with one method per
// Redis command; Connection embeds them all. Code that only needs a slice of
// the surface should accept the narrowest group interface, the way
// stream.Listener accepts only the stream-reading subset.
//
// # Drivers
//
// Two adapter packages implement Connection:
//
//   - goredis: over redis/go-redis/v9 (standalone, cluster, sentinel)
//   - redigo: over gomodule/redigo (pooled connections)
//
// Both normalize their driver's behavior to this package's contract:
// missing values surface as the Nil sentinel, aborted transactions as
// ErrTxFailed, and stream replies as the value objects of package stream.
// Everything else — pooling, retries, cluster routing — remains the wrapped
// driver's responsibility and its errors propagate untranslated.
//
// # Serialization
//
// Values travel as strings (binary-safe in Go). The JSON helpers SetJSON,
// GetJSON and SetNXJSON layer struct serialization over any StringCommands
// implementation:
//
//	err := connection.SetJSON(ctx, conn, "user:42", user, time.Hour)
//	err = connection.GetJSON(ctx, conn, "user:42", &user)
package connection
