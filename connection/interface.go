package connection

import (
	"context"
	"time"

	"github.com/stackbound/rediskit/stream"
)

// ConnectionCommands covers connection-level operations and the generic
// command escape hatch.
type ConnectionCommands interface {
	// Do executes an arbitrary command and returns the raw reply. Bulk
	// strings are returned as string, integers as int64, arrays as
	// []interface{}.
	Do(ctx context.Context, command string, args ...interface{}) (interface{}, error)

	// Ping checks that the server is reachable and responsive.
	Ping(ctx context.Context) error

	// Echo returns message as sent, round-tripped through the server.
	Echo(ctx context.Context, message string) (string, error)

	// Close releases the client and its underlying pool.
	Close() error
}

// KeyCommands covers generic key-space operations.
type KeyCommands interface {
	// Del deletes one or more keys, returning how many existed.
	Del(ctx context.Context, keys ...string) (int64, error)

	// Exists returns how many of the given keys exist.
	Exists(ctx context.Context, keys ...string) (int64, error)

	// Expire sets a timeout on a key.
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// ExpireAt sets an absolute expiration timestamp on a key.
	ExpireAt(ctx context.Context, key string, tm time.Time) (bool, error)

	// TTL returns the remaining time to live of a key. TTLNoExpiry when the
	// key has no expiry, TTLMissing when the key does not exist.
	TTL(ctx context.Context, key string) (time.Duration, error)

	// Persist removes the expiration from a key.
	Persist(ctx context.Context, key string) (bool, error)

	// Keys returns all keys matching pattern. Prefer Scan on large
	// keyspaces.
	Keys(ctx context.Context, pattern string) ([]string, error)

	// Scan iterates the keyspace one page at a time.
	Scan(ctx context.Context, cursor uint64, match string, count int64) (ScanResult, error)

	// Type returns the type of the value stored at key.
	Type(ctx context.Context, key string) (string, error)

	// Rename renames key to newKey, overwriting an existing newKey.
	Rename(ctx context.Context, key, newKey string) error
}

// StringCommands covers the string value type, including counters.
type StringCommands interface {
	// Get retrieves the value at key. Returns Nil when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key with an optional TTL; ttl 0 means no expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// SetNX stores value only when the key does not exist. Returns whether
	// the key was set.
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)

	// GetSet stores value and returns the previous value, or Nil when the
	// key was absent.
	GetSet(ctx context.Context, key string, value interface{}) (string, error)

	// MGet retrieves multiple keys at once. Present values are strings,
	// absent ones nil, in key order.
	MGet(ctx context.Context, keys ...string) ([]interface{}, error)

	// MSet stores multiple key-value pairs: key1, value1, key2, value2, ...
	MSet(ctx context.Context, pairs ...interface{}) error

	// Append appends value to the string at key, returning the new length.
	Append(ctx context.Context, key, value string) (int64, error)

	// StrLen returns the length of the string at key.
	StrLen(ctx context.Context, key string) (int64, error)

	// Incr increments the integer at key by one.
	Incr(ctx context.Context, key string) (int64, error)

	// IncrBy increments the integer at key by value.
	IncrBy(ctx context.Context, key string, value int64) (int64, error)

	// IncrByFloat increments the float at key by value.
	IncrByFloat(ctx context.Context, key string, value float64) (float64, error)

	// Decr decrements the integer at key by one.
	Decr(ctx context.Context, key string) (int64, error)

	// DecrBy decrements the integer at key by value.
	DecrBy(ctx context.Context, key string, value int64) (int64, error)
}

// HashCommands covers the hash value type.
type HashCommands interface {
	// HSet sets field-value pairs on the hash: field1, value1, field2,
	// value2, ... Returns the number of new fields.
	HSet(ctx context.Context, key string, fieldValues ...interface{}) (int64, error)

	// HSetNX sets field only when it does not exist yet.
	HSetNX(ctx context.Context, key, field string, value interface{}) (bool, error)

	// HGet retrieves one field. Returns Nil when key or field is absent.
	HGet(ctx context.Context, key, field string) (string, error)

	// HGetAll retrieves all fields and values of the hash.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// HMGet retrieves multiple fields; absent fields are nil.
	HMGet(ctx context.Context, key string, fields ...string) ([]interface{}, error)

	// HDel deletes fields, returning how many existed.
	HDel(ctx context.Context, key string, fields ...string) (int64, error)

	// HExists reports whether field exists in the hash.
	HExists(ctx context.Context, key, field string) (bool, error)

	// HLen returns the number of fields in the hash.
	HLen(ctx context.Context, key string) (int64, error)

	// HKeys returns all field names of the hash.
	HKeys(ctx context.Context, key string) ([]string, error)

	// HVals returns all values of the hash.
	HVals(ctx context.Context, key string) ([]string, error)

	// HIncrBy increments the integer in field by incr.
	HIncrBy(ctx context.Context, key, field string, incr int64) (int64, error)

	// HIncrByFloat increments the float in field by incr.
	HIncrByFloat(ctx context.Context, key, field string, incr float64) (float64, error)
}

// ListCommands covers the list value type.
type ListCommands interface {
	// LPush prepends values, returning the new list length.
	LPush(ctx context.Context, key string, values ...interface{}) (int64, error)

	// RPush appends values, returning the new list length.
	RPush(ctx context.Context, key string, values ...interface{}) (int64, error)

	// LPop removes and returns the head. Returns Nil on an empty list.
	LPop(ctx context.Context, key string) (string, error)

	// RPop removes and returns the tail. Returns Nil on an empty list.
	RPop(ctx context.Context, key string) (string, error)

	// LRange returns the elements between start and stop, inclusive.
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// LLen returns the list length.
	LLen(ctx context.Context, key string) (int64, error)

	// LRem removes count occurrences of value.
	LRem(ctx context.Context, key string, count int64, value interface{}) (int64, error)

	// LTrim trims the list to the given range.
	LTrim(ctx context.Context, key string, start, stop int64) error

	// LIndex returns the element at index. Returns Nil when out of range.
	LIndex(ctx context.Context, key string, index int64) (string, error)

	// LSet replaces the element at index.
	LSet(ctx context.Context, key string, index int64, value interface{}) error

	// BLPop blocks up to timeout for a head element on any of the keys.
	// The reply is [key, value]. Returns Nil on timeout.
	BLPop(ctx context.Context, timeout time.Duration, keys ...string) ([]string, error)

	// BRPop blocks up to timeout for a tail element on any of the keys.
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) ([]string, error)
}

// SetCommands covers the set value type.
type SetCommands interface {
	// SAdd adds members, returning how many were new.
	SAdd(ctx context.Context, key string, members ...interface{}) (int64, error)

	// SRem removes members, returning how many existed.
	SRem(ctx context.Context, key string, members ...interface{}) (int64, error)

	// SMembers returns all members of the set.
	SMembers(ctx context.Context, key string) ([]string, error)

	// SIsMember reports whether member belongs to the set.
	SIsMember(ctx context.Context, key string, member interface{}) (bool, error)

	// SCard returns the set cardinality.
	SCard(ctx context.Context, key string) (int64, error)

	// SPop removes and returns a random member. Returns Nil on empty set.
	SPop(ctx context.Context, key string) (string, error)

	// SPopN removes and returns up to count random members.
	SPopN(ctx context.Context, key string, count int64) ([]string, error)

	// SRandMember returns a random member without removing it.
	SRandMember(ctx context.Context, key string) (string, error)

	// SInter returns the intersection of the given sets.
	SInter(ctx context.Context, keys ...string) ([]string, error)

	// SUnion returns the union of the given sets.
	SUnion(ctx context.Context, keys ...string) ([]string, error)

	// SDiff returns the difference of the first set against the rest.
	SDiff(ctx context.Context, keys ...string) ([]string, error)
}

// SortedSetCommands covers the sorted-set value type.
type SortedSetCommands interface {
	// ZAdd adds or updates members with scores, returning how many were
	// new.
	ZAdd(ctx context.Context, key string, members ...Z) (int64, error)

	// ZRem removes members, returning how many existed.
	ZRem(ctx context.Context, key string, members ...interface{}) (int64, error)

	// ZRange returns members between rank start and stop, ascending.
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// ZRangeWithScores is ZRange including scores.
	ZRangeWithScores(ctx context.Context, key string, start, stop int64) ([]Z, error)

	// ZRevRange returns members between rank start and stop, descending.
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// ZRevRangeWithScores is ZRevRange including scores.
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]Z, error)

	// ZRangeByScore returns members whose scores fall within by.
	ZRangeByScore(ctx context.Context, key string, by ZRangeBy) ([]string, error)

	// ZScore returns member's score. Returns Nil for a missing member.
	ZScore(ctx context.Context, key, member string) (float64, error)

	// ZCard returns the sorted-set cardinality.
	ZCard(ctx context.Context, key string) (int64, error)

	// ZCount counts members with scores between min and max.
	ZCount(ctx context.Context, key, min, max string) (int64, error)

	// ZIncrBy increments member's score by increment.
	ZIncrBy(ctx context.Context, key string, increment float64, member string) (float64, error)

	// ZRank returns member's ascending rank. Returns Nil for a missing
	// member.
	ZRank(ctx context.Context, key, member string) (int64, error)

	// ZRevRank returns member's descending rank.
	ZRevRank(ctx context.Context, key, member string) (int64, error)
}

// StreamCommands covers the Redis Streams command set. Parameters and
// results use the value objects from package stream.
type StreamCommands interface {
	// XAdd appends the field-value pairs to the stream and returns the
	// entry ID the server assigned (or the explicit one from opts).
	XAdd(ctx context.Context, key string, values map[string]interface{}, opts stream.AddOptions) (stream.RecordID, error)

	// XAck acknowledges the given entries for the group, returning how
	// many were actually pending.
	XAck(ctx context.Context, key, group string, ids ...stream.RecordID) (int64, error)

	// XLen returns the number of entries in the stream.
	XLen(ctx context.Context, key string) (int64, error)

	// XRange returns entries with IDs between start and end, ascending.
	// Use stream.RangeStart and stream.RangeEnd for the full stream.
	XRange(ctx context.Context, key, start, end string, opts stream.RangeOptions) ([]stream.Record, error)

	// XRevRange is XRange in descending order; start is the higher bound.
	XRevRange(ctx context.Context, key, start, end string, opts stream.RangeOptions) ([]stream.Record, error)

	// XDel removes entries by ID, returning how many existed.
	XDel(ctx context.Context, key string, ids ...stream.RecordID) (int64, error)

	// XTrim evicts entries per opts, returning how many were removed.
	XTrim(ctx context.Context, key string, opts stream.TrimOptions) (int64, error)

	// XRead reads new entries from one or more streams. Blocking behavior
	// follows opts; a blocking read that times out returns no records and
	// no error.
	XRead(ctx context.Context, opts stream.ReadOptions, offsets ...stream.Offset) ([]stream.Record, error)

	// XReadGroup reads on behalf of a consumer-group member.
	XReadGroup(ctx context.Context, consumer stream.Consumer, opts stream.ReadOptions, offsets ...stream.Offset) ([]stream.Record, error)

	// XClaim transfers ownership of pending entries to consumer.
	XClaim(ctx context.Context, key string, consumer stream.Consumer, opts stream.ClaimOptions, ids ...stream.RecordID) ([]stream.Record, error)

	// XPending returns the group's pending entries summary.
	XPending(ctx context.Context, key, group string) (stream.PendingSummary, error)

	// XPendingExt returns individual pending entries per opts.
	XPendingExt(ctx context.Context, key, group string, opts stream.PendingOptions) ([]stream.PendingEntry, error)

	// XGroupCreate creates a consumer group reading from offset. With
	// mkStream the stream is created when missing.
	XGroupCreate(ctx context.Context, key, group string, offset stream.ReadOffset, mkStream bool) error

	// XGroupSetID repositions the group's delivery cursor.
	XGroupSetID(ctx context.Context, key, group string, offset stream.ReadOffset) error

	// XGroupDestroy removes the group, returning 1 when it existed.
	XGroupDestroy(ctx context.Context, key, group string) (int64, error)

	// XGroupCreateConsumer adds a consumer to the group, returning 1 when
	// it was created.
	XGroupCreateConsumer(ctx context.Context, key string, consumer stream.Consumer) (int64, error)

	// XGroupDelConsumer removes a consumer, returning its pending count.
	XGroupDelConsumer(ctx context.Context, key string, consumer stream.Consumer) (int64, error)

	// XInfoStream returns the stream summary.
	XInfoStream(ctx context.Context, key string) (stream.Info, error)

	// XInfoGroups returns one row per consumer group on the stream.
	XInfoGroups(ctx context.Context, key string) ([]stream.GroupInfo, error)
}

// PubSubCommands covers publish/subscribe.
type PubSubCommands interface {
	// Publish posts message to channel, returning the receiver count.
	Publish(ctx context.Context, channel string, message interface{}) (int64, error)

	// Subscribe subscribes to the given channels.
	Subscribe(ctx context.Context, channels ...string) (PubSub, error)

	// PSubscribe subscribes to channels matching the given patterns.
	PSubscribe(ctx context.Context, patterns ...string) (PubSub, error)
}

// TxCommands covers MULTI/EXEC transactions. Semantics are pass-through to
// the server; this layer only normalizes the two drivers' shapes.
type TxCommands interface {
	// Multi opens a transaction. Queue commands on the returned Tx and
	// run them with Exec.
	Multi(ctx context.Context) (Tx, error)

	// Watch runs fn with optimistic locking on keys: the Tx passed to fn
	// aborts with ErrTxFailed when any watched key changes before Exec.
	Watch(ctx context.Context, fn func(tx Tx) error, keys ...string) error
}

// ScriptingCommands covers server-side Lua scripting.
type ScriptingCommands interface {
	// Eval runs script with the given keys and args.
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error)

	// EvalSha runs a cached script by its SHA1.
	EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) (interface{}, error)

	// ScriptLoad caches script server-side and returns its SHA1.
	ScriptLoad(ctx context.Context, script string) (string, error)

	// ScriptExists reports, per hash, whether the script is cached.
	ScriptExists(ctx context.Context, hashes ...string) ([]bool, error)

	// ScriptFlush drops the server's script cache.
	ScriptFlush(ctx context.Context) error
}

// ServerCommands covers server administration.
type ServerCommands interface {
	// DBSize returns the number of keys in the selected database.
	DBSize(ctx context.Context) (int64, error)

	// FlushDB removes all keys from the selected database.
	FlushDB(ctx context.Context) error

	// FlushAll removes all keys from all databases.
	FlushAll(ctx context.Context) error

	// Info returns the server's INFO text, optionally restricted to
	// sections.
	Info(ctx context.Context, sections ...string) (string, error)

	// Time returns the server clock.
	Time(ctx context.Context) (time.Time, error)

	// ConfigGet returns configuration parameters matching parameter.
	ConfigGet(ctx context.Context, parameter string) (map[string]string, error)

	// ConfigSet updates a configuration parameter at runtime.
	ConfigSet(ctx context.Context, parameter, value string) error
}

// Connection is the full command contract: one uniform surface over the
// native drivers wrapped by this library.
//
// This interface is implemented by goredis.Client and redigo.Client.
type Connection interface {
	ConnectionCommands
	KeyCommands
	StringCommands
	HashCommands
	ListCommands
	SetCommands
	SortedSetCommands
	StreamCommands
	PubSubCommands
	TxCommands
	ScriptingCommands
	ServerCommands
}
