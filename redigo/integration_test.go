package redigo

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"

	"github.com/stackbound/rediskit/connection"
	"github.com/stackbound/rediskit/stream"
)

// TestBasicOperations verifies key and string operations work correctly.
func TestBasicOperations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	client, terminate := setupClient(ctx, t)
	defer terminate()

	t.Run("Set and Get", func(t *testing.T) {
		err := client.Set(ctx, "test-key", "test-value", 0)
		require.NoError(t, err)

		value, err := client.Get(ctx, "test-key")
		require.NoError(t, err)
		assert.Equal(t, "test-value", value)
	})

	t.Run("Get missing key returns Nil", func(t *testing.T) {
		_, err := client.Get(ctx, "absent-key")
		assert.True(t, connection.IsNilError(err))
	})

	t.Run("Set with TTL", func(t *testing.T) {
		err := client.Set(ctx, "ttl-key", "value", time.Minute)
		require.NoError(t, err)

		ttl, err := client.TTL(ctx, "ttl-key")
		require.NoError(t, err)
		assert.Greater(t, ttl, 50*time.Second)

		err = client.Set(ctx, "no-ttl-key", "value", 0)
		require.NoError(t, err)

		ttl, err = client.TTL(ctx, "no-ttl-key")
		require.NoError(t, err)
		assert.Equal(t, connection.TTLNoExpiry, ttl)

		ttl, err = client.TTL(ctx, "no-such-ttl-key")
		require.NoError(t, err)
		assert.Equal(t, connection.TTLMissing, ttl)
	})

	t.Run("SetNX", func(t *testing.T) {
		set, err := client.SetNX(ctx, "nx-key", "first", 0)
		require.NoError(t, err)
		assert.True(t, set)

		set, err = client.SetNX(ctx, "nx-key", "second", 0)
		require.NoError(t, err)
		assert.False(t, set)
	})

	t.Run("MGet mixes hits and misses", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "mget-a", "1", 0))
		require.NoError(t, client.Set(ctx, "mget-c", "3", 0))

		values, err := client.MGet(ctx, "mget-a", "mget-b", "mget-c")
		require.NoError(t, err)
		assert.Equal(t, []interface{}{"1", nil, "3"}, values)
	})

	t.Run("Increment", func(t *testing.T) {
		value, err := client.Incr(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, int64(1), value)

		value, err = client.IncrBy(ctx, "counter", 5)
		require.NoError(t, err)
		assert.Equal(t, int64(6), value)
	})

	t.Run("Scan", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			require.NoError(t, client.Set(ctx, fmt.Sprintf("scan:%d", i), "v", 0))
		}

		var keys []string
		var cursor uint64
		for {
			page, err := client.Scan(ctx, cursor, "scan:*", 2)
			require.NoError(t, err)
			keys = append(keys, page.Keys...)
			cursor = page.Cursor
			if cursor == 0 {
				break
			}
		}
		assert.Len(t, keys, 5)
	})
}

// TestHashAndListOperations verifies hash, list, and sorted-set operations.
func TestHashAndListOperations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	client, terminate := setupClient(ctx, t)
	defer terminate()

	t.Run("HSet and HGetAll", func(t *testing.T) {
		_, err := client.HSet(ctx, "user:1", "name", "John", "age", "30")
		require.NoError(t, err)

		all, err := client.HGetAll(ctx, "user:1")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"name": "John", "age": "30"}, all)
	})

	t.Run("HMGet mixes hits and misses", func(t *testing.T) {
		values, err := client.HMGet(ctx, "user:1", "name", "missing")
		require.NoError(t, err)
		assert.Equal(t, []interface{}{"John", nil}, values)
	})

	t.Run("List push and pop", func(t *testing.T) {
		_, err := client.RPush(ctx, "queue", "a", "b", "c")
		require.NoError(t, err)

		items, err := client.LRange(ctx, "queue", 0, -1)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, items)

		head, err := client.LPop(ctx, "queue")
		require.NoError(t, err)
		assert.Equal(t, "a", head)
	})

	t.Run("BLPop delivers a pushed value", func(t *testing.T) {
		go func() {
			time.Sleep(100 * time.Millisecond)
			client.LPush(ctx, "blocking-queue", "payload")
		}()

		result, err := client.BLPop(ctx, 5*time.Second, "blocking-queue")
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "blocking-queue", result[0])
		assert.Equal(t, "payload", result[1])
	})

	t.Run("ZAdd and ZRangeByScore", func(t *testing.T) {
		_, err := client.ZAdd(ctx, "board",
			connection.Z{Score: 10, Member: "ada"},
			connection.Z{Score: 5, Member: "eve"},
			connection.Z{Score: 20, Member: "bob"},
		)
		require.NoError(t, err)

		members, err := client.ZRangeByScore(ctx, "board", connection.ZRangeBy{Min: "5", Max: "10"})
		require.NoError(t, err)
		assert.Equal(t, []string{"eve", "ada"}, members)
	})
}

// TestStreamOperations verifies the stream command surface end to end.
func TestStreamOperations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	client, terminate := setupClient(ctx, t)
	defer terminate()

	t.Run("XAdd and XRange", func(t *testing.T) {
		id1, err := client.XAdd(ctx, "orders", map[string]interface{}{"total": "10"}, stream.AddOptions{})
		require.NoError(t, err)
		assert.False(t, id1.IsZero())

		id2, err := client.XAdd(ctx, "orders", map[string]interface{}{"total": "20"}, stream.AddOptions{})
		require.NoError(t, err)
		assert.True(t, id1.Before(id2))

		records, err := client.XRange(ctx, "orders", stream.RangeStart, stream.RangeEnd, stream.RangeOptions{})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "10", records[0].Values["total"])
	})

	t.Run("XRead from start", func(t *testing.T) {
		records, err := client.XRead(ctx, stream.ReadOptions{}.WithCount(10),
			stream.StartOffset("orders"))
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("XRead blocking timeout returns no records", func(t *testing.T) {
		records, err := client.XRead(ctx,
			stream.ReadOptions{}.WithBlock(100*time.Millisecond),
			stream.LatestOffset("orders"))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Consumer group lifecycle", func(t *testing.T) {
		worker := stream.MustConsumer("billing", "worker-1")

		require.NoError(t, client.XGroupCreate(ctx, "orders", "billing", stream.FromStart(), false))

		records, err := client.XReadGroup(ctx, worker,
			stream.ReadOptions{}.WithCount(10),
			stream.MustOffset("orders", stream.LastConsumed()))
		require.NoError(t, err)
		require.Len(t, records, 2)

		summary, err := client.XPending(ctx, "orders", "billing")
		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.Count)

		acked, err := client.XAck(ctx, "orders", "billing", records[0].ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), acked)

		entries, err := client.XPendingExt(ctx, "orders", "billing", stream.PendingOptions{})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, records[1].ID, entries[0].ID)

		groups, err := client.XInfoGroups(ctx, "orders")
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "billing", groups[0].Name)
	})

	t.Run("XInfoStream", func(t *testing.T) {
		info, err := client.XInfoStream(ctx, "orders")
		require.NoError(t, err)
		assert.Equal(t, int64(2), info.Length)
		require.NotNil(t, info.LastEntry)
		assert.Equal(t, "20", info.LastEntry.Values["total"])
	})

	t.Run("XTrim", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			_, err := client.XAdd(ctx, "trimmed", map[string]interface{}{"n": strconv.Itoa(i)}, stream.AddOptions{})
			require.NoError(t, err)
		}

		_, err := client.XTrim(ctx, "trimmed", stream.TrimOptions{}.WithMaxLen(3))
		require.NoError(t, err)

		length, err := client.XLen(ctx, "trimmed")
		require.NoError(t, err)
		assert.Equal(t, int64(3), length)
	})
}

// TestPubSub verifies publish/subscribe delivery on a dedicated connection.
func TestPubSub(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	client, terminate := setupClient(ctx, t)
	defer terminate()

	sub, err := client.Subscribe(ctx, "alerts")
	require.NoError(t, err)
	defer sub.Close()

	require.Eventually(t, func() bool {
		_, err := client.Publish(ctx, "alerts", "fire")
		if err != nil {
			return false
		}
		select {
		case msg := <-sub.Channel():
			assert.Equal(t, "alerts", msg.Channel)
			assert.Equal(t, "fire", msg.Payload)
			return true
		case <-time.After(200 * time.Millisecond):
			return false
		}
	}, 10*time.Second, 50*time.Millisecond)
}

// TestTransactions verifies MULTI/EXEC, DISCARD, and WATCH abort semantics.
func TestTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	client, terminate := setupClient(ctx, t)
	defer terminate()

	t.Run("Multi queues and executes atomically", func(t *testing.T) {
		tx, err := client.Multi(ctx)
		require.NoError(t, err)

		require.NoError(t, tx.Queue(ctx, "SET", "tx-key", "1"))
		require.NoError(t, tx.Queue(ctx, "INCR", "tx-key"))

		results, err := tx.Exec(ctx)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, int64(2), results[1])
	})

	t.Run("Discard drops queued commands", func(t *testing.T) {
		tx, err := client.Multi(ctx)
		require.NoError(t, err)

		require.NoError(t, tx.Queue(ctx, "SET", "discarded-key", "1"))
		require.NoError(t, tx.Discard())

		_, err = client.Get(ctx, "discarded-key")
		assert.True(t, connection.IsNilError(err))
	})

	t.Run("Watch aborts when the key changes", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "watched", "1", 0))

		err := client.Watch(ctx, func(tx connection.Tx) error {
			// outside write invalidates the watch before EXEC
			if err := client.Set(ctx, "watched", "outside", 0); err != nil {
				return err
			}

			if err := tx.Queue(ctx, "SET", "watched", "inside"); err != nil {
				return err
			}
			_, err := tx.Exec(ctx)
			return err
		}, "watched")
		assert.True(t, connection.IsTxFailedError(err))

		value, err := client.Get(ctx, "watched")
		require.NoError(t, err)
		assert.Equal(t, "outside", value)
	})
}

// TestScripting verifies EVAL and the script cache commands.
func TestScripting(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	client, terminate := setupClient(ctx, t)
	defer terminate()

	result, err := client.Eval(ctx, `return 1 + 1`, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result)

	sha, err := client.ScriptLoad(ctx, `return redis.call("SET", KEYS[1], ARGV[1])`)
	require.NoError(t, err)

	exists, err := client.ScriptExists(ctx, sha)
	require.NoError(t, err)
	require.Len(t, exists, 1)
	assert.True(t, exists[0])

	_, err = client.EvalSha(ctx, sha, []string{"script-key"}, "hello")
	require.NoError(t, err)

	value, err := client.Get(ctx, "script-key")
	require.NoError(t, err)
	assert.Equal(t, "hello", value)
}

// TestFXIntegration verifies the client wires into an fx application.
func TestFXIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	host, port, containerInstance := initializeRedis(ctx, t)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	var client *Client

	cfg := Config{
		Host: host,
		Port: port,
	}

	app := fx.New(
		FXModule,
		fx.Provide(
			func() Config { return cfg },
		),
		fx.Populate(&client),
	)

	require.NoError(t, app.Start(ctx))
	defer app.Stop(ctx)

	require.NoError(t, client.Ping(ctx))

	err := client.Set(ctx, "fx-key", "fx-value", 0)
	require.NoError(t, err)

	value, err := client.Get(ctx, "fx-key")
	require.NoError(t, err)
	assert.Equal(t, "fx-value", value)
}

// TestConcurrentAccess verifies pooled connections under concurrent use.
func TestConcurrentAccess(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	client, terminate := setupClient(ctx, t)
	defer terminate()

	var wg sync.WaitGroup
	concurrency := 100

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Incr(ctx, "concurrent-counter")
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	value, err := client.Get(ctx, "concurrent-counter")
	require.NoError(t, err)
	assert.Equal(t, "100", value)
}

// Helper functions

func setupClient(ctx context.Context, t *testing.T) (*Client, func()) {
	t.Helper()

	host, port, containerInstance := initializeRedis(ctx, t)

	client, err := NewClient(Config{
		Host: host,
		Port: port,
	})
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx))

	return client, func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close client: %v", err)
		}
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
}

func initializeRedis(ctx context.Context, t *testing.T) (string, int, testcontainers.Container) {
	hostPort, err := getFreePort()
	require.NoError(t, err)

	containerInstance, err := createRedisContainer(ctx, hostPort)
	require.NoError(t, err)

	port, err := containerInstance.MappedPort(ctx, "6379")
	require.NoError(t, err)

	host, err := containerInstance.Host(ctx)
	require.NoError(t, err)

	// Wait for Redis to be ready
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port.Port()), 2*time.Second)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 30*time.Second, 500*time.Millisecond, "Redis port not ready")

	return host, port.Int(), containerInstance
}

func createRedisContainer(ctx context.Context, hostPort string) (testcontainers.Container, error) {
	portBindings := nat.PortMap{
		"6379/tcp": []nat.PortBinding{{HostPort: hostPort}},
	}

	req := testcontainers.ContainerRequest{
		Image: "redis:7-alpine",
		ExposedPorts: []string{
			"6379/tcp",
		},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("6379/tcp").WithStartupTimeout(30*time.Second),
			wait.ForLog("Ready to accept connections").WithStartupTimeout(30*time.Second),
		),
	}

	var containerInstance testcontainers.Container
	var lastErr error

	for attempt := 0; attempt < 3; attempt++ {
		containerInstance, lastErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if lastErr == nil {
			return containerInstance, nil
		}

		if strings.Contains(lastErr.Error(), "docker.sock") {
			time.Sleep(time.Duration(attempt+1) * time.Second)
			continue
		}

		break
	}

	return nil, fmt.Errorf("failed to start Redis container after 3 attempts: %w", lastErr)
}

func getFreePort() (string, error) {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		return "", err
	}
	defer l.Close()
	addr := l.Addr().(*net.TCPAddr)
	return strconv.Itoa(addr.Port), nil
}
