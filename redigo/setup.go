package redigo

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/stackbound/rediskit/connection"
	"github.com/stackbound/rediskit/observability"
)

// Client implements the connection.Connection contract on top of a redigo
// connection pool. Every call checks out a connection, runs the command, and
// returns the connection to the pool.
type Client struct {
	pool *redis.Pool

	// dialPubSub opens connections for subscriptions: same target, but
	// without a read deadline so blocking Receive calls can wait.
	dialPubSub func() (redis.Conn, error)

	logger   Logger
	observer observability.Observer

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

var _ connection.Connection = (*Client)(nil)

// NewClient creates a new pooled redigo client.
//
// The client validates connectivity lazily; use Ping to verify the server is
// reachable.
func NewClient(cfg Config) (*Client, error) {
	applyConfigDefaults(&cfg)

	dialOpts, err := dialOptions(cfg)
	if err != nil {
		return nil, err
	}

	pubsubCfg := cfg
	pubsubCfg.ReadTimeout = 0 // redigo treats 0 as no deadline
	pubsubOpts, err := dialOptions(pubsubCfg)
	if err != nil {
		return nil, err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	pool := &redis.Pool{
		MaxIdle:         cfg.MaxIdle,
		MaxActive:       cfg.MaxActive,
		IdleTimeout:     cfg.IdleTimeout,
		MaxConnLifetime: cfg.MaxConnLifetime,
		Wait:            cfg.Wait,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr, dialOpts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < cfg.TestOnBorrowInterval {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	return &Client{
		pool: pool,
		dialPubSub: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr, pubsubOpts...)
		},
		logger: cfg.Logger,
	}, nil
}

func applyConfigDefaults(cfg *Config) {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.MaxIdle == 0 {
		cfg.MaxIdle = DefaultMaxIdle
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = cfg.ReadTimeout
	}
	if cfg.TestOnBorrowInterval == 0 {
		cfg.TestOnBorrowInterval = DefaultTestOnBorrowInterval
	}
}

// dialOptions translates the config into redigo dial options.
func dialOptions(cfg Config) ([]redis.DialOption, error) {
	opts := []redis.DialOption{
		redis.DialDatabase(cfg.DB),
		redis.DialConnectTimeout(cfg.ConnectTimeout),
		redis.DialReadTimeout(cfg.ReadTimeout),
		redis.DialWriteTimeout(cfg.WriteTimeout),
	}
	if cfg.Username != "" {
		opts = append(opts, redis.DialUsername(cfg.Username))
	}
	if cfg.Password != "" {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}

	if cfg.TLS.Enabled {
		tlsConfig, err := createTLSConfig(cfg.TLS, cfg.Host)
		if err != nil {
			return nil, err
		}
		opts = append(opts,
			redis.DialUseTLS(true),
			redis.DialTLSConfig(tlsConfig),
		)
	}

	return opts, nil
}

// createTLSConfig creates a TLS configuration from the provided config
func createTLSConfig(cfg TLSConfig, defaultServerName string) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}

	if cfg.ServerName != "" {
		tlsConfig.ServerName = cfg.ServerName
	} else if defaultServerName != "" {
		tlsConfig.ServerName = defaultServerName
	}

	if cfg.CACertPath != "" {
		caCert, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA cert: %w", err)
		}
		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA cert")
		}
		tlsConfig.RootCAs = caCertPool
	}

	if cfg.ClientCertPath != "" && cfg.ClientKeyPath != "" {
		cert, err := tls.LoadX509KeyPair(cfg.ClientCertPath, cfg.ClientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load client cert: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

// Underlying returns the wrapped connection pool for advanced operations not
// covered by the connection contract.
func (c *Client) Underlying() *redis.Pool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pool
}

// PoolStats returns connection pool statistics.
// Useful for monitoring connection pool health.
func (c *Client) PoolStats() redis.PoolStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pool.Stats()
}

// Close closes the client and releases all pooled connections.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.closed = true

		if closeErr := c.pool.Close(); closeErr != nil {
			if c.logger != nil {
				c.logger.Warn("failed to close redigo pool", closeErr)
			}
			err = closeErr
		}
	})
	return err
}

// WithObserver sets the observer for this client and returns the client for
// method chaining. The observer receives events about executed commands.
//
// Example:
//
//	client := client.WithObserver(myObserver).WithLogger(myLogger)
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// WithLogger sets the logger for this client and returns the client for
// method chaining.
func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}
