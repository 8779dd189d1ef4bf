package redigo

import "time"

// Config defines the configuration for connecting to a Redis instance over
// the redigo driver. Zero-valued fields fall back to the Default* constants
// below.
type Config struct {
	// Host is the Redis server hostname or IP address
	// Default: "localhost"
	Host string

	// Port is the Redis server port
	// Default: 6379
	Port int

	// Username is the Redis username for ACL authentication (Redis 6.0+)
	// Leave empty for no username-based authentication
	Username string

	// Password is the Redis password for authentication
	// Leave empty for no authentication
	Password string

	// DB is the Redis database number to use (0-15 by default)
	// Default: 0
	DB int

	// MaxIdle is the maximum number of idle connections kept in the pool
	// Default: 10
	MaxIdle int

	// MaxActive is the maximum number of connections allocated by the pool
	// at a given time. 0 means unlimited.
	MaxActive int

	// IdleTimeout is the amount of time after which idle connections are closed
	// Default: 5 minutes
	IdleTimeout time.Duration

	// MaxConnLifetime is the maximum duration a connection can be reused
	// Default: 0 (no maximum age)
	MaxConnLifetime time.Duration

	// Wait makes pool Get calls wait for a free connection instead of
	// failing when MaxActive is reached
	Wait bool

	// ConnectTimeout is the timeout for establishing new connections
	// Default: 5 seconds
	ConnectTimeout time.Duration

	// ReadTimeout is the timeout for socket reads
	// Default: 3 seconds
	ReadTimeout time.Duration

	// WriteTimeout is the timeout for socket writes
	// Default: ReadTimeout
	WriteTimeout time.Duration

	// TestOnBorrowInterval is the minimum idle time before a pooled
	// connection is health-checked with PING on checkout
	// Default: 1 minute
	TestOnBorrowInterval time.Duration

	// TLS contains TLS/SSL configuration
	TLS TLSConfig

	// Logger is an optional logger; the rediskit logger package satisfies
	// this interface.
	Logger Logger
}

// TLSConfig contains TLS/SSL configuration parameters.
type TLSConfig struct {
	// Enabled determines whether to use TLS/SSL for the connection
	Enabled bool

	// CACertPath is the file path to the CA certificate for verifying the server
	CACertPath string

	// ClientCertPath is the file path to the client certificate
	ClientCertPath string

	// ClientKeyPath is the file path to the client certificate's private key
	ClientKeyPath string

	// InsecureSkipVerify controls whether to skip verification of the server's certificate
	// WARNING: Setting this to true is insecure and should only be used in testing
	InsecureSkipVerify bool

	// ServerName is used to verify the hostname on the returned certificates
	// If empty, the Host from the main config is used
	ServerName string
}

// Logger is the narrow logging interface this package accepts. The rediskit
// logger package satisfies it.
type Logger interface {
	Error(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// Default values for configuration
const (
	DefaultHost                 = "localhost"
	DefaultPort                 = 6379
	DefaultDB                   = 0
	DefaultMaxIdle              = 10
	DefaultMaxActive            = 0 // unlimited
	DefaultIdleTimeout          = 5 * time.Minute
	DefaultConnectTimeout       = 5 * time.Second
	DefaultReadTimeout          = 3 * time.Second
	DefaultWriteTimeout         = 0 // ReadTimeout
	DefaultTestOnBorrowInterval = time.Minute
)
