package logger

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the configuration for the logger.
type Config struct {
	// Level is the minimum log level that will be emitted.
	// One of: "debug", "info", "warning", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"service_name"`

	// EnableTracing controls whether the *WithContext logging methods
	// extract trace and span IDs from the context and attach them to
	// log entries.
	EnableTracing bool `yaml:"enable_tracing"`
}
