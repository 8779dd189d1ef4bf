package tracer

// Config defines the configuration for the OpenTelemetry tracer.
type Config struct {
	// ServiceName identifies this service in trace backends.
	ServiceName string

	// AppEnv is the deployment environment tag attached to every span
	// (for example "production" or "staging").
	AppEnv string

	// EnableExport turns on the OTLP HTTP exporter. The exporter endpoint
	// comes from the standard OTEL_EXPORTER_OTLP_* environment variables.
	// When false, spans are created but never shipped anywhere, which is
	// the right mode for tests.
	EnableExport bool
}
