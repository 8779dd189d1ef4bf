package metrics

// DefaultMetricsAddress is the listen address used when none is specified.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration structure for the Prometheus metrics
// server.
type Config struct {
	// Address determines the network address where the Prometheus
	// metrics HTTP server listens.
	//
	// Example values:
	//   - ":9090"          → Listen on all interfaces, port 9090
	//   - "127.0.0.1:9100" → Listen only on localhost, port 9100
	//
	// Default: ":9090"
	Address string

	// ServiceName is attached to every metric as the constant "service"
	// label, so multiple services can share one Prometheus cluster.
	ServiceName string

	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process metrics are automatically registered.
	//
	// When true, metrics such as goroutine count, GC stats, and CPU usage
	// are included automatically. Disable only for full manual control
	// over registered collectors.
	EnableDefaultCollectors bool
}
