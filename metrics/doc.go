// Package metrics exposes Prometheus metrics for applications embedding the
// rediskit drivers.
//
// It has two halves: Metrics, an isolated Prometheus registry with an HTTP
// server on /metrics, and CommandObserver, an observability.Observer that
// turns driver command events into counters and a latency histogram.
//
// # Usage
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		ServiceName:             "checkout",
//		EnableDefaultCollectors: true,
//	})
//	observer := metrics.NewCommandObserver(m)
//
//	client, err := goredis.NewClient(cfg)
//	if err != nil {
//		return err
//	}
//	client = client.WithObserver(observer)
//
//	go m.Server.ListenAndServe()
//
// With fx, FXModule wires the observer into any driver module in the same
// application automatically.
//
// # Exposed Metrics
//
//   - redis_commands_total{component, operation} — command count
//   - redis_command_duration_seconds{component, operation} — latency histogram
//   - redis_command_errors_total{component, operation} — failures, with
//     connection.Nil misses excluded
//
// All metrics additionally carry the constant service label from Config.
package metrics
