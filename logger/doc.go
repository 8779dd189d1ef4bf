// Package logger provides structured logging for the rediskit library and
// the applications embedding it.
//
// The package wraps Uber's Zap logger behind a small method set (Debug, Info,
// Warn, Error, Fatal) that the client packages in this library accept as a
// narrow interface. It supports log levels, structured key-value fields, and
// optional trace/span ID extraction for distributed tracing.
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a logger directly:
//
//	import "github.com/stackbound/rediskit/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "orders",
//	})
//
//	log.Info("Redis client ready", nil, map[string]interface{}{
//		"host": "localhost",
//	})
//
// # FX Module Integration
//
// For applications using Uber's fx, use the FXModule:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Info, ServiceName: "orders"}
//		}),
//	)
//
// The module registers an OnStop hook that flushes buffered log entries on
// shutdown.
package logger
