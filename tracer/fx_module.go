package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/stackbound/rediskit/observability"
)

// FXModule provides the tracer client and its lifecycle hooks to an fx
// application. The module flushes and shuts down the tracer provider when
// the application stops so that buffered spans are exported.
//
// Example:
//
//	app := fx.New(
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "checkout", AppEnv: "production", EnableExport: true}
//	    }),
//	    fx.Provide(func(log *logger.Logger) tracer.Logger { return log }),
//	    tracer.FXModule,
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(NewClient),
	fx.Provide(func(t *Tracer) observability.Observer {
		return NewCommandObserver(t)
	}),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle shuts the tracer provider down on application stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer == nil || tracer.tracer == nil {
				return nil
			}
			return tracer.tracer.Shutdown(ctx)
		},
	})
}
