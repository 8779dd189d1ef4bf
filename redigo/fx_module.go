package redigo

import (
	"context"
	"log"

	"go.uber.org/fx"

	"github.com/stackbound/rediskit/observability"
)

// FXModule is an fx.Module that provides and configures the redigo backed
// client. It registers the client with the Fx dependency injection framework,
// making it available to other components in the application.
//
// Usage:
//
//	app := fx.New(
//	    redigo.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("redigo",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterClientLifecycle),
)

// ClientParams groups the dependencies needed to create a client.
type ClientParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"` // Optional logger from rediskit/logger
	Observer observability.Observer `optional:"true"` // Optional command observer
}

// NewClientWithDI creates a new client using dependency injection. It injects
// the optional logger and observer before delegating to the standard
// NewClient function.
func NewClientWithDI(params ClientParams) (*Client, error) {
	if params.Logger != nil {
		params.Config.Logger = params.Logger
	}

	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}

	if params.Observer != nil {
		client = client.WithObserver(params.Observer)
	}
	return client, nil
}

// ClientLifecycleParams groups the dependencies needed for lifecycle
// management.
type ClientLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *Client
}

// RegisterClientLifecycle registers the client with the fx lifecycle system:
// the pool is verified with a ping on start and drained on stop.
func RegisterClientLifecycle(params ClientLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Client.Ping(ctx); err != nil {
				log.Printf("WARN: Failed to ping Redis on startup: %v", err)
				return err
			}
			log.Println("INFO: Redis client started and healthy")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: Shutting down Redis client")
			return params.Client.Close()
		},
	})
}
