package goredis

import (
	"context"
	"log"

	"go.uber.org/fx"

	"github.com/stackbound/rediskit/observability"
)

// FXModule is an fx.Module that provides and configures the go-redis backed
// client. It registers the client with the Fx dependency injection framework,
// making it available to other components in the application.
//
// The module:
// 1. Provides the client factory function
// 2. Invokes the lifecycle registration to manage the client's lifecycle
//
// Usage:
//
//	app := fx.New(
//	    goredis.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("goredis",
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

// NewClientWithDI creates a new client using dependency injection.
// This function is designed to be used with Uber's fx dependency injection
// framework where dependencies are automatically provided via the
// ClientParams struct.
//
// Example usage with fx:
//
//	app := fx.New(
//	    goredis.FXModule,
//	    logger.FXModule, // Optional: provides logger
//	    fx.Provide(
//	        func() goredis.Config {
//	            return loadRedisConfig() // Your config loading function
//	        },
//	    ),
//	)
//
// Under the hood, this function injects the optional logger and observer
// before delegating to the standard NewClient function.
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

// RegisterClientLifecycle registers the client with the fx lifecycle system.
// This function sets up proper initialization and graceful shutdown of the
// client.
//
// The function:
//  1. On application start: Pings the server to ensure the connection is healthy
//  2. On application stop: Triggers a graceful shutdown of the client,
//     closing connections cleanly.
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

// ClusterFXModule is an fx.Module for Redis Cluster configuration.
var ClusterFXModule = fx.Module("goredis-cluster",
	fx.Provide(
		NewClusterClientWithDI,
	),
	fx.Invoke(RegisterClientLifecycle),
)

// ClusterClientParams groups the dependencies needed to create a cluster
// client.
type ClusterClientParams struct {
	fx.In

	Config   ClusterConfig
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClusterClientWithDI creates a new Redis Cluster client using dependency
// injection.
func NewClusterClientWithDI(params ClusterClientParams) (*Client, error) {
	if params.Logger != nil {
		params.Config.Logger = params.Logger
	}

	client, err := NewClusterClient(params.Config)
	if err != nil {
		return nil, err
	}

	if params.Observer != nil {
		client = client.WithObserver(params.Observer)
	}
	return client, nil
}

// FailoverFXModule is an fx.Module for Redis Sentinel (failover)
// configuration.
var FailoverFXModule = fx.Module("goredis-failover",
	fx.Provide(
		NewFailoverClientWithDI,
	),
	fx.Invoke(RegisterClientLifecycle),
)

// FailoverClientParams groups the dependencies needed to create a Sentinel
// client.
type FailoverClientParams struct {
	fx.In

	Config   FailoverConfig
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewFailoverClientWithDI creates a new Redis Sentinel client using
// dependency injection.
func NewFailoverClientWithDI(params FailoverClientParams) (*Client, error) {
	if params.Logger != nil {
		params.Config.Logger = params.Logger
	}

	client, err := NewFailoverClient(params.Config)
	if err != nil {
		return nil, err
	}

	if params.Observer != nil {
		client = client.WithObserver(params.Observer)
	}
	return client, nil
}
