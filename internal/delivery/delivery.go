// Package delivery defines the transport surfaces of the application.
package delivery

import "context"

// Delivery is a long-running transport (HTTP API, Pub/Sub worker) started by
// main. Implementations register their own shutdown via fx lifecycle hooks.
type Delivery interface {
	// Serve blocks, serving requests until shutdown.
	Serve(ctx context.Context) error
}
