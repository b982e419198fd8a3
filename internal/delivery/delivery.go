// Package delivery defines the transport-facing entry points of the
// application.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) started by main
// and stopped through its fx lifecycle hook.
type Delivery interface {
	// Serve blocks serving requests until the delivery is shut down.
	Serve(ctx context.Context) error
}
