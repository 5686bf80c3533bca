// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound transport (HTTP server, subscriber, ...).
// Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
