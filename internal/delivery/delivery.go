// Package delivery defines the entrypoint contract every front surface of
// the application implements, so cmd wiring can start them uniformly.
package delivery

import "context"

// Delivery is a long-running front surface. Serve blocks until the surface
// finishes or ctx is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
