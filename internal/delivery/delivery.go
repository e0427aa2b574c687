// Package delivery defines the inbound transport abstraction.
package delivery

import "context"

// Delivery is a serving surface (HTTP server, worker, ...) started by the
// application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
