// Package delivery defines the contract shared by every transport the
// application exposes.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) managed by
// the application lifecycle. Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
