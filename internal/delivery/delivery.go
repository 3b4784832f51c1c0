// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running server started by the application lifecycle.
type Delivery interface {
	// Serve blocks until ctx is cancelled or the server fails.
	Serve(ctx context.Context) error
}
