// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a long-running transport endpoint managed by the application container.
type Delivery interface {
	// Serve blocks, accepting work until the server is shut down.
	Serve(ctx context.Context) error
}
