// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a transport surface (HTTP today) that serves until its context
// is cancelled or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
