// Package delivery defines the contract every transport front-end
// (HTTP today, workers later) exposes to the application runner.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops or fails; shutdown is driven by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
