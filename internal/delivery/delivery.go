// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running transport surface, started once by the
// application lifecycle and stopped through its own fx hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
