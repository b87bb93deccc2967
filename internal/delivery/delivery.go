// Package delivery holds the outer adapters that expose the address use cases.
package delivery

import "context"

// Delivery is a long-running adapter such as the HTTP API.
type Delivery interface {
	Serve(ctx context.Context) error
}
