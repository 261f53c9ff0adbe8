package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package. It satisfies workers.Worker.
type Server interface {
	// Run serves requests until ctx is done or a termination signal
	// arrives, then shuts down gracefully. A clean shutdown returns nil.
	Run(ctx context.Context) error
}
