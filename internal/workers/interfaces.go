// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs work off the caller's goroutine.
//
// [Task] is a single asynchronous call whose result is handed back to the
// goroutine that started it; the owner decides when and where to apply it.
// [Workers] runs long-lived components such as the HTTP server side by side
// and stops all of them when one fails or the context ends.
package workers

import "context"

// Worker is a long-running component.
//
// Run blocks until ctx is done or the worker fails. A worker that stops
// because ctx ended returns nil.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
