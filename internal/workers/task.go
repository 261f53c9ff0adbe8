package workers

import (
	"context"
	"errors"
	"fmt"
)

// ErrPanic is wrapped by the error of a task whose function panicked.
var ErrPanic = errors.New("task panicked")

// Task is the pending result of a function running on its own goroutine.
//
// The result is written once, before Done is closed, and may be read any
// number of times afterwards from any goroutine.
type Task[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go runs fn on a new goroutine and returns its task. ctx is passed to fn
// unchanged; cancelling it is how the owner abandons the work.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()
		t.value, t.err = fn(ctx)
	}()

	return t
}

// Done is closed once the result is available.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the result is available or ctx is done, whichever comes
// first. In the latter case it returns ctx.Err() and the task keeps running.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the outcome without blocking. ok is false while the task is
// still running.
func (t *Task[T]) Result() (value T, ok bool, err error) {
	select {
	case <-t.done:
		return t.value, true, t.err
	default:
		var zero T
		return zero, false, nil
	}
}
