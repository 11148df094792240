// Package tasks runs fetches off the caller's goroutine. Operations
// are fire-and-forget: once started they run to completion, and the
// caller picks the outcome up from a channel.
package tasks

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome carries a finished operation's value or error.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Run starts fn on its own goroutine and returns a channel that
// yields exactly one outcome. The channel is buffered, so the result
// is delivered even if nobody is listening yet.
func Run[T any](fn func() (T, error)) <-chan Outcome[T] {
	ch := make(chan Outcome[T], 1)
	go func() {
		value, err := fn()
		ch <- Outcome[T]{Value: value, Err: err}
	}()
	return ch
}

// All runs the given functions concurrently and waits for all of
// them. The first error cancels the shared context and is returned.
func All(ctx context.Context, fns ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range fns {
		fn := fn
		g.Go(func() error {
			return fn(gctx)
		})
	}
	return g.Wait()
}
