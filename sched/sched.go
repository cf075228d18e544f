// Package sched decides where a unit of filesystem work executes: inline on
// the calling goroutine, or offloaded to a background goroutine and awaited.
// The directory operations are written against Runner and are agnostic to
// which branch is taken; they never spawn goroutines themselves.
package sched

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Runner executes a unit of work under a context.
type Runner interface {
	Do(ctx context.Context, work func(context.Context) error) error
}

// Inline runs work synchronously on the caller.
type Inline struct{}

// Do runs work on the calling goroutine. A context cancelled before the call
// short-circuits without invoking work.
func (Inline) Do(ctx context.Context, work func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return work(ctx)
}

// Background dispatches work to a goroutine and blocks until it finishes.
// Useful when the caller sits on a control path that must not issue blocking
// filesystem syscalls directly.
type Background struct{}

// Do runs work on a fresh goroutine and waits for its result.
func (Background) Do(ctx context.Context, work func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return work(ctx)
	})
	return g.Wait()
}
