// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dialog

import (
	"context"
	"sync"
)

// Result is the outcome of a dialog the user closed.
// OK is false when the user cancelled, in which case Path is empty.
type Result struct {
	Path string
	OK   bool
}

// Future resolves exactly once with either a Result or an error.
type Future struct {
	once sync.Once
	done chan struct{}
	res  Result
	err  error
}

// NewFuture returns an unresolved Future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolve settles the future with a result. It reports whether this call
// settled it; later calls are ignored.
func (f *Future) Resolve(res Result) bool {
	return f.settle(res, nil)
}

// Reject settles the future with an error. It reports whether this call
// settled it; later calls are ignored.
func (f *Future) Reject(err error) bool {
	return f.settle(Result{}, err)
}

func (f *Future) settle(res Result, err error) bool {
	settled := false

	f.once.Do(func() {
		if !res.OK {
			res.Path = ""
		}

		f.res, f.err = res, err
		settled = true
		close(f.done)
	})

	return settled
}

// Done is closed once the future is settled.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future settles or ctx ends. There is no timeout:
// a dialog left open keeps its waiter suspended.
func (f *Future) Wait(ctx context.Context) (Result, error) {
	select {
	case <-f.done:
		return f.res, f.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
