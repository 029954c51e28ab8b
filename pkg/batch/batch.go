// Copyright (C) 2026 FedForum Project
//
// This file is part of fedcore-go.
//
// fedcore-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fedcore-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with fedcore-go.  If not, see <https://www.gnu.org/licenses/>.

// Package batch runs work over a slice in bounded, optionally paced
// batches. Batches execute sequentially; concurrency inside a batch is the
// callback's business, which keeps the number of simultaneous outbound
// connections capped at the batch size.
package batch

import (
	"context"
	"time"
)

// Options controls ProcessArray.
type Options struct {
	// Batch is the maximum slice length handed to one callback
	// invocation. Zero means everything in one batch.
	Batch int

	// Interval sleeps between consecutive batches. Zero disables pacing.
	Interval time.Duration
}

// ProcessArray splits items into batches and calls fn for each in order.
// The first callback error stops iteration and is returned. Context
// cancellation is honored between batches and during pacing sleeps.
func ProcessArray[T any](ctx context.Context, items []T, fn func(ctx context.Context, batch []T) error, opts Options) error {
	size := opts.Batch
	if size <= 0 || size > len(items) {
		size = len(items)
	}
	for start := 0; start < len(items); start += size {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		if err := fn(ctx, items[start:end]); err != nil {
			return err
		}
		if opts.Interval > 0 && end < len(items) {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(opts.Interval):
			}
		}
	}
	return nil
}
