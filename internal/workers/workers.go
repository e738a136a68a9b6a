// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit caps the number of workers running at once when New gets a
// non-positive limit.
const DefaultLimit = 4

type Workers struct {
	workers []Worker
	limit   int
}

func New(limit int, workers ...Worker) *Workers {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Workers{workers: workers, limit: limit}
}

func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run executes every worker and waits for all of them. One failure does not
// cancel the others. The i-th error belongs to the i-th worker and is nil on
// success.
func (w *Workers) Run(ctx context.Context) []error {
	errs := make([]error, len(w.workers))

	var g errgroup.Group
	g.SetLimit(w.limit)

	for i, worker := range w.workers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = worker.Run(ctx)
			return nil
		})
	}
	g.Wait()

	return errs
}
