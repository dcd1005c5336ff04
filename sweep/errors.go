package sweep

import (
	"github.com/fluhus/rolelda/model"
	"github.com/pkg/errors"
)

// ErrWorkerFailure is the sentinel a worker's goroutine reports if it
// panics mid-sweep (spec.md §7: "any worker exits abnormally. Fatal.").
// Kernel-level invariant problems (e.g. a negative topic weight,
// a count that would go negative) are not panics — sampler.Kernel
// and model.TopicWordMatrix.Decrement return ordinary errors for
// those, which Run propagates directly without needing RunSafely's
// recover.
var ErrWorkerFailure = errors.New("sweep: worker failed")

// RunSafely wraps Run with a panic recover, turning an abnormal worker
// exit into ErrWorkerFailure instead of crashing the whole process.
// The coordinator calls this (not Run) from inside each shard's
// goroutine.
func RunSafely(books []*model.Book, tw *model.TopicWordMatrix, hp model.Hyperparameters, seed int64) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrWorkerFailure, "panic: %v", r)
		}
	}()
	return Run(books, tw, hp, seed)
}
