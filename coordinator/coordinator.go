// Package coordinator implements the outer iteration loop of spec.md
// §4.4: shuffle the book list, partition it into P shards by stride,
// dispatch one sweep per shard concurrently, merge their ΔTW into the
// authoritative matrix, and periodically report, rescale α, and audit.
//
// The fan-out/fan-in shape is grounded on
// fondoger-gostuff/nlp/lda.go's goroutine-per-worker pattern
// (WaitGroup-style join, not raw unsynchronized goroutines); the
// iteration semantics — the stride partition, the seed formula, the
// report/rescale/audit cadence — are grounded on
// original_source/infer_two_levels.py's __main__ loop and
// shuffledivide, which spec.md left as prose.
package coordinator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/fluhus/rolelda/audit"
	"github.com/fluhus/rolelda/gnum"
	"github.com/fluhus/rolelda/model"
	"github.com/fluhus/rolelda/sweep"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// seedRecyclePeriod is preserved exactly from original_source/
// infer_two_levels.py, including its short period and the resulting
// cross-(shard,iteration) seed collisions — spec.md §9 calls this out
// as an open question to flag, not a bug to fix, since determinism
// (spec.md §8 properties 6-7) depends on reproducing it exactly.
const seedRecyclePeriod = 399

// Reporter prints the per-topic top words (spec.md §6 Outputs). A nil
// Reporter silently skips reporting — core coordination never depends
// on anything being printed.
type Reporter interface {
	Report(iteration int, tw *model.TopicWordMatrix)
}

// Telemetry records one iteration's outcome for later inspection. A
// nil Telemetry is a no-op.
type Telemetry interface {
	Record(runID uuid.UUID, iteration int, changeRatio float64, auditRan, auditPassed bool, duration time.Duration) error
}

// Coordinator holds the authoritative state between iterations: TW,
// α/β, and the global book list (spec.md §5 "What is shared vs
// private").
type Coordinator struct {
	RunID uuid.UUID
	Books []*model.Book
	TW    *model.TopicWordMatrix
	HP    model.Hyperparameters

	// P is the worker count (numprocesses).
	P int
	// AlphaMean is the fixed base scale the α rescale multiplies back
	// in (spec.md §4.4 step 7).
	AlphaMean float64

	// Iteration is the cumulative iteration count already completed.
	// It persists across Run calls so the report/rescale/audit cadence
	// and the seed formula depend on the run's absolute iteration
	// number, not on how Run happened to be chunked by the caller.
	Iteration int

	Reporter  Reporter
	Telemetry Telemetry

	shuffleRNG *rand.Rand
}

// New constructs a Coordinator. shuffleSeed governs the per-iteration
// book shuffle (spec.md §8 property 6 requires it be supplied, not
// time-derived, for determinism across runs).
func New(books []*model.Book, tw *model.TopicWordMatrix, hp model.Hyperparameters, p int, alphaMean float64, shuffleSeed int64) *Coordinator {
	return &Coordinator{
		RunID:      uuid.New(),
		Books:      books,
		TW:         tw,
		HP:         hp,
		P:          p,
		AlphaMean:  alphaMean,
		shuffleRNG: rand.New(rand.NewSource(shuffleSeed)),
	}
}

// Run executes numIterations coordinator rounds (spec.md §4.4). It
// returns the first fatal error encountered — a worker failure or an
// audit invariant violation — aborting the run rather than
// continuing, per spec.md §7.
func (c *Coordinator) Run(numIterations int) error {
	if c.P <= 0 {
		return ErrInvalidWorkerCount
	}
	for n := 0; n < numIterations; n++ {
		i := c.Iteration
		start := time.Now()

		if i > 0 {
			c.shuffleRNG.Shuffle(len(c.Books), func(a, b int) {
				c.Books[a], c.Books[b] = c.Books[b], c.Books[a]
			})
		}
		shards := partition(c.Books, c.P)

		results, err := c.runShards(shards, i)
		if err != nil {
			return err
		}

		changeRatio := mergeResults(c.TW, results)
		c.Books = concatBooks(results)

		if i%20 == 0 {
			if c.Reporter != nil {
				c.Reporter.Report(i, c.TW)
			}
			if i > 99 {
				c.rescaleAlpha()
			}
		}

		auditRan := i%50 == 1
		auditPassed := true
		if auditRan {
			if err := audit.Run(c.Books, c.TW); err != nil {
				auditPassed = false
				if c.Telemetry != nil {
					_ = c.Telemetry.Record(c.RunID, i, changeRatio, auditRan, auditPassed, time.Since(start))
				}
				return errors.Wrapf(err, "iteration %d", i)
			}
		}

		if c.Telemetry != nil {
			if err := c.Telemetry.Record(c.RunID, i, changeRatio, auditRan, auditPassed, time.Since(start)); err != nil {
				return errors.Wrap(err, "recording telemetry")
			}
		}

		c.Iteration++
	}
	return nil
}

// runShards dispatches one sweep per shard concurrently and waits for
// all to complete (spec.md §4.4 step 4, §5 "the coordinator blocks
// until all workers... complete").
func (c *Coordinator) runShards(shards [][]*model.Book, iteration int) ([]*sweep.Result, error) {
	results := make([]*sweep.Result, len(shards))
	errs := make([]error, len(shards))

	var wg sync.WaitGroup
	for s, shard := range shards {
		shard := shard
		seed := int64(((s+1)*(iteration+1)) % seedRecyclePeriod)
		twCopy := c.TW.Clone()
		hp := c.HP.Clone()

		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			res, err := sweep.RunSafely(shard, twCopy, hp, seed)
			if err != nil {
				errs[s] = err
				return
			}
			results[s] = res
		}(s)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "iteration %d", iteration)
		}
	}
	return results, nil
}

// rescaleAlpha applies spec.md §4.4 step 7: α' = N/mean(N), clamped to
// [0.5,2.0] per topic, then scaled back by AlphaMean.
func (c *Coordinator) rescaleAlpha() {
	mean := gnum.Mean(c.TW.N)
	newAlpha := make([]float64, len(c.TW.N))
	for k, n := range c.TW.N {
		scaled := gnum.Clamp(float64(n)/mean, 0.5, 2.0)
		newAlpha[k] = scaled * c.AlphaMean
	}
	c.HP.Alpha = newAlpha
}

// partition implements the shuffle-and-stride scheme of spec.md §9:
// shard_s = [L[i] for i in range(s, len(L), P)].
func partition(books []*model.Book, p int) [][]*model.Book {
	shards := make([][]*model.Book, p)
	for i, b := range books {
		s := i % p
		shards[s] = append(shards[s], b)
	}
	return shards
}

// mergeResults sums every shard's ΔTW into tw (spec.md §4.4 step 5)
// and returns the run's change-ratio, averaged across shards for
// reporting. The merge is commutative/associative (spec.md §4.4
// "Concurrent merge safety"), so the shard iteration order here does
// not affect the resulting tw.
func mergeResults(tw *model.TopicWordMatrix, results []*sweep.Result) float64 {
	var sumRatio float64
	for _, res := range results {
		res.Delta.ApplyTo(tw)
		sumRatio += res.ChangeRatio
	}
	if len(results) == 0 {
		return 0
	}
	return sumRatio / float64(len(results))
}

// concatBooks rebuilds the global book list as the concatenation of
// the shards' returned lists (spec.md §4.4 step 6).
func concatBooks(results []*sweep.Result) []*model.Book {
	var books []*model.Book
	for _, res := range results {
		books = append(books, res.Books...)
	}
	return books
}
