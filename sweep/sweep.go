// Package sweep implements one worker's traversal of its book shard —
// the "sweep driver" of spec.md §4.3. A sweep is purely sequential and
// single-threaded; the coordinator (package coordinator) is what runs
// several sweeps concurrently, one per shard.
//
// Structurally this generalizes fondoger-gostuff/nlp/lda.go's
// per-goroutine worker body (a local topic-table copy, a thread-local
// *rand.Rand, a change-counting map) from its channel-fed
// one-document-at-a-time dispatch to spec.md's fixed book-shard-per-
// worker model, and from a time-seeded RNG to the coordinator-assigned
// deterministic seed spec.md §4.4/§9 requires for reproducibility.
package sweep

import (
	"math/rand"

	"github.com/fluhus/rolelda/model"
	"github.com/fluhus/rolelda/sampler"
)

// Result is what a worker hands back to the coordinator: its net
// change to the topic-word matrix, the shard's book list (ownership
// handed back unchanged in content, though books are mutated in
// place), and the smoothed change-ratio diagnostic.
type Result struct {
	Delta       *model.DeltaMatrix
	Books       []*model.Book
	ChangeRatio float64
}

// Run seeds a private RNG, computes N once from tw, then invokes the
// sampler kernel once per token of every character of every book in
// books, in order. tw is mutated in place — callers must pass a
// worker-private copy (spec.md §4.4 step 2), never the coordinator's
// authoritative matrix.
func Run(books []*model.Book, tw *model.TopicWordMatrix, hp model.Hyperparameters, seed int64) (*Result, error) {
	rng := rand.New(rand.NewSource(seed))
	tw.RecomputeN()

	delta := model.NewDeltaMatrix(tw.W, tw.K)
	var same, different int64

	for _, book := range books {
		for charIdx := range book.Characters {
			ch := &book.Characters[charIdx]
			for tokenIdx := range ch.Words {
				w := int(ch.Words[tokenIdx])
				oldZ := ch.Z[tokenIdx]

				changed, err := sampler.Kernel(tw, book, charIdx, tokenIdx, hp, rng)
				if err != nil {
					return nil, err
				}

				newZ := ch.Z[tokenIdx]
				delta.Dec(w, int(oldZ))
				delta.Inc(w, int(newZ))

				if changed {
					different++
				} else {
					same++
				}
			}
		}
	}

	return &Result{
		Delta:       delta,
		Books:       books,
		ChangeRatio: float64(different+1) / float64(same+1),
	}, nil
}
