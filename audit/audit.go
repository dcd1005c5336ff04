// Package audit rebuilds the topic-word matrix from scratch off the
// current book/character assignments and checks it against the
// incrementally maintained one, to catch arithmetic drift (spec.md
// §4.6). Grounded on original_source/infer_two_levels.py's
// recreate_matrix: a cell-by-cell equality check plus a per-book
// totalwords assertion, both still failing loudly (here: returning
// ErrInvariantViolation) rather than silently correcting anything.
package audit

import (
	"github.com/fluhus/rolelda/model"
	"github.com/pkg/errors"
)

// ErrInvariantViolation is fatal per spec.md §7: the coordinator must
// abort the run, never retry or auto-correct.
var ErrInvariantViolation = errors.New("audit: invariant violation")

// Run reconstructs TW from books' current assignments and compares it
// against tw. It also checks, per book, that the sum of its
// characters' token counts equals TotalWords (spec.md §4.6).
func Run(books []*model.Book, tw *model.TopicWordMatrix) error {
	rebuilt := model.NewTopicWordMatrix(tw.W, tw.K)

	for _, book := range books {
		var characterTotal int
		for ci := range book.Characters {
			ch := &book.Characters[ci]
			characterTotal += ch.NumWords()
			for i, w := range ch.Words {
				z := ch.Z[i]
				if int(z) < 0 || int(z) >= tw.K {
					return errors.Wrapf(model.ErrTopicOutOfRange,
						"book %q character %q token %d: topic %d",
						book.Name, ch.Name, i, z)
				}
				rebuilt.TW[w][z]++
			}
		}
		if characterTotal != book.TotalWords {
			return errors.Wrapf(ErrInvariantViolation,
				"book %q: character word counts sum to %d, want totalwords %d",
				book.Name, characterTotal, book.TotalWords)
		}
	}
	rebuilt.RecomputeN()

	if !rebuilt.Equal(tw) {
		return errors.Wrap(ErrInvariantViolation, "reconstructed topic-word matrix does not match maintained matrix")
	}
	if rebuilt.Total() != tw.Total() {
		return errors.Wrap(ErrInvariantViolation, "reconstructed token total does not match maintained total")
	}
	return nil
}
