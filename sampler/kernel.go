// Package sampler implements the collapsed-Gibbs sampling kernel: the
// inner loop that reassigns one token's topic given the current
// theme/role/topic-word counts (spec.md §4.1).
//
// The procedure below — decrement before computing the posterior,
// build an unnormalized weight per topic, draw categorically off a
// cumulative sum, then commit the increment — is the same shape as
// fondoger-gostuff/nlp/lda.go's per-token reassignment loop
// (d.sub/myTopics[t].sub, the ts[k]=d.p(k)*myTopics[k].p(word) weight
// build-up, pickRandom); the probability formula itself is spec.md's
// two-level θ/ρ split rather than that file's single Dirichlet table.
package sampler

import (
	"math/rand"

	"github.com/fluhus/rolelda/model"
)

// Kernel reassigns token (charIdx, tokenIdx) of book: it decrements
// the counts backing the token's current topic, computes the K-way
// conditional distribution over topics, draws a new topic, and
// commits the increment. It reports whether the draw changed the
// assignment, for the caller's change-ratio bookkeeping (spec.md
// §4.3).
//
// tw is the caller's working copy of the topic-word matrix (a worker's
// shard-local snapshot, or the coordinator's authoritative copy when
// run single-threaded) and is mutated in place, alongside book.
func Kernel(tw *model.TopicWordMatrix, book *model.Book, charIdx, tokenIdx int, hp model.Hyperparameters, rng *rand.Rand) (changed bool, err error) {
	ch := &book.Characters[charIdx]
	w := int(ch.Words[tokenIdx])
	z := ch.Z[tokenIdx]
	t := hp.T
	k := hp.K()

	// Decrement first: the conditional must exclude the current token
	// (spec.md §4.1 "Update").
	model.DecrementTopic(book, charIdx, z, t)
	if err := tw.Decrement(w, int(z)); err != nil {
		return false, err
	}

	u := make([]float64, k)
	totalWords := float64(book.TotalWords)
	numWords := float64(ch.NumWords())
	for topic := 0; topic < k; topic++ {
		var eta float64
		if topic < t {
			eta = float64(book.ThemeCounts[topic]) / totalWords
		} else {
			eta = float64(ch.RoleCounts[topic-t]) / numWords
		}
		phi := (float64(tw.TW[w][topic]) + hp.Beta) / float64(tw.N[topic])
		uk := (eta + hp.Alpha[topic]) * phi
		if uk < 0 {
			return false, ErrNegativeWeight
		}
		u[topic] = uk
	}

	newZ := int16(sampleCategorical(u, rng))

	model.IncrementTopic(book, charIdx, newZ, t)
	tw.Increment(w, int(newZ))
	ch.Z[tokenIdx] = newZ

	return newZ != z, nil
}

// sampleCategorical draws an index from u with probability
// proportional to its (unnormalized) weight, via a cumulative-sum scan
// — the same technique as fondoger-gostuff/nlp/lda.go's pickRandom,
// generalized to float64 weights.
func sampleCategorical(u []float64, rng *rand.Rand) int {
	var sum float64
	for _, v := range u {
		sum += v
	}
	if sum <= 0 {
		return rng.Intn(len(u))
	}
	r := rng.Float64() * sum
	var cdf float64
	for i, v := range u {
		cdf += v
		if r <= cdf {
			return i
		}
	}
	return len(u) - 1
}
