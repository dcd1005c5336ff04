package model

import "github.com/fluhus/rolelda/gnum"

// TopicWordMatrix is the shared count structure TW[w,k] plus its
// derived per-topic column sum N[k] = Σ_w TW[w,k] (spec.md §3).
type TopicWordMatrix struct {
	TW [][]int64 // W rows, K columns each
	N  []int64   // length K
	W  int
	K  int
}

// NewTopicWordMatrix allocates a zeroed W×K matrix.
func NewTopicWordMatrix(w, k int) *TopicWordMatrix {
	tw := make([][]int64, w)
	for i := range tw {
		tw[i] = make([]int64, k)
	}
	return &TopicWordMatrix{TW: tw, N: make([]int64, k), W: w, K: k}
}

// Increment bumps TW[w,k] and N[k] by one.
func (m *TopicWordMatrix) Increment(w, k int) {
	m.TW[w][k]++
	m.N[k]++
}

// Decrement drops TW[w,k] and N[k] by one. Returns ErrNegativeCount
// instead of going negative — the kernel must never hit this path for
// well-formed input (spec.md §4.1 edge cases); when it does, the
// kernel and sweep return the error and the coordinator aborts the run.
func (m *TopicWordMatrix) Decrement(w, k int) error {
	if m.TW[w][k] <= 0 || m.N[k] <= 0 {
		return ErrNegativeCount
	}
	m.TW[w][k]--
	m.N[k]--
	return nil
}

// RecomputeN rebuilds N from TW from scratch. Used once per worker at
// the start of a sweep (spec.md §4.3) and by the audit.
func (m *TopicWordMatrix) RecomputeN() {
	for k := range m.N {
		m.N[k] = 0
	}
	for w := range m.TW {
		for k, v := range m.TW[w] {
			m.N[k] += v
		}
	}
}

// ColumnSum returns Σ_w TW[w,k], recomputed directly (not read from N),
// for use by the topic-word report.
func (m *TopicWordMatrix) ColumnSum(k int) int64 {
	var sum int64
	for w := range m.TW {
		sum += m.TW[w][k]
	}
	return sum
}

// Clone deep-copies the matrix, for handing a per-worker snapshot to a
// sweep (spec.md §4.4 step 2 — required for correctness, since workers
// mutate their local TW during the sweep and sharing would race).
func (m *TopicWordMatrix) Clone() *TopicWordMatrix {
	out := NewTopicWordMatrix(m.W, m.K)
	for w := range m.TW {
		copy(out.TW[w], m.TW[w])
	}
	copy(out.N, m.N)
	return out
}

// Add merges another matrix's counts into this one in place (used to
// sum a worker's ΔTW into the global TW — see DeltaMatrix.ApplyTo for
// the actual merge, which takes int16 deltas; this variant exists for
// full-matrix addition, e.g. summing audit reconstructions).
func (m *TopicWordMatrix) Add(other *TopicWordMatrix) {
	for w := range m.TW {
		for k := range m.TW[w] {
			m.TW[w][k] += other.TW[w][k]
		}
	}
	m.RecomputeN()
}

// Equal reports whether two matrices hold identical counts.
func (m *TopicWordMatrix) Equal(other *TopicWordMatrix) bool {
	if m.W != other.W || m.K != other.K {
		return false
	}
	for w := range m.TW {
		for k := range m.TW[w] {
			if m.TW[w][k] != other.TW[w][k] {
				return false
			}
		}
	}
	return true
}

// Total returns Σ_k N[k], the corpus-wide token count.
func (m *TopicWordMatrix) Total() int64 {
	return gnum.Sum(m.N)
}

// DeltaMatrix is a worker's net change to TW over one sweep: ΔTW[w,z]
// -= 1 at a decrement, ΔTW[w,z'] += 1 at the matching increment.
// int16 suffices because one sweep cannot move any single (w,k) cell
// by more than ±(count of tokens with word-type w) (spec.md §5).
type DeltaMatrix struct {
	D [][]int16 // W rows, K columns each
	W int
	K int
}

// NewDeltaMatrix allocates a zeroed W×K delta matrix.
func NewDeltaMatrix(w, k int) *DeltaMatrix {
	d := make([][]int16, w)
	for i := range d {
		d[i] = make([]int16, k)
	}
	return &DeltaMatrix{D: d, W: w, K: k}
}

// Inc records a +1 at (w,k).
func (d *DeltaMatrix) Inc(w, k int) { d.D[w][k]++ }

// Dec records a -1 at (w,k).
func (d *DeltaMatrix) Dec(w, k int) { d.D[w][k]-- }

// ApplyTo merges this delta into tw (TW and N both), the coordinator's
// per-shard merge step (spec.md §4.4 step 5: TW ← TW + Σ_s ΔTW_s).
// Merging by integer addition is commutative and associative, so the
// order shards are applied in does not matter (spec.md §4.4).
func (d *DeltaMatrix) ApplyTo(tw *TopicWordMatrix) {
	for w := range d.D {
		for k, v := range d.D[w] {
			if v == 0 {
				continue
			}
			tw.TW[w][k] += int64(v)
			tw.N[k] += int64(v)
		}
	}
}
