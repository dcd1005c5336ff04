package model

// Hyperparameters holds the Dirichlet concentration vector α (one
// entry per topic, themes first then roles) and the scalar word
// smoothing β. Owned by the coordinator; workers receive a copy.
type Hyperparameters struct {
	T     int       // number of themes
	R     int       // number of roles
	Alpha []float64 // length T+R
	Beta  float64
}

// K returns the total topic count T+R.
func (h Hyperparameters) K() int { return h.T + h.R }

// NewHyperparameters builds a Hyperparameters, rejecting a T+R that
// would not fit the int16 topic assignments model.Character.Z uses
// (spec.md §4.2/§5).
func NewHyperparameters(t, r int, alpha []float64, beta float64) (Hyperparameters, error) {
	if t+r >= 32768 {
		return Hyperparameters{}, ErrTooManyTopics
	}
	return Hyperparameters{T: t, R: r, Alpha: alpha, Beta: beta}, nil
}

// Clone returns a deep copy, so a worker can hold its own α/β without
// racing the coordinator's periodic rescale.
func (h Hyperparameters) Clone() Hyperparameters {
	alpha := make([]float64, len(h.Alpha))
	copy(alpha, h.Alpha)
	return Hyperparameters{T: h.T, R: h.R, Alpha: alpha, Beta: h.Beta}
}
