// Package model holds the count structures the sampler mutates: the
// book/character ownership tree, the shared topic-word matrix, and its
// derived column sums.
package model

import "errors"

// Sentinel errors. Public mutators return these instead of panicking
// on user-triggered conditions; panics are reserved for invariant
// violations the sampler itself should never produce (see audit).
var (
	// ErrNegativeCount is returned if a decrement would drive a count
	// structure below zero.
	ErrNegativeCount = errors.New("model: count would go negative")

	// ErrTopicOutOfRange is returned when a topic id is outside [0,K).
	ErrTopicOutOfRange = errors.New("model: topic id out of range")

	// ErrTooManyTopics is returned when T+R does not fit a signed
	// 16-bit assignment.
	ErrTooManyTopics = errors.New("model: K must fit in int16 (K<32768)")
)
