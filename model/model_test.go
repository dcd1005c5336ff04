package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookAddCharacter(t *testing.T) {
	b := NewBook("mobydick", 2)
	ch := b.AddCharacter("mobydick|ahab", []int32{0, 1, 2}, 2)
	require.Len(t, b.Characters, 1)
	assert.Equal(t, 3, b.TotalWords)
	assert.Equal(t, 3, ch.NumWords())
	assert.Len(t, ch.RoleCounts, 2)
}

func TestReassignThemeToTheme(t *testing.T) {
	b := NewBook("book", 2)
	b.AddCharacter("c", []int32{0}, 2)
	b.Characters[0].Z[0] = 0
	b.ThemeCounts[0] = 1

	Reassign(b, 0, 0, 1, 2)

	assert.Equal(t, int64(0), b.ThemeCounts[0])
	assert.Equal(t, int64(1), b.ThemeCounts[1])
	assert.Equal(t, int16(1), b.Characters[0].Z[0])
}

func TestReassignRoleToTheme(t *testing.T) {
	b := NewBook("book", 2)
	b.AddCharacter("c", []int32{0}, 2)
	b.Characters[0].Z[0] = 2 // role 0 (t=2)
	b.Characters[0].RoleCounts[0] = 1

	Reassign(b, 0, 0, 0, 2)

	assert.Equal(t, int64(0), b.Characters[0].RoleCounts[0])
	assert.Equal(t, int64(1), b.ThemeCounts[0])
}

func TestTopicWordMatrixIncrementDecrement(t *testing.T) {
	m := NewTopicWordMatrix(3, 2)
	m.Increment(0, 0)
	m.Increment(0, 0)
	m.Increment(1, 1)
	assert.Equal(t, int64(2), m.TW[0][0])
	assert.Equal(t, int64(2), m.N[0])
	assert.Equal(t, int64(1), m.N[1])

	require.NoError(t, m.Decrement(0, 0))
	assert.Equal(t, int64(1), m.TW[0][0])

	assert.ErrorIs(t, m.Decrement(2, 0), ErrNegativeCount)
}

func TestTopicWordMatrixCloneIsIndependent(t *testing.T) {
	m := NewTopicWordMatrix(2, 2)
	m.Increment(0, 0)
	c := m.Clone()
	c.Increment(0, 0)
	assert.Equal(t, int64(1), m.TW[0][0])
	assert.Equal(t, int64(2), c.TW[0][0])
	assert.True(t, m.Equal(m))
	assert.False(t, m.Equal(c))
}

func TestDeltaMatrixApplyTo(t *testing.T) {
	tw := NewTopicWordMatrix(2, 2)
	tw.Increment(0, 0)

	d := NewDeltaMatrix(2, 2)
	d.Dec(0, 0)
	d.Inc(0, 1)

	d.ApplyTo(tw)
	assert.Equal(t, int64(0), tw.TW[0][0])
	assert.Equal(t, int64(1), tw.TW[0][1])
	assert.Equal(t, int64(0), tw.N[0])
	assert.Equal(t, int64(1), tw.N[1])
}

func TestDeltaMatrixMergeOrderIndependent(t *testing.T) {
	base := NewTopicWordMatrix(2, 2)
	base.Increment(0, 0)
	base.Increment(1, 1)

	d1 := NewDeltaMatrix(2, 2)
	d1.Dec(0, 0)
	d1.Inc(0, 1)

	d2 := NewDeltaMatrix(2, 2)
	d2.Dec(1, 1)
	d2.Inc(1, 0)

	a := base.Clone()
	d1.ApplyTo(a)
	d2.ApplyTo(a)

	b := base.Clone()
	d2.ApplyTo(b)
	d1.ApplyTo(b)

	assert.True(t, a.Equal(b))
}

func TestHyperparametersCloneIndependence(t *testing.T) {
	h := Hyperparameters{T: 2, R: 2, Alpha: []float64{1, 1, 1, 1}, Beta: 0.1}
	c := h.Clone()
	c.Alpha[0] = 99
	assert.Equal(t, 1.0, h.Alpha[0])
}
