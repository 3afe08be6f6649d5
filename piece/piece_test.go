package piece

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(m []bool) int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}

func TestCatalog(t *testing.T) {
	sizes := map[Kind]int{I: 4, L: 3, J: 3, O: 2, S: 3, Z: 3, T: 3}
	require.Len(t, Kinds, 7)
	for _, k := range Kinds {
		assert.Equal(t, sizes[k], Size(k), "size of %v", k)
		assert.Equal(t, 4, count(BaseMask(k)), "cells of %v", k)
		assert.False(t, BaseOccupied(k, -1))
		assert.False(t, BaseOccupied(k, Size(k)*Size(k)))
	}
}

func TestBaseMask_BottomAligned(t *testing.T) {
	for _, k := range Kinds {
		size := Size(k)
		m := BaseMask(k)
		bottom := m[(size-1)*size:]
		assert.True(t, slices.Contains(bottom, true), "%v has an empty bottom row", k)
	}
}

func TestRotateCW_IndexMapping(t *testing.T) {
	// 0 1 2      6 3 0
	// 3 4 5  ->  7 4 1
	// 6 7 8      8 5 2
	for i := range 9 {
		m := make([]bool, 9)
		m[i] = true
		got := RotateCW(m, 3)
		want := (i%3)*3 + (2 - i/3)
		assert.True(t, got[want], "index %d should land on %d", i, want)
		assert.Equal(t, 1, count(got))
	}
}

func TestRotate_FourTurnsIsIdentity(t *testing.T) {
	for _, k := range Kinds {
		for start := range 4 {
			p := Piece{Kind: k, Orientation: start}
			before := p.Mask()
			for range 4 {
				p.Rotate()
			}
			assert.Equal(t, start, p.Orientation)
			assert.Equal(t, before, p.Mask(), "%v from orientation %d", k, start)

			m := before
			for range 4 {
				m = RotateCW(m, p.Size())
			}
			assert.Equal(t, before, m)
		}
	}
}

func TestRotate_OKindInvariant(t *testing.T) {
	p := Piece{Kind: O}
	base := p.Mask()
	for range 9 {
		p.Rotate()
		assert.Equal(t, base, p.Mask())
		p.UndoRotate()
		p.UndoRotate()
		assert.Equal(t, base, p.Mask())
		p.Rotate()
	}
}

func TestUndoRotate(t *testing.T) {
	p := Piece{Kind: T}
	p.UndoRotate()
	assert.Equal(t, 3, p.Orientation)
	p.Rotate()
	assert.Equal(t, 0, p.Orientation)
}

func TestKick(t *testing.T) {
	for _, primary := range []bool{true, false} {
		for o := range 4 {
			dx, dy := Kick(primary, o, 0)
			assert.Zero(t, dx)
			assert.Zero(t, dy)
		}
	}
	dx, dy := Kick(true, 1, 1)
	assert.Equal(t, -2, dx)
	assert.Equal(t, 0, dy)
	assert.True(t, IsPrimary(I))
	assert.False(t, IsPrimary(T))
}
