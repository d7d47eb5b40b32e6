package sortedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAll(t *testing.T) {
	assert := assert.New(t)

	// non-decreasing input: every element lands interior.
	l := newIntList()
	assert.True(l.AddAll([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
	assert.Equal(10, l.Size())
	assert.Equal("[0, 1, 2, 3, 4, 5, 6, 7, 8, 9]", l.String())

	// a new minimum lands at the front: the loop stops there. The
	// front-landing element itself is stored, the rest is skipped.
	l = newIntList()
	assert.False(l.AddAll([]int{5, 3, 9}))
	assert.Equal(2, l.Size())
	assert.Equal("[3, 5]", l.String())
	checkMirror(l, assert)
}

func TestContainsAll(t *testing.T) {
	assert := assert.New(t)
	l := newIntList()
	l.AddAll([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	assert.True(l.ContainsAll([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
	assert.False(l.ContainsAll([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
	assert.True(l.ContainsAll(nil))

	// size-matching heuristic: duplicates in the query each count as
	// found against a single matching element.
	assert.True(l.ContainsAll([]int{1, 1, 1}))
}

func TestRemoveAll(t *testing.T) {
	assert := assert.New(t)
	l := newIntList()
	l.AddAll([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	// -11 is absent, the other three are removed.
	assert.True(l.RemoveAll([]int{1, 5, 6, -11}))
	assert.Equal(7, l.Size())
	assert.Equal("[0, 2, 3, 4, 7, 8, 9]", l.String())
	checkMirror(l, assert)

	assert.False(l.RemoveAll([]int{100}))
	assert.Equal(7, l.Size())
}

func TestRemoveAllAdjacent(t *testing.T) {
	assert := assert.New(t)
	l := newIntList()
	for _, v := range []int{4, 4, 4, 2, 4} {
		l.Add(v)
	}

	// adjacent matches must all go; the loop re-examines the slot
	// after each removal.
	assert.True(l.RemoveAll([]int{4}))
	assert.Equal("[2]", l.String())
	checkMirror(l, assert)
}

func TestRetainAll(t *testing.T) {
	assert := assert.New(t)
	l := newIntList()
	l.AddAll([]int{0, 2, 3, 4, 7, 8, 9})

	assert.True(l.RetainAll([]int{3, 8, 0}))
	assert.Equal("[0, 3, 8]", l.String())
	checkMirror(l, assert)

	// nothing to drop.
	assert.False(l.RetainAll([]int{0, 3, 8}))
	assert.Equal(3, l.Size())
}
