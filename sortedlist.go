// Package sortedlist is a growable array-backed list whose elements stay
// sorted on every insertion. Similar to a priority queue: reading the
// minimum and maximum takes O(1) time, but insertion, lookup and removal
// are O(n). A second backing array shadows the original insertion order
// for diagnostic rendering.
package sortedlist

import (
	"math"

	"github.com/xgzlucario/sortedlist/option"
)

const (
	// DefaultCapacity is the initial backing array length
	// when none is given.
	DefaultCapacity = 11

	// MaxCapacity is the largest backing array length a list
	// may grow to. Growth is locked once it is reached.
	MaxCapacity = math.MaxInt32 - 8
)

// Landing reports where a newly added element settled after the sift pass.
//
// The contract is quirky and kept on purpose: LandedFront does NOT mean the
// add failed. The element is always stored; the landing only tells whether
// it became the new extreme of the list.
type Landing uint8

const (
	// LandedInterior means the element settled at an index greater than
	// zero, or was the first element ever added.
	LandedInterior Landing = iota + 1

	// LandedFront means the element sifted all the way to index 0 of a
	// list that already held elements, becoming its new extreme.
	LandedFront
)

// List keeps its elements ordered by cmp across all mutations.
type List[T any] struct {
	cmp func(a, b T) int

	// sorted and shadow share a capacity and a valid prefix [0,size).
	// sorted satisfies the order invariant, shadow keeps insertion order.
	sorted []T
	shadow []T
	size   int

	initialCap int
	ascending  bool
	growLocked bool
}

// New creates an empty list ordered by cmp, which must return a negative
// number, zero or a positive number for a<b, a==b and a>b.
func New[T any](cmp func(a, b T) int, opts ...*option.Option) *List[T] {
	opt := option.DefaultOption
	if len(opts) > 0 {
		opt = opts[0]
	}

	cap := opt.Capacity
	if cap <= 0 {
		cap = DefaultCapacity
	}

	return &List[T]{
		cmp:        cmp,
		sorted:     make([]T, cap),
		shadow:     make([]T, cap),
		initialCap: cap,
		ascending:  opt.Ascending,
	}
}

// From creates a list seeded with elems added in slice order. The requested
// capacity must be at least len(elems), otherwise ErrInvalidCapacity.
func From[T any](cmp func(a, b T) int, elems []T, opts ...*option.Option) (*List[T], error) {
	opt := &option.Option{Ascending: true, Capacity: len(elems)}
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Capacity < len(elems) {
		return nil, ErrInvalidCapacity
	}

	l := New[T](cmp, opt)
	for _, v := range elems {
		l.Add(v)
	}
	return l, nil
}

// Add stores v in both backing arrays, then sifts it leftward through the
// sorted array by adjacent compare-and-swap until order is restored.
//
// The returned Landing is LandedFront only when v ended at index 0 and was
// not the first element ever added. Callers that just want the element
// stored can ignore it.
//
// Panics with ErrListFull when the backing arrays hold MaxCapacity
// elements and growth is locked.
func (l *List[T]) Add(v T) Landing {
	if l.size == len(l.sorted) {
		l.grow()
		if l.size == len(l.sorted) {
			panic(ErrListFull)
		}
	}

	l.sorted[l.size] = v
	l.shadow[l.size] = v
	l.size++

	i := l.size - 1
	for ; i > 0; i-- {
		if l.inOrder(l.sorted[i-1], l.sorted[i]) {
			break
		}
		l.swap(i, i-1)
	}

	if i == 0 && l.size > 1 {
		return LandedFront
	}
	return LandedInterior
}

// Remove deletes one instance of v: the first match (scanning from index 0)
// in the sorted array, and the last match of a full scan in the insertion
// shadow. Reports false without mutation when v is absent.
func (l *List[T]) Remove(v T) bool {
	index := l.indexOf(v)
	if index == -1 {
		return false
	}
	l.removeAt(index)
	return true
}

// Get returns the element at index in sorted order.
func (l *List[T]) Get(index int) (v T, err error) {
	if index < 0 || index >= l.size {
		return v, ErrIndexOutOfBounds
	}
	return l.sorted[index], nil
}

// Min returns the minimum element in O(1).
func (l *List[T]) Min() (v T, err error) {
	if l.size == 0 {
		return v, ErrEmptyList
	}
	if l.ascending {
		return l.sorted[0], nil
	}
	return l.sorted[l.size-1], nil
}

// Max returns the maximum element in O(1).
func (l *List[T]) Max() (v T, err error) {
	if l.size == 0 {
		return v, ErrEmptyList
	}
	if l.ascending {
		return l.sorted[l.size-1], nil
	}
	return l.sorted[0], nil
}

// Contains
func (l *List[T]) Contains(v T) bool {
	return l.indexOf(v) != -1
}

// Size
func (l *List[T]) Size() int {
	return l.size
}

// Capacity
func (l *List[T]) Capacity() int {
	return len(l.sorted)
}

// IsEmpty
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Ascending reports the active order mode.
func (l *List[T]) Ascending() bool {
	return l.ascending
}

// Clear drops all elements and shrinks both backing arrays back to the
// originally configured capacity. Growth is unlocked again.
func (l *List[T]) Clear() {
	l.sorted = make([]T, l.initialCap)
	l.shadow = make([]T, l.initialCap)
	l.size = 0
	l.growLocked = false
}

// SetOrder flips the sort mode and reverses the sorted prefix in place.
// The insertion shadow is not touched. No-op when the mode is unchanged.
func (l *List[T]) SetOrder(ascending bool) {
	if ascending == l.ascending {
		return
	}
	l.ascending = ascending
	for i := 0; i < l.size/2; i++ {
		l.swap(i, l.size-1-i)
	}
}

// ToSlice returns a copy of the sorted prefix.
func (l *List[T]) ToSlice() []T {
	out := make([]T, l.size)
	copy(out, l.sorted[:l.size])
	return out
}

// ToSliceN returns a copy of the sorted array cut to exactly n elements,
// truncated or zero-padded as needed.
func (l *List[T]) ToSliceN(n int) []T {
	out := make([]T, n)
	copy(out, l.sorted)
	return out
}

// InsertionOrder returns a copy of the shadow prefix, the elements in the
// order they were originally added.
func (l *List[T]) InsertionOrder() []T {
	out := make([]T, l.size)
	copy(out, l.shadow[:l.size])
	return out
}

// Clone returns an independent copy sharing no backing storage.
func (l *List[T]) Clone() *List[T] {
	n := &List[T]{
		cmp:        l.cmp,
		sorted:     make([]T, len(l.sorted)),
		shadow:     make([]T, len(l.shadow)),
		size:       l.size,
		initialCap: l.initialCap,
		ascending:  l.ascending,
		growLocked: l.growLocked,
	}
	copy(n.sorted, l.sorted)
	copy(n.shadow, l.shadow)
	return n
}

// grow doubles the capacity of both backing arrays, clamped to MaxCapacity.
// Once clamped, further growth requests become no-ops.
func (l *List[T]) grow() {
	if l.growLocked {
		return
	}

	newCap := len(l.sorted) * 2
	if newCap >= MaxCapacity || newCap < len(l.sorted) {
		newCap = MaxCapacity
		l.growLocked = true
	}

	sorted := make([]T, newCap)
	shadow := make([]T, newCap)
	copy(sorted, l.sorted)
	copy(shadow, l.shadow)
	l.sorted = sorted
	l.shadow = shadow
}

// swap exchanges the sorted elements at x and y.
func (l *List[T]) swap(x, y int) {
	if x == y {
		return
	}
	l.sorted[x], l.sorted[y] = l.sorted[y], l.sorted[x]
}

// indexOf returns the first sorted index comparing equal to v, or -1.
func (l *List[T]) indexOf(v T) int {
	for i := 0; i < l.size; i++ {
		if l.cmp(l.sorted[i], v) == 0 {
			return i
		}
	}
	return -1
}

// removeAt deletes the sorted element at index, removes the matching
// element from the shadow, and decrements size once.
func (l *List[T]) removeAt(index int) T {
	if index < 0 || index >= l.size {
		panic(ErrIndexOutOfBounds)
	}

	v := l.sorted[index]
	l.removeShadow(v)

	var zero T
	copy(l.sorted[index:l.size-1], l.sorted[index+1:l.size])
	l.sorted[l.size-1] = zero
	l.size--
	return v
}

// removeShadow shifts out one instance of v from the insertion shadow.
// A full scan keeps the LAST matching index, while sorted removal takes
// the first match. The asymmetry is inherited behavior; under duplicates
// the shadow may drop a different instance than the sorted array did.
func (l *List[T]) removeShadow(v T) {
	index := -1
	for i := 0; i < l.size; i++ {
		if l.cmp(l.shadow[i], v) == 0 {
			index = i
		}
	}
	if index == -1 {
		return
	}

	var zero T
	copy(l.shadow[index:l.size-1], l.shadow[index+1:l.size])
	l.shadow[l.size-1] = zero
}

// inOrder reports whether a may precede b under the active mode.
func (l *List[T]) inOrder(a, b T) bool {
	if l.ascending {
		return l.cmp(a, b) <= 0
	}
	return l.cmp(a, b) >= 0
}
