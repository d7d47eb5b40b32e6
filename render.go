package sortedlist

import (
	"fmt"
	"strings"
)

// Render returns a bracketed, comma-separated view of the list: the sorted
// order when sorted is true, the original insertion order otherwise.
// An empty list renders as "[]".
func (l *List[T]) Render(sorted bool) string {
	if l.size == 0 {
		return "[]"
	}

	src := l.sorted
	if !sorted {
		src = l.shadow
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, src[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

// String renders the sorted view.
func (l *List[T]) String() string {
	return l.Render(true)
}

// Iter calls f for each element of the sorted view, front to back.
func (l *List[T]) Iter(f func(v T)) {
	for i := 0; i < l.size; i++ {
		f(l.sorted[i])
	}
}

// Iterator walks the sorted view front to back. Mutating the list while
// iterating is not supported.
type Iterator[T any] struct {
	l     *List[T]
	index int
}

// Iterator returns a forward iterator over the sorted view.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l: l}
}

// Next returns the next element, or ok=false when the view is exhausted.
func (it *Iterator[T]) Next() (v T, ok bool) {
	if it.index >= it.l.size {
		return v, false
	}
	v = it.l.sorted[it.index]
	it.index++
	return v, true
}
