// Package gcmp is a generic three-way comparator over ordered types.
package gcmp

import "cmp"

func Compare[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Less return a < b.
func Less[T cmp.Ordered](a, b T) bool {
	return Compare(a, b) < 0
}

// LessEqual return a <= b.
func LessEqual[T cmp.Ordered](a, b T) bool {
	return Compare(a, b) <= 0
}

// Equal return a == b.
func Equal[T cmp.Ordered](a, b T) bool {
	return Compare(a, b) == 0
}

// GreatEqual return a >= b.
func GreatEqual[T cmp.Ordered](a, b T) bool {
	return Compare(a, b) >= 0
}

// Great return a > b.
func Great[T cmp.Ordered](a, b T) bool {
	return Compare(a, b) > 0
}

// Between return target is in [a,b].
func Between[T cmp.Ordered](target, a, b T) bool {
	return LessEqual(a, target) && LessEqual(target, b)
}

// Min
func Min[T cmp.Ordered](a, b T) T {
	if LessEqual(a, b) {
		return a
	}
	return b
}

// Max
func Max[T cmp.Ordered](a, b T) T {
	if GreatEqual(a, b) {
		return a
	}
	return b
}

// Reverse wraps a comparator so it sorts in the opposite direction.
func Reverse[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return cmp(b, a)
	}
}
