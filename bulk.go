package sortedlist

// AddAll adds each element of elems in slice order. The loop stops early
// and reports false as soon as an element lands at the front of the list;
// elements after it are not added. The signal is driven by the per-element
// Landing, not by whether anything failed to be stored (stored elements
// stay stored). Inherited behavior, kept as-is.
func (l *List[T]) AddAll(elems []T) bool {
	for _, v := range elems {
		if l.Add(v) == LandedFront {
			return false
		}
	}
	return true
}

// ContainsAll counts how many elements of elems are found in the list and
// reports whether the count equals len(elems). This is a size-matching
// heuristic, not multiset containment: duplicates in elems each count as
// found when a single matching element exists.
func (l *List[T]) ContainsAll(elems []T) bool {
	count := 0
	for _, v := range elems {
		if l.Contains(v) {
			count++
		}
	}
	return count == len(elems)
}

// RemoveAll deletes every element also present in elems and reports
// whether anything was removed.
func (l *List[T]) RemoveAll(elems []T) bool {
	changed := false
	for i := 0; i < l.size; i++ {
		if l.memberOf(elems, l.sorted[i]) {
			l.removeAt(i)
			i-- // re-examine the element shifted into this slot
			changed = true
		}
	}
	return changed
}

// RetainAll deletes every element NOT present in elems and reports
// whether anything was removed.
func (l *List[T]) RetainAll(elems []T) bool {
	changed := false
	for i := 0; i < l.size; i++ {
		if !l.memberOf(elems, l.sorted[i]) {
			l.removeAt(i)
			i--
			changed = true
		}
	}
	return changed
}

// memberOf is a linear membership scan of elems under the list comparator.
func (l *List[T]) memberOf(elems []T, v T) bool {
	for _, e := range elems {
		if l.cmp(e, v) == 0 {
			return true
		}
	}
	return false
}
