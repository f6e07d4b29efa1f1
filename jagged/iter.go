// SPDX-License-Identifier: MIT

package jagged

import "iter"

// All returns an iterator over (index, row) pairs in index order.
// Rows are the same capacity-clipped views returned by Row; nothing is copied.
// Each call yields a fresh traversal starting at row 0.
func (a *Array[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		n := a.Rows()
		for i := 0; i < n; i++ {
			if !yield(i, a.view(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the rows in index order.
func (a *Array[T]) Values() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for _, row := range a.All() {
			if !yield(row) {
				return
			}
		}
	}
}
