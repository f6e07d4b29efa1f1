// SPDX-License-Identifier: MIT

// Package jagged - Builder: append-only incremental construction.
//
// Purpose:
//   - Assemble rows one at a time when they are not available as [][]T.
//   - Keep the Array itself shape-immutable: growth happens only here,
//     and Build hands the storage over to a fresh Array.

package jagged

import "iter"

// Builder accumulates rows into a flat buffer. The zero value is ready to use.
// A Builder is not safe for concurrent use.
type Builder[T any] struct {
	data    []T
	offsets []int
	opts    Options
}

// NewBuilder returns a Builder with storage reserved per opts.
func NewBuilder[T any](opts ...Option) *Builder[T] {
	b := &Builder[T]{opts: gatherOptions(opts...)}
	b.Reset()

	return b
}

// Reset discards accumulated rows and re-reserves the configured capacity.
// Arrays built earlier are unaffected.
func (b *Builder[T]) Reset() {
	b.data = make([]T, 0, b.opts.elemCap)
	b.offsets = make([]int, 1, b.opts.rowCap+1)
}

// lazyInit makes the zero Builder usable.
func (b *Builder[T]) lazyInit() {
	if len(b.offsets) == 0 {
		b.Reset()
	}
}

// Push appends one row holding a copy of elems. Push() with no arguments
// appends an empty row.
func (b *Builder[T]) Push(elems ...T) {
	b.lazyInit()
	b.data = append(b.data, elems...)
	b.offsets = append(b.offsets, len(b.data))
}

// Extend appends each of rows in order.
func (b *Builder[T]) Extend(rows ...[]T) {
	for _, r := range rows {
		b.Push(r...)
	}
}

// Rows returns the number of rows pushed since the last Build or Reset.
func (b *Builder[T]) Rows() int {
	if len(b.offsets) == 0 {
		return 0
	}

	return len(b.offsets) - 1
}

// Len returns the number of elements pushed since the last Build or Reset.
func (b *Builder[T]) Len() int { return len(b.data) }

// Build returns an Array over the accumulated rows and resets the Builder.
// The Array owns the storage; further pushes start a new buffer.
//
// Complexity:
//   - Time O(1) beyond the Reset allocation.
func (b *Builder[T]) Build() *Array[T] {
	b.lazyInit()
	arr := &Array[T]{
		data:    b.data[:len(b.data):len(b.data)],
		offsets: b.offsets[:len(b.offsets):len(b.offsets)],
	}
	b.Reset()

	return arr
}

// FromSeq builds an Array from a lazily produced sequence of rows.
// Each yielded row is copied, so seq may reuse its slice between iterations.
// Use WithElemCapacity / WithRowCapacity when the totals are known.
func FromSeq[T any](seq iter.Seq[[]T], opts ...Option) *Array[T] {
	b := NewBuilder[T](opts...)
	for row := range seq {
		b.Push(row...)
	}

	return b.Build()
}
