// SPDX-License-Identifier: MIT

// Package jagged - Array storage (flat buffer + offsets) & safe accessors.
//
// Purpose:
//   - Replace [][]T with one contiguous buffer and an offset index.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Allow value mutation (Set/Ptr/row views) while keeping the shape fixed.
//
// Complexity quicksheet:
//   - FromRows: O(total) one allocation for data, one for offsets.
//   - Row/RowLen/At/Set/Ptr/Span: O(1); Clone: O(total + rows); String: O(total).

package jagged

import (
	"fmt"
	"slices"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Array is a sequence of variable-length rows stored back-to-back in a
// single buffer.
//   - data holds every element of every row in row order.
//   - offsets has rows+1 entries; row i occupies data[offsets[i]:offsets[i+1]].
//
// The shape (row count and per-row lengths) is fixed once built; values are
// mutable. The zero value is an empty array ready to use.
type Array[T any] struct {
	data    []T   // contiguous storage, len == offsets[rows]
	offsets []int // row boundaries, offsets[0] == 0, non-decreasing; nil means [0]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array[int])(nil)

// FromRows builds an Array holding a copy of rows.
// MAIN DESCRIPTION:
//   - Always-valid constructor: offsets are derived from row lengths, never supplied.
//
// Implementation:
//   - Stage 1: sum row lengths to size the buffer exactly.
//   - Stage 2: append each row and record offsets[i+1] = offsets[i] + len(rows[i]).
//
// Behavior highlights:
//   - Zero-length rows are kept as empty rows.
//   - An empty (or nil) rows yields Rows()==0, Len()==0.
//   - The result never aliases the caller's slices.
//
// Complexity:
//   - Time O(rows + total), Space O(rows + total), exactly two allocations.
func FromRows[T any](rows [][]T) *Array[T] {
	var total int
	for _, r := range rows {
		total += len(r)
	}

	data := make([]T, 0, total)
	offsets := make([]int, 1, len(rows)+1) // offsets[0] == 0
	for _, r := range rows {
		data = append(data, r...)
		offsets = append(offsets, len(data))
	}

	return &Array[T]{data: data, offsets: offsets}
}

// FromRawParts adopts an externally assembled buffer and offset index.
// MAIN DESCRIPTION:
//   - Zero-copy entry point for callers that already hold flat data.
//
// Implementation:
//   - Stage 1: ValidateLayout(len(data), offsets); reject on any violation.
//   - Stage 2: adopt data as-is (capacity clipped), copy offsets.
//
// Behavior highlights:
//   - data is shared, not copied: later writes by the caller are visible
//     through the Array (values only, the length is fixed).
//   - offsets is copied, so the caller cannot alter the shape afterwards.
//
// Errors:
//   - ErrInvalidLayout, wrapped with the violated rule.
//
// Complexity:
//   - Time O(rows), Space O(rows).
func FromRawParts[T any](data []T, offsets []int) (*Array[T], error) {
	if err := ValidateLayout(len(data), offsets); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRawParts, err)
	}

	return &Array[T]{
		data:    data[:len(data):len(data)],
		offsets: slices.Clone(offsets),
	}, nil
}

// Singleton returns a one-row Array that adopts row as its buffer (no copy).
func Singleton[T any](row []T) *Array[T] {
	return &Array[T]{
		data:    row[:len(row):len(row)],
		offsets: []int{0, len(row)},
	}
}

// Rows returns the number of rows. O(1).
func (a *Array[T]) Rows() int {
	if a == nil || len(a.offsets) == 0 {
		return 0
	}

	return len(a.offsets) - 1
}

// Len returns the total number of elements across all rows. O(1).
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}

	return len(a.data)
}

// bounds returns the buffer range [lo, hi) of row i or ErrIndexOutOfBounds.
// Returns the bare sentinel; public methods wrap it with their own context.
func (a *Array[T]) bounds(i int) (lo, hi int, err error) {
	if i < 0 || i >= a.Rows() {
		return 0, 0, ErrIndexOutOfBounds
	}

	return a.offsets[i], a.offsets[i+1], nil
}

// view returns row i as a capacity-clipped slice of the buffer.
// Caller guarantees 0 <= i < Rows().
func (a *Array[T]) view(i int) []T {
	lo, hi := a.offsets[i], a.offsets[i+1]

	return a.data[lo:hi:hi]
}

// Row returns row i as a view into the shared buffer.
// MAIN DESCRIPTION:
//   - No-copy access to one row.
//
// Behavior highlights:
//   - Writes through the returned slice change the Array's values.
//   - The slice capacity equals its length, so append on it reallocates and
//     never reaches into the next row.
//
// Errors:
//   - ErrIndexOutOfBounds when i < 0 or i >= Rows().
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *Array[T]) Row(i int) ([]T, error) {
	if _, _, err := a.bounds(i); err != nil {
		return nil, rowErrorf(ctxRow, i, err)
	}

	return a.view(i), nil
}

// RowLen returns the length of row i.
func (a *Array[T]) RowLen(i int) (int, error) {
	lo, hi, err := a.bounds(i)
	if err != nil {
		return 0, rowErrorf(ctxRowLen, i, err)
	}

	return hi - lo, nil
}

// Span returns the buffer range [start, end) backing row i.
// Ranges of distinct rows never overlap and together cover [0, Len()).
func (a *Array[T]) Span(i int) (start, end int, err error) {
	start, end, err = a.bounds(i)
	if err != nil {
		return 0, 0, rowErrorf(ctxSpan, i, err)
	}

	return start, end, nil
}

// indexOf computes the flat buffer position of (i, j) or returns ErrIndexOutOfBounds.
// Checked against both the row count and the length of row i.
func (a *Array[T]) indexOf(i, j int) (int, error) {
	lo, hi, err := a.bounds(i)
	if err != nil {
		return 0, err
	}
	if j < 0 || j >= hi-lo {
		return 0, ErrIndexOutOfBounds
	}

	return lo + j, nil
}

// At returns element j of row i.
//
// Errors:
//   - ErrIndexOutOfBounds when i is not a valid row or j >= RowLen(i).
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *Array[T]) At(i, j int) (T, error) {
	off, err := a.indexOf(i, j)
	if err != nil {
		var zero T

		return zero, cellErrorf(ctxAt, i, j, err)
	}

	return a.data[off], nil
}

// Set stores v at element j of row i. Offsets are untouched.
func (a *Array[T]) Set(i, j int, v T) error {
	off, err := a.indexOf(i, j)
	if err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}
	a.data[off] = v

	return nil
}

// Ptr returns a pointer to element j of row i for in-place updates.
// The pointer stays valid for the lifetime of the Array; the buffer is never
// reallocated after construction.
func (a *Array[T]) Ptr(i, j int) (*T, error) {
	off, err := a.indexOf(i, j)
	if err != nil {
		return nil, cellErrorf(ctxPtr, i, j, err)
	}

	return &a.data[off], nil
}

// AppendRow appends a copy of row i to dst and returns the extended slice.
func (a *Array[T]) AppendRow(dst []T, i int) ([]T, error) {
	if _, _, err := a.bounds(i); err != nil {
		return dst, rowErrorf(ctxAppendRow, i, err)
	}

	return append(dst, a.view(i)...), nil
}

// Data returns the whole buffer as one capacity-clipped view.
// Element values may be changed through it; its length is the Array's Len.
func (a *Array[T]) Data() []T {
	if a == nil {
		return nil
	}

	return a.data[:len(a.data):len(a.data)]
}

// Offsets returns a copy of the offset index (Rows()+1 entries).
func (a *Array[T]) Offsets() []int {
	if a.Rows() == 0 {
		return []int{0}
	}

	return slices.Clone(a.offsets)
}

// Clone returns a deep copy (new buffer, new offsets).
// MAIN DESCRIPTION:
//   - Produce an independent Array with identical shape and values.
//
// Behavior highlights:
//   - Independence: mutations on either side are not visible on the other.
//
// Complexity:
//   - Time O(rows + total), Space O(rows + total).
func (a *Array[T]) Clone() *Array[T] {
	if a.Rows() == 0 {
		return FromRows[T](nil)
	}

	return &Array[T]{
		data:    slices.Clone(a.data),
		offsets: slices.Clone(a.offsets),
	}
}

// ToRows copies the Array out into independent nested slices.
// Empty rows come back as non-nil empty slices.
func (a *Array[T]) ToRows() [][]T {
	n := a.Rows()
	out := make([][]T, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = append(make([]T, 0, a.offsets[i+1]-a.offsets[i]), a.view(i)...)
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows in index order.
//   - Stage 2: write values with %v into strings.Builder with standard delimiters.
//
// Returns:
//   - string: one line per row, e.g. "[1, 2, 3]\n[]\n[4]\n".
//
// Complexity:
//   - Time O(total), Space O(total) for formatting.
func (a *Array[T]) String() string {
	var b strings.Builder
	var i, j int
	n := a.Rows()
	for i = 0; i < n; i++ {
		b.WriteString(_fmtRowOpen)
		row := a.view(i)
		for j = range row {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%v", row[j])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Equal reports whether a and b have the same shape and the same values.
// A nil *Array equals any empty Array.
func Equal[T comparable](a, b *Array[T]) bool {
	if a.Rows() != b.Rows() || a.Len() != b.Len() {
		return false
	}
	if a.Rows() == 0 {
		return true
	}

	return slices.Equal(a.offsets, b.offsets) && slices.Equal(a.data, b.data)
}
