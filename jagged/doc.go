// Package jagged provides Array, a sequence of variable-length rows stored
// in one contiguous buffer plus an offset index.
//
// 🚀 What is a jagged array?
//
//	A [][]T allocates every inner slice separately, so walking the rows
//	chases pointers across the heap. Array keeps all elements back-to-back
//	and addresses row i by the range [offsets[i], offsets[i+1]):
//
//	  rows:    [1 2 3] [] [4]
//	  data:    1 2 3 4
//	  offsets: 0 3 3 4
//
// ✨ Key features:
//   - FromRows: one-shot construction with a single data allocation
//   - FromRawParts: zero-copy adoption of flat data, validated by ValidateLayout
//   - Builder / FromSeq: incremental construction, frozen by Build
//   - Row / At / RowLen / Span: O(1), bounds-checked, never panic
//   - Set / Ptr / row views: value mutation; the shape never changes
//   - All / Values: restartable iter.Seq iterators over row views
//   - SplitAt / ForEachRowParallel: disjoint rows handled independently
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/flatrows/jagged"
//
//	a := jagged.FromRows([][]int{{1, 2, 3}, {}, {4}})
//	row, err := a.Row(0)    // [1 2 3], a view into the buffer
//	err = a.Set(0, 1, 99)   // row 0 is now [1 99 3]
//	_, err = a.Row(3)       // errors.Is(err, jagged.ErrIndexOutOfBounds)
//
// Shape rules:
//
//	There is no way to insert, remove, grow or shrink a row of an existing
//	Array. Build a new one (FromRows, Builder) with the new content instead.
//	Row views have capacity == length, so append on a view copies.
//
// Concurrency:
//
//	Any number of readers may share an Array. Writers to different rows
//	never touch the same memory and need no synchronization between them;
//	writers to the same element follow the usual Go memory model rules.
//
// Errors:
//   - ErrIndexOutOfBounds: a row index or in-row index outside bounds.
//   - ErrInvalidLayout: FromRawParts received offsets that do not partition the buffer.
package jagged
