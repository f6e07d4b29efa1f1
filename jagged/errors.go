// SPDX-License-Identifier: MIT
// Package jagged: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the jagged
// package. Public methods return these sentinels wrapped with method context,
// and tests MUST check them via errors.Is. No method panics on user input.
//
// Two kinds only: index errors on access, layout errors on raw construction. A nil *Array reads as an empty array, so it reports
// ErrIndexOutOfBounds like any other empty instance.

package jagged

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "jagged: ..." for consistency and easy
// grepping. Public methods wrap with "Array.<Method>(args): %w"; validators
// wrap with the violated rule. Callers match with errors.Is.

var (
	// ErrIndexOutOfBounds indicates that a row index or an in-row index is
	// outside valid bounds. Never clamped, never wrapped around.
	ErrIndexOutOfBounds = errors.New("jagged: index out of bounds")

	// ErrInvalidLayout indicates that a caller-supplied buffer/offsets pair
	// violates the layout invariants. Reachable only through FromRawParts.
	ErrInvalidLayout = errors.New("jagged: invalid layout")
)

// ---------- error context tags ----------

const (
	ctxRow       = "Row"
	ctxRowLen    = "RowLen"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxPtr       = "Ptr"
	ctxSpan      = "Span"
	ctxAppendRow = "AppendRow"
	ctxSplitAt   = "SplitAt"
	ctxRawParts  = "FromRawParts"
)

// rowErrorf wraps err with a uniform Array context for single-index methods.
func rowErrorf(method string, i int, err error) error {
	return fmt.Errorf("Array.%s(%d): %w", method, i, err)
}

// cellErrorf wraps err with a uniform Array context for (row, col) methods.
func cellErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Array.%s(%d,%d): %w", method, i, j, err)
}
