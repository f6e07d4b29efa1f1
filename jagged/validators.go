// SPDX-License-Identifier: MIT
// Package: jagged
//
// Purpose:
//   - Provide the single validation gate for externally assembled layouts.
//   - Keep constructors minimal by delegating offset checks here.
//   - Return ErrInvalidLayout wrapped with the violated rule so call sites
//     can wrap again uniformly.
//
// Determinism & Performance:
//   - Pure, deterministic, allocation-free; one pass over offsets.

package jagged

import "fmt"

// validatorErrorf tags ErrInvalidLayout with the rule that failed.
func validatorErrorf(rule string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(rule, args...), ErrInvalidLayout)
}

// ValidateLayout checks that offsets describe a valid partition of a buffer
// holding n elements.
//
// Rules, checked in this order:
//   - offsets is non-empty (rows+1 entries, rows >= 0);
//   - offsets[0] == 0;
//   - offsets is non-decreasing;
//   - offsets[last] == n.
//
// Together these imply that every row maps to an in-bounds, non-overlapping
// range and that the ranges cover [0, n) in order.
//
// Errors: ErrInvalidLayout, wrapped with the rule.
// Complexity: O(len(offsets)).
func ValidateLayout(n int, offsets []int) error {
	if len(offsets) == 0 {
		return validatorErrorf("offsets must hold at least one entry")
	}
	if offsets[0] != 0 {
		return validatorErrorf("offsets[0]=%d, want 0", offsets[0])
	}
	var i int
	for i = 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return validatorErrorf("offsets[%d]=%d < offsets[%d]=%d", i, offsets[i], i-1, offsets[i-1])
		}
	}
	if last := offsets[len(offsets)-1]; last != n {
		return validatorErrorf("offsets[%d]=%d, want buffer length %d", len(offsets)-1, last, n)
	}

	return nil
}
