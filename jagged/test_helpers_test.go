// SPDX-License-Identifier: MIT
// Package jagged_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the jagged tests.

package jagged_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/flatrows/jagged"
	"github.com/stretchr/testify/require"
)

// scenarioRows is the canonical fixture [[1,2,3], [], [4]].
func scenarioRows() [][]int {
	return [][]int{{1, 2, 3}, {}, {4}}
}

// RandomRows RETURNS n rows of random length in [0, maxLen] filled by seed.
// Roughly one row in four is empty.
func RandomRows(n, maxLen int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		l := rng.Intn(maxLen + 1)
		if rng.Intn(4) == 0 {
			l = 0
		}
		rows[i] = make([]int, l)
		for j = 0; j < l; j++ {
			rows[i][j] = rng.Int()
		}
	}

	return rows
}

// MustRow READS row i or fails the test.
func MustRow[T any](t *testing.T, a *jagged.Array[T], i int) []T {
	t.Helper()
	row, err := a.Row(i)
	require.NoError(t, err, "Row(%d)", i)

	return row
}

// MustAt READS a[i,j] or fails the test.
func MustAt[T any](t *testing.T, a *jagged.Array[T], i, j int) T {
	t.Helper()
	v, err := a.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareRows ASSERTS that a holds exactly want, row by row, via both Row and At.
func CompareRows(t *testing.T, want [][]int, a *jagged.Array[int]) {
	t.Helper()
	require.Equal(t, len(want), a.Rows(), "Rows")
	var i, j int
	for i = range want {
		row := MustRow(t, a, i)
		require.Len(t, row, len(want[i]), "row %d length", i)
		for j = range want[i] {
			require.Equal(t, want[i][j], row[j], "row %d col %d", i, j)
			require.Equal(t, want[i][j], MustAt(t, a, i, j), "At(%d,%d)", i, j)
		}
	}
}
