// Package jagged_test provides benchmarks comparing Array with the [][]T idiom.
package jagged_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/flatrows/jagged"
)

// benchSizes are the row counts to benchmark.
var benchSizes = []int{1 << 10, 1 << 14}

// sinks to defeat dead-code elimination
var (
	sinkA *jagged.Array[int]
	sinkI int
)

func BenchmarkFromRows(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		rows := RandomRows(n, 16, 1337)
		b.Run(fmt.Sprintf("rows=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkA = jagged.FromRows(rows)
			}
		})
	}
}

func BenchmarkSumRows(b *testing.B) {
	for _, n := range benchSizes {
		rows := RandomRows(n, 16, 4242)
		a := jagged.FromRows(rows)

		b.Run(fmt.Sprintf("flat/rows=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s := 0
				for row := range a.Values() {
					for _, v := range row {
						s += v
					}
				}
				sinkI = s
			}
		})

		b.Run(fmt.Sprintf("nested/rows=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s := 0
				for _, row := range rows {
					for _, v := range row {
						s += v
					}
				}
				sinkI = s
			}
		})
	}
}

func BenchmarkAt(b *testing.B) {
	a := jagged.FromRows(RandomRows(1<<12, 16, 7))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := i % a.Rows()
		n, _ := a.RowLen(r)
		if n == 0 {
			continue
		}
		v, _ := a.At(r, i%n)
		sinkI += v
	}
}
