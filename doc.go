// Package flatrows is home to cache-friendly flat containers that replace
// nested slice idioms with a single contiguous allocation.
//
// 🚀 What is flatrows?
//
//	A small, pure-Go library built around one idea: keep variable-length
//	rows in one buffer and address them through an offset index.
//
// ✨ Why choose flatrows?
//
//   - One allocation for all elements instead of one per row
//   - Safe surface: every accessor returns errors instead of panicking
//   - Fixed shape, mutable values: misuse is not expressible in the API
//   - Disjoint rows: parallel per-row work without locks
//
// Under the hood:
//
//	jagged/ - Array (flat buffer + offsets), Builder, iterators, validators
//
// Quick ASCII example:
//
//	rows    [a b] [] [c d e]
//	data    a b c d e
//	offsets 0 2 2 5
//
//	go get github.com/katalvlaran/flatrows/jagged
package flatrows
