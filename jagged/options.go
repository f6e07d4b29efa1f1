// SPDX-License-Identifier: MIT

// Package jagged: functional configuration for incremental construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options only tune preallocation. They never change the resulting shape or
// values, so two builds of the same rows are Equal regardless of options.
package jagged

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRowCapacity is the initial number of rows reserved by a Builder.
	DefaultRowCapacity = 0

	// DefaultElemCapacity is the initial number of elements reserved by a Builder.
	DefaultElemCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRowCapacityNegative  = "jagged: WithRowCapacity: n must be non-negative"
	panicElemCapacityNegative = "jagged: WithElemCapacity: n must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	rowCap  int // DefaultRowCapacity
	elemCap int // DefaultElemCapacity
}

// WithRowCapacity reserves space for n rows up front.
//
// Panics if n < 0.
func WithRowCapacity(n int) Option {
	if n < 0 {
		panic(panicRowCapacityNegative)
	}

	return func(o *Options) { o.rowCap = n }
}

// WithElemCapacity reserves space for n elements (all rows together) up front.
// When the total is known in advance this makes construction a single
// allocation.
//
// Panics if n < 0.
func WithElemCapacity(n int) Option {
	if n < 0 {
		panic(panicElemCapacityNegative)
	}

	return func(o *Options) { o.elemCap = n }
}

// defaultOptions returns Options filled with the documented defaults.
func defaultOptions() Options {
	return Options{
		rowCap:  DefaultRowCapacity,
		elemCap: DefaultElemCapacity,
	}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
