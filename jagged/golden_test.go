package jagged_test

import (
	"testing"

	"github.com/katalvlaran/flatrows/jagged"
	"github.com/sebdah/goldie/v2"
)

// TestStringGolden snapshots the diagnostic dump of a mixed-shape array.
// Regenerate with: go test ./jagged -run TestStringGolden -update
func TestStringGolden(t *testing.T) {
	b := jagged.NewBuilder[string]()
	b.Push("alpha", "beta")
	b.Push()
	b.Push("gamma", "delta", "epsilon")
	b.Push("zeta")
	a := b.Build()

	g := goldie.New(t)
	g.Assert(t, "string_dump", []byte(a.String()))
}
