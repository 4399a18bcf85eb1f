package palette_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voxgen/pkg/palette"
)

// TestResolve_OverrideWins verifies that an override replaces the base entry
// while the base table itself stays untouched.
func TestResolve_OverrideWins(t *testing.T) {
	base := palette.Palette{'A': {255, 0, 0, 255}}
	overrides := []palette.Override{{Symbol: 'A', Color: palette.Color{0, 255, 0, 255}}}

	merged := palette.Resolve(base, overrides)

	assert.Equal(t, palette.Color{0, 255, 0, 255}, merged['A'], "override must win")
	assert.Equal(t, palette.Color{255, 0, 0, 255}, base['A'], "base must not be mutated")
}

// TestResolve_LastWriteWins verifies sequence-order application: the later
// override for the same symbol replaces the earlier one.
func TestResolve_LastWriteWins(t *testing.T) {
	base := palette.Palette{'A': {1, 1, 1, 255}}
	overrides := []palette.Override{
		{Symbol: 'A', Color: palette.Color{2, 2, 2, 255}},
		{Symbol: 'A', Color: palette.Color{3, 3, 3, 255}},
	}

	merged := palette.Resolve(base, overrides)
	assert.Equal(t, palette.Color{3, 3, 3, 255}, merged['A'])
}

// TestResolve_AddsUnknownSymbols verifies that overrides for symbols absent
// from the base table are simply added, not rejected.
func TestResolve_AddsUnknownSymbols(t *testing.T) {
	base := palette.Palette{'A': {1, 1, 1, 255}}
	merged := palette.Resolve(base, []palette.Override{{Symbol: 'Z', Color: palette.Color{9, 9, 9, 255}}})

	assert.Len(t, merged, 2)
	assert.Equal(t, palette.Color{9, 9, 9, 255}, merged['Z'])
}

// TestResolve_Idempotent verifies that identical inputs produce identical
// palettes on repeated calls.
func TestResolve_Idempotent(t *testing.T) {
	base := palette.Default()
	overrides := []palette.Override{{Symbol: 'W', Color: palette.Color{10, 20, 30, 40}}}

	first := palette.Resolve(base, overrides)
	second := palette.Resolve(base, overrides)
	assert.Equal(t, first, second)
}

// TestInvert_SharedColorTieBreak pins the documented ambiguity policy: when
// two symbols share one color, the reverse table is built in ascending
// code-point order, so the greatest symbol claims the entry.
func TestInvert_SharedColorTieBreak(t *testing.T) {
	shared := palette.Color{50, 60, 70, 255}
	p := palette.Palette{'A': shared, 'C': shared, 'B': {1, 2, 3, 255}}

	rev := p.Invert()
	assert.Equal(t, 'C', rev[shared])
	assert.Equal(t, 'B', rev[palette.Color{1, 2, 3, 255}])
}

// TestDefault_CoversStandardAlphabet spot-checks the embedded table.
func TestDefault_CoversStandardAlphabet(t *testing.T) {
	def := palette.Default()
	for _, sym := range "BIPENDAWROYGUSKF" {
		assert.Contains(t, def, sym, "default palette must map %q", sym)
	}
	assert.Equal(t, palette.Color{0, 0, 0, 255}, def['B'])
	assert.Equal(t, palette.Color{255, 241, 232, 255}, def['W'])
}
