package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxgen/pkg/palette"
)

var (
	testBlack = palette.Color{R: 0, G: 0, B: 0, A: 255}
	testWhite = palette.Color{R: 255, G: 255, B: 255, A: 255}
	testRed   = palette.Color{R: 255, G: 0, B: 0, A: 255}
)

func testPalette() palette.Palette {
	return palette.Palette{'B': testBlack, 'W': testWhite, 'R': testRed}
}

// flatGrid wraps a single-layer color grid into the [z][y][x] shape.
func flatGrid(rows ...[]palette.Color) [][][]palette.Color {
	return [][][]palette.Color{rows}
}

// TestMapInitial_Basic verifies the element-wise translation of colors into
// alphabet indices, x fastest.
func TestMapInitial_Basic(t *testing.T) {
	grid := flatGrid(
		[]palette.Color{testBlack, testWhite},
		[]palette.Color{testWhite, testBlack},
	)

	cells, err := mapInitial(grid, testPalette(), []rune{'B', 'W'})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 1, 0}, cells)
}

// TestMapInitial_ColorNotRecognized verifies the error for a grid color with
// no palette entry.
func TestMapInitial_ColorNotRecognized(t *testing.T) {
	grid := flatGrid([]palette.Color{{R: 7, G: 7, B: 7, A: 7}})

	_, err := mapInitial(grid, testPalette(), []rune{'B', 'W'})
	assert.ErrorIs(t, err, ErrColorNotRecognized)
}

// TestMapInitial_SymbolNotInAlphabet verifies the error for a color whose
// palette symbol is outside the engine's alphabet.
func TestMapInitial_SymbolNotInAlphabet(t *testing.T) {
	grid := flatGrid([]palette.Color{testRed})

	_, err := mapInitial(grid, testPalette(), []rune{'B', 'W'})
	assert.ErrorIs(t, err, ErrSymbolNotInAlphabet)
}

// TestMapInitial_SharedColorTieBreak pins the reverse-lookup policy end to
// end: with 'B' and 'D' sharing one color, the greater symbol 'D' wins.
func TestMapInitial_SharedColorTieBreak(t *testing.T) {
	pal := palette.Palette{'B': testBlack, 'D': testBlack, 'W': testWhite}
	grid := flatGrid([]palette.Color{testBlack})

	cells, err := mapInitial(grid, pal, []rune{'B', 'D', 'W'})
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, cells, "shared color must resolve to 'D'")
}

// TestRoundTrip_RawColors verifies that expanding cells through legend
// colors and re-deriving indices via the reverse lookup reproduces the
// original array, given an injective palette.
func TestRoundTrip_RawColors(t *testing.T) {
	legend := []rune{'B', 'W', 'R'}
	pal := testPalette()
	cells := []byte{0, 2, 1, 1, 0, 2}

	colors, err := legendColors(legend, pal)
	require.NoError(t, err)
	expanded := expandColors(cells, colors)

	grid := flatGrid(expanded)
	back, err := mapInitial(grid, pal, legend)
	require.NoError(t, err)
	assert.Equal(t, cells, back)
}

// TestLegendColors_UnmappedSymbol verifies the error for a legend symbol
// absent from the palette.
func TestLegendColors_UnmappedSymbol(t *testing.T) {
	_, err := legendColors([]rune{'B', '?'}, testPalette())
	assert.ErrorIs(t, err, ErrUnmappedSymbol)
}
