package gen

import (
	"fmt"

	"voxgen/pkg/palette"
)

// mapInitial converts an externally supplied color grid into the engine's
// flat symbol-index representation. The grid is flattened x-fastest, then y,
// then z, matching Frame.Cells layout.
//
// The reverse lookup restricts the palette to symbols of the engine alphabet.
// When two symbols share one color, the symbol with the greatest code point
// wins (Palette.Invert visits symbols in ascending order). Colors that exist
// in the palette under a symbol outside the alphabet report
// ErrSymbolNotInAlphabet; colors with no palette entry at all report
// ErrColorNotRecognized.
func mapInitial(grid [][][]palette.Color, pal palette.Palette, alphabet []rune) ([]byte, error) {
	index := make(map[rune]int, len(alphabet))
	for i, sym := range alphabet {
		index[sym] = i
	}

	rev := pal.Invert()
	cells := make([]byte, 0, len(grid)*len(grid[0])*len(grid[0][0]))
	for z, plane := range grid {
		for y, row := range plane {
			for x, c := range row {
				sym, ok := rev[c]
				if !ok {
					return nil, fmt.Errorf("%w: %v at (%d,%d,%d)", ErrColorNotRecognized, c, x, y, z)
				}
				i, ok := index[sym]
				if !ok {
					return nil, fmt.Errorf("%w: %q at (%d,%d,%d)", ErrSymbolNotInAlphabet, sym, x, y, z)
				}
				cells = append(cells, byte(i))
			}
		}
	}
	return cells, nil
}

// legendColors maps a frame's legend through the palette into a parallel
// color array.
func legendColors(legend []rune, pal palette.Palette) ([]palette.Color, error) {
	colors := make([]palette.Color, len(legend))
	for i, sym := range legend {
		c, ok := pal[sym]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnmappedSymbol, sym)
		}
		colors[i] = c
	}
	return colors, nil
}
