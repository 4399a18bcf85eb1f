// Package palette maps engine symbols to concrete RGBA colors.
//
// A Palette is built once per orchestration call by merging the embedded
// default table with configuration-supplied overrides, and is read-only
// afterwards.
package palette

import "sort"

// Color is a four-channel 8-bit RGBA value.
type Color struct {
	R, G, B, A uint8
}

// Override assigns a color to a symbol on top of a base palette.
type Override struct {
	Symbol rune
	Color  Color
}

// Palette maps a symbol to its display color.
type Palette map[rune]Color

// Resolve returns a copy of base with overrides applied in sequence order.
// Later overrides for the same symbol replace earlier ones; symbols absent
// from base are added. The base table is never mutated.
func Resolve(base Palette, overrides []Override) Palette {
	merged := make(Palette, len(base)+len(overrides))
	for sym, c := range base {
		merged[sym] = c
	}
	for _, ov := range overrides {
		merged[ov.Symbol] = ov.Color
	}
	return merged
}

// Symbols returns the palette's symbols in ascending code-point order.
func (p Palette) Symbols() []rune {
	syms := make([]rune, 0, len(p))
	for sym := range p {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Invert builds the color→symbol reverse table. Symbols are visited in
// ascending code-point order, so when two symbols share a color the greatest
// symbol wins the entry.
func (p Palette) Invert() map[Color]rune {
	rev := make(map[Color]rune, len(p))
	for _, sym := range p.Symbols() {
		rev[p[sym]] = sym
	}
	return rev
}

// Default returns the embedded base table: one entry per symbol of the
// standard alphabet, PICO-8 derived colors.
func Default() Palette {
	return Palette{
		'B': {0, 0, 0, 255},       // black
		'I': {29, 43, 83, 255},    // dark blue
		'P': {126, 37, 83, 255},   // dark purple
		'E': {0, 135, 81, 255},    // dark green
		'N': {171, 82, 54, 255},   // brown
		'D': {95, 87, 79, 255},    // dark grey
		'A': {194, 195, 199, 255}, // light grey
		'W': {255, 241, 232, 255}, // white
		'R': {255, 0, 77, 255},    // red
		'O': {255, 163, 0, 255},   // orange
		'Y': {255, 236, 39, 255},  // yellow
		'G': {0, 228, 54, 255},    // green
		'U': {41, 173, 255, 255},  // blue
		'S': {131, 118, 156, 255}, // lavender
		'K': {255, 119, 168, 255}, // pink
		'F': {255, 204, 170, 255}, // light peach
	}
}
