// Package noise implements a one-shot model that fills the grid with
// uniformly random symbols drawn from a configurable alphabet.
package noise

import (
	"fmt"

	"voxgen/internal/models"
	"voxgen/pkg/gen"
)

// Noise randomizes every cell once and then reaches fixpoint.
type Noise struct {
	x, y, z  int
	alphabet []rune
}

// New validates the model parameters. The optional "symbols" parameter sets
// the alphabet to draw from; it defaults to "BW" and must not repeat symbols.
func New(params map[string]string, x, y, z int) (gen.Engine, error) {
	alphabet := []rune("BW")
	if v, ok := params["symbols"]; ok {
		alphabet = []rune(v)
		if len(alphabet) < 2 {
			return nil, fmt.Errorf("noise: need at least two symbols, got %q", v)
		}
		seen := map[rune]bool{}
		for _, sym := range alphabet {
			if seen[sym] {
				return nil, fmt.Errorf("noise: repeated symbol %q", sym)
			}
			seen[sym] = true
		}
	}
	return &Noise{x: x, y: y, z: z, alphabet: alphabet}, nil
}

// Alphabet returns the configured symbol set.
func (n *Noise) Alphabet() []rune { return n.alphabet }

// Run starts one seeded trial. Any supplied initial state is overwritten by
// the fill.
func (n *Noise) Run(seed int64, steps int, snapshots bool, initial []byte) gen.FrameSource {
	grid := models.NewGrid(n.x, n.y, n.z)
	grid.Load(initial)
	rng := models.NewRNG(seed)

	filled := false
	step := func() bool {
		if filled {
			return false
		}
		cells := grid.Cells()
		for i := range cells {
			cells[i] = byte(rng.IntN(len(n.alphabet)))
		}
		filled = true
		return true
	}
	return models.NewSource(grid, n.alphabet, steps, snapshots, step)
}

func init() {
	models.Register("noise", New)
}
