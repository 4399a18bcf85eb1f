// Package life implements Conway's Game of Life as a flat generation model
// with toroidal wrapping.
package life

import (
	"bytes"
	"fmt"

	"voxgen/internal/models"
	"voxgen/pkg/gen"
)

const (
	dead  = 0
	alive = 1
)

var alphabet = []rune("BW")

// Life advances a flat binary grid generation by generation. Fixpoint is
// reached when a step changes nothing (still lifes; oscillators never stop
// on their own, so pair this model with a step limit).
type Life struct {
	x, y int
}

// New validates the model parameters. Life is strictly two-dimensional.
func New(params map[string]string, x, y, z int) (gen.Engine, error) {
	if z != 1 {
		return nil, fmt.Errorf("life: depth must be 1, got %d", z)
	}
	return &Life{x: x, y: y}, nil
}

// Alphabet returns the model's fixed symbol set.
func (l *Life) Alphabet() []rune { return alphabet }

// Run starts one seeded trial. Without an initial state the board is
// randomized from the seed.
func (l *Life) Run(seed int64, steps int, snapshots bool, initial []byte) gen.FrameSource {
	grid := models.NewGrid(l.x, l.y, 1)
	if initial != nil {
		grid.Load(initial)
	} else {
		rng := models.NewRNG(seed)
		cells := grid.Cells()
		for i := range cells {
			cells[i] = byte(rng.IntN(2))
		}
	}

	next := make([]byte, l.x*l.y)
	step := func() bool {
		cur := grid.Cells()
		for y := 0; y < l.y; y++ {
			for x := 0; x < l.x; x++ {
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := grid.Wrap(x+dx, y+dy)
						neighbors += int(cur[ny*l.x+nx])
					}
				}
				idx := y*l.x + x
				on := cur[idx] == alive
				next[idx] = dead
				if (on && (neighbors == 2 || neighbors == 3)) || (!on && neighbors == 3) {
					next[idx] = alive
				}
			}
		}
		if bytes.Equal(cur, next) {
			return false
		}
		copy(cur, next)
		return true
	}
	return models.NewSource(grid, alphabet, steps, snapshots, step)
}

func init() {
	models.Register("life", New)
}
