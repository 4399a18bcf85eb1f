// Package growth implements the classic accretion model: white cells grow
// one cell per step from seed points into the surrounding black volume.
package growth

import (
	"fmt"
	"strconv"

	"voxgen/internal/models"
	"voxgen/pkg/gen"
)

const (
	black = 0
	white = 1
)

var alphabet = []rune("BW")

// Growth grows white regions cell by cell until no black cell touches a
// white one. Works in both flat and volumetric grids.
type Growth struct {
	x, y, z int
	points  int
}

// New validates the model parameters. The optional "points" parameter sets
// how many white seed cells start the growth when no initial state is given.
func New(params map[string]string, x, y, z int) (gen.Engine, error) {
	points := 1
	if v, ok := params["points"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("growth: invalid points %q", v)
		}
		points = parsed
	}
	return &Growth{x: x, y: y, z: z, points: points}, nil
}

// Alphabet returns the model's fixed symbol set.
func (g *Growth) Alphabet() []rune { return alphabet }

// Run starts one seeded trial.
func (g *Growth) Run(seed int64, steps int, snapshots bool, initial []byte) gen.FrameSource {
	grid := models.NewGrid(g.x, g.y, g.z)
	rng := models.NewRNG(seed)

	if initial != nil {
		grid.Load(initial)
	} else if g.points == 1 {
		grid.Cells()[grid.Index(g.x/2, g.y/2, g.z/2)] = white
	} else {
		for i := 0; i < g.points; i++ {
			grid.Cells()[grid.Index(rng.IntN(g.x), rng.IntN(g.y), rng.IntN(g.z))] = white
		}
	}

	step := func() bool {
		candidates := frontier(grid)
		if len(candidates) == 0 {
			return false
		}
		grid.Cells()[candidates[rng.IntN(len(candidates))]] = white
		return true
	}
	return models.NewSource(grid, alphabet, steps, snapshots, step)
}

// frontier collects the indices of black cells orthogonally adjacent to a
// white cell.
func frontier(g *models.Grid) []int {
	cells := g.Cells()
	var out []int
	for z := 0; z < g.Z; z++ {
		for y := 0; y < g.Y; y++ {
			for x := 0; x < g.X; x++ {
				i := g.Index(x, y, z)
				if cells[i] != black {
					continue
				}
				if touchesWhite(g, cells, x, y, z) {
					out = append(out, i)
				}
			}
		}
	}
	return out
}

func touchesWhite(g *models.Grid, cells []byte, x, y, z int) bool {
	if x > 0 && cells[g.Index(x-1, y, z)] == white {
		return true
	}
	if x < g.X-1 && cells[g.Index(x+1, y, z)] == white {
		return true
	}
	if y > 0 && cells[g.Index(x, y-1, z)] == white {
		return true
	}
	if y < g.Y-1 && cells[g.Index(x, y+1, z)] == white {
		return true
	}
	if z > 0 && cells[g.Index(x, y, z-1)] == white {
		return true
	}
	if z < g.Z-1 && cells[g.Index(x, y, z+1)] == white {
		return true
	}
	return false
}

func init() {
	models.Register("growth", New)
}
