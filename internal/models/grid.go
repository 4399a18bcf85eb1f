package models

// Grid stores a 3D volume of byte-sized cell values, x fastest, then y,
// then z.
type Grid struct {
	X, Y, Z int
	data    []byte
}

// NewGrid allocates a grid with the given dimensions, clamped to at least 1.
func NewGrid(x, y, z int) *Grid {
	if x <= 0 {
		x = 1
	}
	if y <= 0 {
		y = 1
	}
	if z <= 0 {
		z = 1
	}
	return &Grid{X: x, Y: y, Z: z, data: make([]byte, x*y*z)}
}

// Cells exposes the backing slice so engines can read/write values directly.
func (g *Grid) Cells() []byte { return g.data }

// Index returns the linear slice index for coordinates (x, y, z).
func (g *Grid) Index(x, y, z int) int { return (z*g.Y+y)*g.X + x }

// Wrap applies toroidal wrapping to the provided plane coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.X + g.X) % g.X
	y = (y%g.Y + g.Y) % g.Y
	return x, y
}

// Load copies a flat initial state into the grid. A nil state clears it.
func (g *Grid) Load(state []byte) {
	if state == nil {
		g.Clear()
		return
	}
	copy(g.data, state)
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
