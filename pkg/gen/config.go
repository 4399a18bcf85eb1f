package gen

import (
	"fmt"
	"image"

	"voxgen/pkg/palette"
)

// Visualizer receives each rendered raster frame, typically a live debug
// view. Implementations must not retain the image past the call.
type Visualizer interface {
	Show(img *image.RGBA)
}

// Config is the immutable description of one orchestration call. Construct
// it, hand it to Run, and do not mutate it afterwards.
type Config struct {
	// Model selects and parameterizes the generation engine.
	Model ModelDesc

	// Grid dimensions, all at least 1. Depth 1 selects a flat 2D model.
	Width, Height, Depth int

	// Runs is the number of seeded trials to perform.
	Runs int
	// Seeds optionally fixes the seed per run index. It may be shorter than
	// Runs; missing entries fall back to a fresh random seed.
	Seeds []int64

	// Steps caps engine iterations per run; non-positive means unlimited.
	Steps int
	// Snapshots emits every intermediate state instead of only the final one.
	Snapshots bool

	// Artifact flags, independent of each other.
	Image     bool
	Voxels    bool
	RawColors bool

	// PixelScale is the raster magnification; values below 1 render at 1.
	PixelScale int
	// Isometric renders Z>1 frames as an isometric projection instead of
	// suppressing the 2D artifact.
	Isometric bool

	// Initial optionally seeds the engine with a color grid indexed
	// [z][y][x]; dimensions must match Width, Height, Depth exactly.
	Initial [][][]palette.Color

	// Overrides is applied over the default palette in order,
	// last write per symbol wins.
	Overrides []palette.Override

	// Viz optionally receives each rendered raster frame.
	Viz Visualizer
}

// Validate checks the cross-cutting configuration invariants that must hold
// before any engine work starts.
func (c *Config) Validate() error {
	if c.Width < 1 || c.Height < 1 || c.Depth < 1 {
		return fmt.Errorf("%w: dimensions %dx%dx%d", ErrBadConfig, c.Width, c.Height, c.Depth)
	}
	if c.Runs < 0 {
		return fmt.Errorf("%w: negative run count %d", ErrBadConfig, c.Runs)
	}
	if c.Model.Name == "" {
		return fmt.Errorf("%w: empty model name", ErrBadConfig)
	}
	if c.Initial != nil {
		if err := c.checkInitialDims(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) checkInitialDims() error {
	if len(c.Initial) != c.Depth {
		return fmt.Errorf("%w: got depth %d, want %d", ErrDimensionMismatch, len(c.Initial), c.Depth)
	}
	for z, plane := range c.Initial {
		if len(plane) != c.Height {
			return fmt.Errorf("%w: plane %d has height %d, want %d", ErrDimensionMismatch, z, len(plane), c.Height)
		}
		for y, row := range plane {
			if len(row) != c.Width {
				return fmt.Errorf("%w: row (%d,%d) has width %d, want %d", ErrDimensionMismatch, z, y, len(row), c.Width)
			}
		}
	}
	return nil
}

func (c *Config) pixelScale() int {
	if c.PixelScale < 1 {
		return 1
	}
	return c.PixelScale
}
