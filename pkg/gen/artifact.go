package gen

import (
	"image"

	"voxgen/internal/render"
	"voxgen/internal/vox"
	"voxgen/pkg/palette"
)

// Result is the artifact bundle for one frame. Fields are populated
// independently according to the configuration's output flags; a frame with
// no enabled outputs yields an empty bundle.
type Result struct {
	// Run is the trial index the frame belongs to, Seed the seed it used.
	Run  int
	Seed int64

	// Image is the rendered raster, present when image output is enabled and
	// the frame is flat or isometric mode is on.
	Image *image.RGBA
	// Voxels is the encoded voxel object byte stream.
	Voxels []byte
	// Colors is the raw per-cell color expansion.
	Colors []palette.Color
}

// emit applies the artifact decision table to one color-mapped frame. All
// three outputs are independent and may fire together.
func emit(cfg *Config, f Frame, colors []palette.Color) (Result, error) {
	var res Result

	if cfg.Image && (f.Z == 1 || cfg.Isometric) {
		if f.Z == 1 {
			res.Image = render.Flat(f.Cells, f.X, f.Y, colors, cfg.pixelScale())
		} else {
			res.Image = render.Isometric(f.Cells, f.X, f.Y, f.Z, colors, cfg.pixelScale())
		}
		if cfg.Viz != nil {
			cfg.Viz.Show(res.Image)
		}
	}

	if cfg.Voxels {
		b, err := vox.Encode(f.Cells, f.X, f.Y, f.Z, colors)
		if err != nil {
			return Result{}, err
		}
		res.Voxels = b
	}

	if cfg.RawColors {
		res.Colors = expandColors(f.Cells, colors)
	}

	return res, nil
}

// expandColors resolves every cell through the legend colors with no further
// encoding. Out-of-range cell values clamp to the last legend entry.
func expandColors(cells []byte, colors []palette.Color) []palette.Color {
	out := make([]palette.Color, len(cells))
	if len(colors) == 0 {
		return out
	}
	last := len(colors) - 1
	for i, v := range cells {
		idx := int(v)
		if idx > last {
			idx = last
		}
		out[i] = colors[idx]
	}
	return out
}
