// Package render turns symbol-index cell arrays into RGBA rasters, either as
// a flat 2D grid or as an isometric projection of a 3D volume.
package render

import (
	"image"

	"voxgen/pkg/palette"
)

// Flat renders a single-layer cell array into an RGBA image, one scale×scale
// block per cell. Cell values index into colors; out-of-range values clamp to
// the last entry, and an empty color table renders transparent black.
func Flat(cells []byte, x, y int, colors []palette.Color, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, x*scale, y*scale))
	if len(colors) == 0 {
		return img
	}

	last := len(colors) - 1
	for cy := 0; cy < y; cy++ {
		for cx := 0; cx < x; cx++ {
			idx := int(cells[cy*x+cx])
			if idx > last {
				idx = last
			}
			fillRect(img, cx*scale, cy*scale, scale, scale, colors[idx])
		}
	}
	return img
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c palette.Color) {
	for yy := y0; yy < y0+h; yy++ {
		base := img.PixOffset(x0, yy)
		for xx := 0; xx < w; xx++ {
			o := base + xx*4
			img.Pix[o+0] = c.R
			img.Pix[o+1] = c.G
			img.Pix[o+2] = c.B
			img.Pix[o+3] = c.A
		}
	}
}
