package render

import (
	"image"

	"voxgen/pkg/palette"
)

// Face shading factors for the isometric block: top is lit, the left and
// right faces fall off.
const (
	shadeTop   = 1.0
	shadeLeft  = 0.6
	shadeRight = 0.8
)

// Isometric projects a 3D cell volume into a 2D RGBA image. Each voxel
// becomes a 2s-wide block (s = scale): a rhombic top face and two side
// faces. Columns are painted far-to-near along the x+y diagonal, bottom-up
// within a column, so nearer geometry overdraws occluded voxels. A zero cell
// value is treated as empty space and skipped.
func Isometric(cells []byte, x, y, z int, colors []palette.Color, scale int) *image.RGBA {
	s := scale
	if s < 1 {
		s = 1
	}

	w := (x + y) * s
	h := (x+y-2)*s/2 + (z+2)*s
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(colors) == 0 {
		return img
	}

	last := len(colors) - 1
	for d := 0; d <= x+y-2; d++ {
		yMin := d - x + 1
		if yMin < 0 {
			yMin = 0
		}
		for cy := yMin; cy <= d && cy < y; cy++ {
			cx := d - cy
			for cz := 0; cz < z; cz++ {
				idx := int(cells[cz*x*y+cy*x+cx])
				if idx == 0 {
					continue
				}
				if idx > last {
					idx = last
				}
				u := (cx - cy + y - 1) * s
				v := d*s/2 + (z-1-cz)*s
				drawBlock(img, u, v, s, colors[idx])
			}
		}
	}
	return img
}

// drawBlock paints one isometric block whose bounding box is 2s wide and 2s
// tall with its top-left corner at (u, v).
func drawBlock(img *image.RGBA, u, v, s int, c palette.Color) {
	// Top face: the upper half of a rhombus, widening to the full 2s extent.
	// Its lower half is covered by the side faces.
	for row := 0; row < s; row++ {
		half := row + 1
		putRow(img, u+s-half, v+row, 2*half, shade(c, shadeTop))
	}
	// Side faces: left half dark, right half mid, spanning the lower s rows.
	for row := s; row < 2*s; row++ {
		putRow(img, u, v+row, s, shade(c, shadeLeft))
		putRow(img, u+s, v+row, s, shade(c, shadeRight))
	}
}

func putRow(img *image.RGBA, x0, y0, w int, c palette.Color) {
	b := img.Bounds()
	if y0 < b.Min.Y || y0 >= b.Max.Y {
		return
	}
	if x0 < b.Min.X {
		w -= b.Min.X - x0
		x0 = b.Min.X
	}
	if x0+w > b.Max.X {
		w = b.Max.X - x0
	}
	if w <= 0 {
		return
	}
	base := img.PixOffset(x0, y0)
	for i := 0; i < w; i++ {
		o := base + i*4
		img.Pix[o+0] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}
}

func shade(c palette.Color, f float64) palette.Color {
	return palette.Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
