// Package vox encodes cell volumes into the MagicaVoxel .vox byte format
// (version 150: a MAIN chunk wrapping SIZE, XYZI and RGBA children).
package vox

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"voxgen/pkg/palette"
)

// ErrTooLarge indicates a dimension beyond the 256-cell .vox coordinate range.
var ErrTooLarge = errors.New("vox: dimension exceeds 256")

const version = 150

// Encode serializes the volume into a .vox byte stream. Cell values index
// into colors and map to palette slots value+1; value 0 is empty space and
// produces no voxel.
func Encode(cells []byte, x, y, z int, colors []palette.Color) ([]byte, error) {
	if x > 256 || y > 256 || z > 256 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrTooLarge, x, y, z)
	}

	var voxels bytes.Buffer
	n := 0
	for cz := 0; cz < z; cz++ {
		for cy := 0; cy < y; cy++ {
			for cx := 0; cx < x; cx++ {
				v := cells[cz*x*y+cy*x+cx]
				if v == 0 {
					continue
				}
				voxels.Write([]byte{byte(cx), byte(cy), byte(cz), v + 1})
				n++
			}
		}
	}

	size := chunk("SIZE", packInts(int32(x), int32(y), int32(z)))
	xyzi := chunk("XYZI", append(packInts(int32(n)), voxels.Bytes()...))
	rgba := chunk("RGBA", packPalette(colors))

	children := append(append(size, xyzi...), rgba...)

	var out bytes.Buffer
	out.WriteString("VOX ")
	binary.Write(&out, binary.LittleEndian, int32(version))
	out.WriteString("MAIN")
	binary.Write(&out, binary.LittleEndian, int32(0))
	binary.Write(&out, binary.LittleEndian, int32(len(children)))
	out.Write(children)
	return out.Bytes(), nil
}

// chunk frames a chunk id with its content size and an empty child section.
func chunk(id string, content []byte) []byte {
	var b bytes.Buffer
	b.WriteString(id)
	binary.Write(&b, binary.LittleEndian, int32(len(content)))
	binary.Write(&b, binary.LittleEndian, int32(0))
	b.Write(content)
	return b.Bytes()
}

func packInts(vs ...int32) []byte {
	var b bytes.Buffer
	for _, v := range vs {
		binary.Write(&b, binary.LittleEndian, v)
	}
	return b.Bytes()
}

// packPalette lays out the 256-slot RGBA table. Slot i holds the color of
// cell value i-1, so the XYZI value+1 shift lands on the right entry.
func packPalette(colors []palette.Color) []byte {
	out := make([]byte, 256*4)
	for i := 0; i < 255 && i < len(colors); i++ {
		c := colors[i]
		o := i * 4
		out[o+0] = c.R
		out[o+1] = c.G
		out[o+2] = c.B
		out[o+3] = c.A
	}
	return out
}
