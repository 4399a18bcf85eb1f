package gen

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxgen/pkg/palette"
)

type recordingViz struct {
	shown int
}

func (v *recordingViz) Show(*image.RGBA) { v.shown++ }

// TestEmit_FlagIndependence verifies the decision table: with voxel and raw
// output enabled on a deep frame without isometric mode, both 3D artifacts
// are populated and the 2D one stays empty even though it is requested.
func TestEmit_FlagIndependence(t *testing.T) {
	cfg := stubConfig(1)
	cfg.Image, cfg.Voxels, cfg.RawColors = true, true, true

	frame := Frame{Cells: []byte{0, 1, 1, 0, 0, 1, 0, 1}, Legend: []rune{'B', 'W'}, X: 2, Y: 2, Z: 2}
	colors := []palette.Color{{R: 0, G: 0, B: 0, A: 255}, {R: 255, G: 255, B: 255, A: 255}}

	res, err := emit(cfg, frame, colors)
	require.NoError(t, err)

	assert.Nil(t, res.Image, "no 2D artifact for Z>1 without isometric mode")
	assert.NotEmpty(t, res.Voxels)
	assert.Len(t, res.Colors, 8)
}

// TestEmit_IsometricEnablesDeepImages verifies that isometric mode lifts the
// Z==1 restriction on the raster artifact.
func TestEmit_IsometricEnablesDeepImages(t *testing.T) {
	cfg := stubConfig(1)
	cfg.Image, cfg.Isometric = true, true

	frame := Frame{Cells: []byte{0, 1, 1, 0, 0, 1, 0, 1}, Legend: []rune{'B', 'W'}, X: 2, Y: 2, Z: 2}
	colors := []palette.Color{{R: 0, G: 0, B: 0, A: 255}, {R: 255, G: 255, B: 255, A: 255}}

	res, err := emit(cfg, frame, colors)
	require.NoError(t, err)
	require.NotNil(t, res.Image)
	assert.False(t, res.Image.Bounds().Empty())
}

// TestEmit_NoFlagsNoArtifacts verifies that a frame with every output
// disabled yields an empty bundle, not an error.
func TestEmit_NoFlagsNoArtifacts(t *testing.T) {
	cfg := stubConfig(1)

	frame := flatFrame(0, 1)
	res, err := emit(cfg, frame, []palette.Color{{R: 0, G: 0, B: 0, A: 255}, {R: 255, G: 255, B: 255, A: 255}})
	require.NoError(t, err)

	assert.Nil(t, res.Image)
	assert.Nil(t, res.Voxels)
	assert.Nil(t, res.Colors)
}

// TestEmit_VisualizerReceivesRenderedFrames verifies the debug hook fires
// once per rendered raster and never for suppressed ones.
func TestEmit_VisualizerReceivesRenderedFrames(t *testing.T) {
	viz := &recordingViz{}
	cfg := stubConfig(1)
	cfg.Image = true
	cfg.Viz = viz

	colors := []palette.Color{{R: 0, G: 0, B: 0, A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	_, err := emit(cfg, flatFrame(0, 1), colors)
	require.NoError(t, err)
	assert.Equal(t, 1, viz.shown)

	deep := Frame{Cells: []byte{0, 1}, Legend: []rune{'B', 'W'}, X: 1, Y: 1, Z: 2}
	_, err = emit(cfg, deep, colors)
	require.NoError(t, err)
	assert.Equal(t, 1, viz.shown, "suppressed rasters must not reach the visualizer")
}

// TestEmit_FlatImagePixels verifies cell colors land at the scaled pixel
// positions in the host image representation.
func TestEmit_FlatImagePixels(t *testing.T) {
	cfg := stubConfig(1)
	cfg.Image = true
	cfg.PixelScale = 2

	white := palette.Color{R: 255, G: 255, B: 255, A: 255}
	res, err := emit(cfg, flatFrame(0, 1), []palette.Color{{R: 0, G: 0, B: 0, A: 255}, white})
	require.NoError(t, err)
	require.NotNil(t, res.Image)

	assert.Equal(t, image.Rect(0, 0, 4, 2), res.Image.Bounds())
	r, g, b, a := res.Image.At(3, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})
	r, _, _, _ = res.Image.At(0, 0).RGBA()
	assert.Zero(t, r)
}
