//go:build ebiten

package app

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"voxgen/pkg/gen"
)

// Viewer adapts a result stream to the ebiten.Game interface, pulling one
// frame per tick so the engine's lazy suspension is preserved: pausing the
// viewer pauses generation.
type Viewer struct {
	results *gen.Results

	frame    *ebiten.Image
	w, h     int
	count    int
	paused   bool
	tickOnce bool
	done     bool
}

// NewViewer constructs a Viewer for the provided result stream. The stream
// must come from a configuration with image output enabled.
func NewViewer(results *gen.Results, w, h int) *Viewer {
	return &Viewer{results: results, w: w, h: h}
}

// Update handles input and pulls the next frame unless paused.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		v.tickOnce = true
	}

	if v.done || (v.paused && !v.tickOnce) {
		return nil
	}
	v.tickOnce = false

	if !v.results.Next() {
		v.done = true
		return v.results.Err()
	}
	v.show(v.results.Result().Image)
	v.count++
	return nil
}

// show uploads the pulled raster into the cached texture, reallocating when
// the effective frame size changes.
func (v *Viewer) show(img *image.RGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if v.frame == nil || v.frame.Bounds() != b {
		v.frame = ebiten.NewImage(b.Dx(), b.Dy())
		v.w, v.h = b.Dx(), b.Dy()
	}
	v.frame.WritePixels(img.Pix)
}

// Draw renders the most recent frame and a small status line.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.frame != nil {
		screen.DrawImage(v.frame, nil)
	}
	status := "running"
	switch {
	case v.done:
		status = "done"
	case v.paused:
		status = "paused"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  frame %d", status, v.count), 2, 2)
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.w, v.h
}
