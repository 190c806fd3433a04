package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	debugCharW = 6
	debugCharH = 13
)

// drawOverlay prints the segment label with a colored accent bar beside it.
func drawOverlay(dst *ebiten.Image, label string, idx, n int) {
	if label == "" {
		return
	}
	drawRect(dst, image.Rect(8, 8, 12, 8+debugCharH), accentFor(idx, n), true)
	ebitenutil.DebugPrintAt(dst, label, 16, 6)
}
