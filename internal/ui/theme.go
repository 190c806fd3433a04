package ui

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	colOverlayText = color.RGBA{235, 235, 235, 255}
	colBoxFill     = color.RGBA{25, 25, 35, 255}
	colBoxBorder   = color.RGBA{120, 120, 130, 255}
	colBoxFocus    = color.RGBA{0, 200, 255, 255}
)

// accentFor returns the overlay accent for segment i of n. Hues are spread
// evenly around the HCL circle so neighboring segments stay distinguishable.
func accentFor(i, n int) color.RGBA {
	if n <= 0 || i < 0 {
		return colOverlayText
	}
	h := 360.0 * float64(i) / float64(n)
	c := colorful.Hcl(h, 0.5, 0.7).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
