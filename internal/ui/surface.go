package ui

import "math"

// Surface tracks the physical pixel size of the presented framebuffer. The
// logical window size reported by the host is multiplied by the monitor's
// device scale factor so the render targets match physical pixels exactly.
type Surface struct {
	W, H int
}

// Adjust recomputes the physical size from a logical size and scale factor
// and reports whether it changed. Sizes are clamped to at least 1x1.
func (s *Surface) Adjust(logicalW, logicalH, scale float64) bool {
	w := int(math.Round(logicalW * scale))
	h := int(math.Round(logicalH * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == s.W && h == s.H {
		return false
	}
	s.W, s.H = w, h
	return true
}
