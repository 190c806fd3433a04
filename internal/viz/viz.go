// Package viz holds the animated shape generators. Each visualizer owns two
// compiled Kage programs: a mask program producing per-pixel coverage and a
// color program producing the shape's own animated image. Both are compiled
// once in Init and reused for the instance's lifetime.
package viz

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// newShader is swappable so tests can exercise the compile-failure path.
var newShader = ebiten.NewShader

// Visualizer is one animated shape generator. Implementations are stateless
// across frames except for their compiled programs.
type Visualizer interface {
	// Name is a static identifier used for the overlay label.
	Name() string
	// Init compiles the mask and color programs. Called exactly once;
	// a compile or link failure is an initialization error and aborts
	// startup.
	Init() error
	// RenderMask draws coverage in [0,1] into dst for local time t, with a
	// soft falloff near the outer bound of the pattern-visible region.
	RenderMask(dst *ebiten.Image, t float64)
	// RenderColor draws the shape's own color into dst for local time t,
	// independent of the mask pass.
	RenderColor(dst *ebiten.Image, t float64)
}

// All returns the fixed visualizer set in presentation order.
func All() []Visualizer {
	return []Visualizer{
		&Disc{},
		&Box{},
		&Star{},
		&Spokes{},
		&Plus{},
	}
}

func compile(name, src string) (*ebiten.Shader, error) {
	sh, err := newShader([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("viz: compiling %s: %w", name, err)
	}
	return sh, nil
}

// drawShader fills the whole of dst with the given program.
func drawShader(dst *ebiten.Image, sh *ebiten.Shader, t float64) {
	b := dst.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{"Time": float32(t)}
	dst.DrawRectShader(b.Dx(), b.Dy(), sh, op)
}
