// Package post is the shared compositing stage. It owns the two offscreen
// targets every visualizer renders into (scene color and coverage mask) and
// the final composite pass that blends scene, mask-clipped procedural fill,
// edge flame, chromatic aberration and vignette onto the presented surface.
package post

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/avelhart/kaleido/core/pattern"
)

// Swappable constructors so resize bookkeeping and the compile-failure path
// are testable without a display.
var (
	newImage  = func(w, h int) *ebiten.Image { return ebiten.NewImage(w, h) }
	newShader = ebiten.NewShader
)

// Post holds the compositor state. Both offscreen targets always match the
// physical surface size and are reallocated together, never independently.
type Post struct {
	shader *ebiten.Shader
	scene  *ebiten.Image
	mask   *ebiten.Image
	w, h   int
}

// New compiles the composite program and allocates both targets at the given
// physical size. A compile failure is fatal to startup.
func New(w, h int) (*Post, error) {
	sh, err := newShader([]byte(compositeSrc))
	if err != nil {
		return nil, fmt.Errorf("post: compiling composite shader: %w", err)
	}
	p := &Post{shader: sh}
	p.alloc(w, h)
	return p, nil
}

func (p *Post) alloc(w, h int) {
	p.w, p.h = w, h
	p.scene = newImage(w, h)
	p.mask = newImage(w, h)
}

// Resize reallocates both targets if the requested size differs from the
// current one. Idempotent otherwise.
func (p *Post) Resize(w, h int) {
	if w == p.w && h == p.h {
		return
	}
	p.scene.Deallocate()
	p.mask.Deallocate()
	p.alloc(w, h)
}

// Size returns the current target size in physical pixels.
func (p *Post) Size() (w, h int) { return p.w, p.h }

// BeginMask clears the mask target to black and returns it for the mask
// pass.
func (p *Post) BeginMask() *ebiten.Image {
	p.mask.Fill(color.Black)
	return p.mask
}

// BeginScene clears the scene target to black and returns it for the scene
// pass.
func (p *Post) BeginScene() *ebiten.Image {
	p.scene.Fill(color.Black)
	return p.scene
}

// Draw runs the composite pass onto dst, sampling the scene and mask written
// earlier in the same frame. t is global time in seconds; pp is the active
// pattern parameter set.
func (p *Post) Draw(dst *ebiten.Image, t float64, pp pattern.Params) {
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = p.scene
	op.Images[1] = p.mask
	op.Uniforms = map[string]any{
		"Time":       float32(t),
		"FillMode":   float32(pp.Fill),
		"Angle":      pp.Angle,
		"RotSpeed":   pp.RotSpeed,
		"Density":    pp.Density,
		"Thickness":  pp.Thickness,
		"DotMin":     pp.DotMin,
		"DotMax":     pp.DotMax,
		"Drift":      []float32{pp.DriftX, pp.DriftY},
		"ColorCycle": pp.ColorCycle,
	}
	dst.DrawRectShader(p.w, p.h, p.shader, op)
}
