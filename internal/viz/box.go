package viz

import "github.com/hajimehoshi/ebiten/v2"

// Box is the rotating box: an axis-aligned box SDF rotated by the local
// time, drawn in a fixed warm color.
type Box struct {
	mask *ebiten.Shader
	col  *ebiten.Shader
}

const boxMaskSrc = shaderHeader + shaderLib + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := squareUV(dstPos.xy)
	q := rotate(p, -Time)
	d := boxDist(q, vec2(0.45, 0.45))
	cov := edge(d) * falloff(p)
	return vec4(cov, cov, cov, 1.0)
}
`

const boxColorSrc = shaderHeader + shaderLib + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := squareUV(dstPos.xy)
	q := rotate(p, -Time)
	d := boxDist(q, vec2(0.45, 0.45))
	cov := edge(d)
	return vec4(vec3(1.0, 0.3, 0.0)*cov, 1.0)
}
`

func (v *Box) Name() string { return "Rotating Box" }

func (v *Box) Init() error {
	var err error
	if v.mask, err = compile("box mask", boxMaskSrc); err != nil {
		return err
	}
	if v.col, err = compile("box color", boxColorSrc); err != nil {
		return err
	}
	return nil
}

func (v *Box) RenderMask(dst *ebiten.Image, t float64)  { drawShader(dst, v.mask, t) }
func (v *Box) RenderColor(dst *ebiten.Image, t float64) { drawShader(dst, v.col, t) }
