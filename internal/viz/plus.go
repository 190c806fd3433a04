package viz

import "github.com/hajimehoshi/ebiten/v2"

// Plus is the pulsing plus: two overlapping box SDFs whose arm thickness
// oscillates with time, drawn in fixed yellow.
type Plus struct {
	mask *ebiten.Shader
	col  *ebiten.Shader
}

const plusMaskSrc = shaderHeader + shaderLib + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := squareUV(dstPos.xy)
	th := 0.16 + 0.07*abs(sin(Time*2.0))
	d := min(boxDist(p, vec2(0.6, th)), boxDist(p, vec2(th, 0.6)))
	cov := edge(d) * falloff(p)
	return vec4(cov, cov, cov, 1.0)
}
`

const plusColorSrc = shaderHeader + shaderLib + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := squareUV(dstPos.xy)
	th := 0.16 + 0.07*abs(sin(Time*2.0))
	d := min(boxDist(p, vec2(0.6, th)), boxDist(p, vec2(th, 0.6)))
	cov := edge(d)
	return vec4(vec3(1.0, 1.0, 0.0)*cov, 1.0)
}
`

func (v *Plus) Name() string { return "Pulsing Plus" }

func (v *Plus) Init() error {
	var err error
	if v.mask, err = compile("plus mask", plusMaskSrc); err != nil {
		return err
	}
	if v.col, err = compile("plus color", plusColorSrc); err != nil {
		return err
	}
	return nil
}

func (v *Plus) RenderMask(dst *ebiten.Image, t float64)  { drawShader(dst, v.mask, t) }
func (v *Plus) RenderColor(dst *ebiten.Image, t float64) { drawShader(dst, v.col, t) }
