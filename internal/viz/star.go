package viz

import "github.com/hajimehoshi/ebiten/v2"

// Star is the twinkling star: a five-pointed shape from an
// angular-modulated radius, blinking with |sin(5t)| and rotating at half
// the local time.
type Star struct {
	mask *ebiten.Shader
	col  *ebiten.Shader
}

const starMaskSrc = shaderHeader + shaderLib + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := squareUV(dstPos.xy)
	q := rotate(p, -0.5*Time)
	ang := atan2(q.y, q.x)
	rad := 0.5 + 0.22*cos(5.0*ang)
	d := length(q) - rad
	cov := edge(d) * falloff(p)
	return vec4(cov, cov, cov, 1.0)
}
`

const starColorSrc = shaderHeader + shaderLib + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := squareUV(dstPos.xy)
	q := rotate(p, -0.5*Time)
	ang := atan2(q.y, q.x)
	rad := 0.5 + 0.22*cos(5.0*ang)
	d := length(q) - rad
	cov := edge(d)
	blink := abs(sin(Time * 5.0))
	return vec4(vec3(1.0, blink, 0.0)*cov, 1.0)
}
`

func (v *Star) Name() string { return "Twinkling Star" }

func (v *Star) Init() error {
	var err error
	if v.mask, err = compile("star mask", starMaskSrc); err != nil {
		return err
	}
	if v.col, err = compile("star color", starColorSrc); err != nil {
		return err
	}
	return nil
}

func (v *Star) RenderMask(dst *ebiten.Image, t float64)  { drawShader(dst, v.mask, t) }
func (v *Star) RenderColor(dst *ebiten.Image, t float64) { drawShader(dst, v.col, t) }
