package viz

import "github.com/hajimehoshi/ebiten/v2"

// Disc is the pulsing disc: a fixed-radius circle whose brightness
// oscillates with time. The disc itself does not rotate.
type Disc struct {
	mask *ebiten.Shader
	col  *ebiten.Shader
}

const discMaskSrc = shaderHeader + shaderLib + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := squareUV(dstPos.xy)
	d := length(p) - 0.62
	cov := edge(d) * falloff(p)
	return vec4(cov, cov, cov, 1.0)
}
`

const discColorSrc = shaderHeader + shaderLib + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := squareUV(dstPos.xy)
	d := length(p) - 0.62
	cov := edge(d)
	bright := 0.5 + 0.5*sin(Time)
	return vec4(vec3(bright)*cov, 1.0)
}
`

func (v *Disc) Name() string { return "Pulsing Disc" }

func (v *Disc) Init() error {
	var err error
	if v.mask, err = compile("disc mask", discMaskSrc); err != nil {
		return err
	}
	if v.col, err = compile("disc color", discColorSrc); err != nil {
		return err
	}
	return nil
}

func (v *Disc) RenderMask(dst *ebiten.Image, t float64)  { drawShader(dst, v.mask, t) }
func (v *Disc) RenderColor(dst *ebiten.Image, t float64) { drawShader(dst, v.col, t) }
