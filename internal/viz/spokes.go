package viz

import "github.com/hajimehoshi/ebiten/v2"

// Spokes is the radiating spokes: 18 periodic angular bands thresholded
// into wedges, fixed cyan, with the band phase drifting over time.
type Spokes struct {
	mask *ebiten.Shader
	col  *ebiten.Shader
}

const spokesMaskSrc = shaderHeader + shaderLib + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := squareUV(dstPos.xy)
	ang := atan2(p.y, p.x)
	band := sin(18.0 * (ang + Time*0.15))
	cov := smoothstep(0.1, 0.35, band) * falloff(p)
	return vec4(cov, cov, cov, 1.0)
}
`

const spokesColorSrc = shaderHeader + shaderLib + `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := squareUV(dstPos.xy)
	ang := atan2(p.y, p.x)
	band := sin(18.0 * (ang + Time*0.15))
	cov := smoothstep(0.1, 0.35, band) * falloff(p)
	return vec4(vec3(0.0, 0.8, 1.0)*cov, 1.0)
}
`

func (v *Spokes) Name() string { return "Radiating Spokes" }

func (v *Spokes) Init() error {
	var err error
	if v.mask, err = compile("spokes mask", spokesMaskSrc); err != nil {
		return err
	}
	if v.col, err = compile("spokes color", spokesColorSrc); err != nil {
		return err
	}
	return nil
}

func (v *Spokes) RenderMask(dst *ebiten.Image, t float64)  { drawShader(dst, v.mask, t) }
func (v *Spokes) RenderColor(dst *ebiten.Image, t float64) { drawShader(dst, v.col, t) }
