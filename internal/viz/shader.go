package viz

// Shared Kage fragments. Every visualizer program is assembled from the same
// header and helper library plus a variant-specific Fragment, so the
// square-space transform is identical across variants: device pixels map to
// a centered square where the shorter dimension spans [-1, 1].

const shaderHeader = `//kage:unit pixels

package main

var Time float
`

const shaderLib = `
func squareUV(dst vec2) vec2 {
	res := imageDstSize()
	side := min(res.x, res.y)
	return (dst - imageDstOrigin() - res*0.5) * 2.0 / side
}

func rotate(v vec2, a float) vec2 {
	c := cos(a)
	s := sin(a)
	return vec2(c*v.x-s*v.y, s*v.x+c*v.y)
}

func boxDist(p vec2, b vec2) float {
	d := abs(p) - b
	return length(max(d, vec2(0.0))) + min(max(d.x, d.y), 0.0)
}

func edge(d float) float {
	return 1.0 - smoothstep(-0.015, 0.015, d)
}

func falloff(p vec2) float {
	return 1.0 - smoothstep(1.05, 1.4, length(p))
}
`
