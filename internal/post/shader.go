package post

// The composite program is assembled from constant tables: a header with the
// uniform bindings, the procedural pattern library, and the fragment body.
// Images[0] is the scene color target, Images[1] the coverage mask.

const compositeHeader = `//kage:unit pixels

package main

var Time float
var FillMode float
var Angle float
var RotSpeed float
var Density float
var Thickness float
var DotMin float
var DotMax float
var Drift vec2
var ColorCycle float

func hash(p vec2) float {
	return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453123)
}

func rotate(v vec2, a float) vec2 {
	c := cos(a)
	s := sin(a)
	return vec2(c*v.x-s*v.y, s*v.x+c*v.y)
}

func sceneAt(u vec2) vec4 {
	res := imageSrc0Size()
	side := min(res.x, res.y)
	p := (u - vec2(0.5))*side + res*0.5
	return imageSrc0At(p + imageSrc0Origin())
}

func maskAt(u vec2) float {
	res := imageSrc1Size()
	side := min(res.x, res.y)
	p := (u - vec2(0.5))*side + res*0.5
	return imageSrc1At(p + imageSrc1Origin()).r
}
`

// patternLib holds the stripe and polka fill procedures. Both operate on
// pattern-space coordinates already rotated and drifted by the caller;
// coordinates are in square space, so the fills are aspect independent.
const patternLib = `
func hueRamp(h float) vec3 {
	return vec3(0.5) + vec3(0.5)*cos(6.2831853*(vec3(h)+vec3(0.0, 0.33, 0.67)))
}

func stripeFill(p vec2) float {
	s := fract(p.x * Density * 0.5)
	return smoothstep(0.0, 0.04, s) * (1.0 - smoothstep(Thickness-0.04, Thickness, s))
}

func polkaFill(p vec2) float {
	g := p * Density * 0.5
	cell := floor(g)
	f := g - cell
	jx := hash(cell + vec2(17.0, 9.0))
	jy := hash(cell + vec2(5.0, 31.0))
	center := vec2(0.5) + (vec2(jx, jy)-vec2(0.5))*0.5
	r := DotMin + (DotMax-DotMin)*hash(cell+vec2(3.0, 7.0))
	return 1.0 - smoothstep(r-0.05, r, length(f-center))
}
`

const compositeBody = `
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	res := imageDstSize()
	side := min(res.x, res.y)
	q := dstPos.xy - imageDstOrigin()
	sq := (q - res*0.5) * 2.0 / side
	if abs(sq.x) > 1.0 || abs(sq.y) > 1.0 {
		return vec4(0.0, 0.0, 0.0, 1.0)
	}
	u := sq*0.5 + vec2(0.5)

	// displacement field: traveling wave, two vortex warps, three bubbles
	disp := vec2(0.0)
	wave := sin(u.y*12.0+Time*1.5)*0.003 + sin((u.x+u.y)*10.0-Time*1.2)*0.002
	disp += vec2(wave, 0.0)

	s1 := vec2(0.3+0.2*sin(Time*0.4), 0.4+0.2*cos(Time*0.35))
	s2 := vec2(0.7+0.2*cos(Time*0.37), 0.6+0.2*sin(Time*0.31))
	for i := 0; i < 2; i++ {
		c := s1
		if i == 1 {
			c = s2
		}
		d := u - c
		r := length(d) + 0.0001
		a := 0.15 * sin(Time*0.8+r*25.0)
		disp += (rotate(d, a) - d) * (1.0 - smoothstep(0.0, 0.25, r))
	}

	for i := 0; i < 3; i++ {
		fi := float(i)
		seed := vec2(hash(vec2(fi, 0.123)), hash(vec2(fi+2.3, 4.2)))
		seed = 0.2 + 0.6*seed + 0.05*vec2(sin(Time*(1.0+fi*0.3)+fi), cos(Time*(1.2+fi*0.17)+fi))
		d := u - seed
		r := length(d)
		r0 := 0.18 + 0.05*sin(Time*1.7+fi)
		amp := 0.008 * sin((r-r0)*40.0-Time*3.0)
		disp += d / (r + 0.0001) * amp * (1.0 - smoothstep(0.0, r0, r))
	}

	u2 := clamp(u+disp, vec2(0.0), vec2(1.0))

	// scene sample with per-channel radial offset
	caOff := (u2 - vec2(0.5)) * 0.002
	col := vec3(0.0)
	col.r = sceneAt(u2 + caOff).r
	col.g = sceneAt(u2).g
	col.b = sceneAt(u2 - caOff).b

	// procedural fill in the undisplaced square UV, clipped by the mask
	ang := Angle + RotSpeed*Time
	pp := rotate(sq, -ang) + Drift*Time
	fillv := 0.0
	if FillMode < 0.5 {
		fillv = stripeFill(pp)
	} else {
		fillv = polkaFill(pp)
	}
	patCol := hueRamp(ColorCycle*Time + 0.15*(pp.x+pp.y))
	mv := maskAt(u2)
	col = mix(col, patCol, clamp(fillv*mv, 0.0, 1.0)*0.85)

	// edge flame from an 8-neighbor luminance gradient on the displaced UV
	texel := 1.0 / side
	lum := vec3(0.2126, 0.7152, 0.0722)
	t00 := dot(sceneAt(u2+vec2(-texel, -texel)).rgb, lum)
	t10 := dot(sceneAt(u2+vec2(0.0, -texel)).rgb, lum)
	t20 := dot(sceneAt(u2+vec2(texel, -texel)).rgb, lum)
	t01 := dot(sceneAt(u2+vec2(-texel, 0.0)).rgb, lum)
	t21 := dot(sceneAt(u2+vec2(texel, 0.0)).rgb, lum)
	t02 := dot(sceneAt(u2+vec2(-texel, texel)).rgb, lum)
	t12 := dot(sceneAt(u2+vec2(0.0, texel)).rgb, lum)
	t22 := dot(sceneAt(u2+vec2(texel, texel)).rgb, lum)
	gx := (t20 + 2.0*t21 + t22) - (t00 + 2.0*t01 + t02)
	gy := (t02 + 2.0*t12 + t22) - (t00 + 2.0*t10 + t20)
	edgeV := clamp(length(vec2(gx, gy))*1.5, 0.0, 1.0)
	flicker := 0.6 + 0.4*sin(Time*15.0+u2.x*30.0+u2.y*25.0)
	col += vec3(1.0, 0.5, 0.05) * pow(edgeV, 0.8) * flicker * 0.6

	// vignette toward the square's edge
	vig := 1.0 - smoothstep(0.4, 0.95, length(u-vec2(0.5)))
	col *= vig

	return vec4(col, 1.0)
}
`

const compositeSrc = compositeHeader + patternLib + compositeBody
