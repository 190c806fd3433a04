// Package pattern defines the procedural fill parameters applied by the
// compositor and their per-segment randomization.
package pattern

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// Fill selects which procedural fill the compositor draws inside the mask.
type Fill int32

const (
	FillStripe Fill = iota
	FillPolka
)

func (f Fill) String() string {
	switch f {
	case FillStripe:
		return "stripe"
	case FillPolka:
		return "polka"
	default:
		return "unknown"
	}
}

// Interval bounds for Randomize. Every randomized field stays inside its
// closed interval on every transition.
const (
	RotSpeedMin, RotSpeedMax     float32 = 0.05, 0.35 // rad/s
	DensityMin, DensityMax       float32 = 6, 30      // bands or cells across the square
	ThicknessMin, ThicknessMax   float32 = 0.25, 0.65 // stripe duty cycle
	DotMinLo, DotMinHi           float32 = 0.08, 0.18 // polka radius lower bound, cell fraction
	DotMaxLo, DotMaxHi           float32 = 0.22, 0.42 // polka radius upper bound, cell fraction
	DriftMax                     float32 = 0.2        // units/s per axis
	ColorCycleMin, ColorCycleMax float32 = 0.1, 0.6   // hue cycles/s
)

// Params is the single shared record of fill parameters. The segment
// scheduler's owner replaces it wholesale at every transition; the compositor
// reads the active record every frame. Fields are float32 because they feed
// shader uniforms directly.
type Params struct {
	Fill       Fill
	Angle      float32 // base rotation, radians
	RotSpeed   float32
	Density    float32
	Thickness  float32
	DotMin     float32
	DotMax     float32
	DriftX     float32
	DriftY     float32
	ColorCycle float32
}

func uniform(r *rand.Rand, lo, hi float32) float32 {
	return lo + (hi-lo)*r.Float32()
}

// Randomize draws every field independently from its documented interval.
// This is the only place randomness enters the system.
func Randomize(r *rand.Rand) Params {
	fill := FillStripe
	if r.Float32() < 0.5 {
		fill = FillPolka
	}
	return Params{
		Fill:       fill,
		Angle:      uniform(r, 0, 2*math32.Pi),
		RotSpeed:   uniform(r, RotSpeedMin, RotSpeedMax),
		Density:    uniform(r, DensityMin, DensityMax),
		Thickness:  uniform(r, ThicknessMin, ThicknessMax),
		DotMin:     uniform(r, DotMinLo, DotMinHi),
		DotMax:     uniform(r, DotMaxLo, DotMaxHi),
		DriftX:     uniform(r, -DriftMax, DriftMax),
		DriftY:     uniform(r, -DriftMax, DriftMax),
		ColorCycle: uniform(r, ColorCycleMin, ColorCycleMax),
	}
}
