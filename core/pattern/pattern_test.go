package pattern

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

func inRange(v, lo, hi float32) bool { return v >= lo && v <= hi }

func TestRandomizeBounds(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := Randomize(r)
		if p.Fill != FillStripe && p.Fill != FillPolka {
			t.Fatalf("draw %d: unexpected fill %v", i, p.Fill)
		}
		if !inRange(p.Angle, 0, 2*math32.Pi) {
			t.Fatalf("draw %d: angle out of range: %v", i, p.Angle)
		}
		if !inRange(p.RotSpeed, RotSpeedMin, RotSpeedMax) {
			t.Fatalf("draw %d: rot speed out of range: %v", i, p.RotSpeed)
		}
		if !inRange(p.Density, DensityMin, DensityMax) {
			t.Fatalf("draw %d: density out of range: %v", i, p.Density)
		}
		if !inRange(p.Thickness, ThicknessMin, ThicknessMax) {
			t.Fatalf("draw %d: thickness out of range: %v", i, p.Thickness)
		}
		if !inRange(p.DotMin, DotMinLo, DotMinHi) || !inRange(p.DotMax, DotMaxLo, DotMaxHi) {
			t.Fatalf("draw %d: dot radius bounds out of range: %v %v", i, p.DotMin, p.DotMax)
		}
		if p.DotMin >= p.DotMax {
			t.Fatalf("draw %d: dot bounds inverted: %v %v", i, p.DotMin, p.DotMax)
		}
		if !inRange(p.DriftX, -DriftMax, DriftMax) || !inRange(p.DriftY, -DriftMax, DriftMax) {
			t.Fatalf("draw %d: drift out of range: %v %v", i, p.DriftX, p.DriftY)
		}
		if !inRange(p.ColorCycle, ColorCycleMin, ColorCycleMax) {
			t.Fatalf("draw %d: color cycle out of range: %v", i, p.ColorCycle)
		}
	}
}

func TestRandomizeBothFillModesOccur(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	var stripes, polkas int
	for i := 0; i < 200; i++ {
		switch Randomize(r).Fill {
		case FillStripe:
			stripes++
		case FillPolka:
			polkas++
		}
	}
	if stripes == 0 || polkas == 0 {
		t.Fatalf("expected both fill modes across 200 draws, got stripe=%d polka=%d", stripes, polkas)
	}
}

func TestFillString(t *testing.T) {
	if FillStripe.String() != "stripe" || FillPolka.String() != "polka" {
		t.Fatalf("unexpected fill names: %s %s", FillStripe, FillPolka)
	}
}
