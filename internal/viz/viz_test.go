package viz

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAllOrderAndNames(t *testing.T) {
	vs := All()
	if len(vs) != 5 {
		t.Fatalf("expected 5 visualizers, got %d", len(vs))
	}
	want := []string{
		"Pulsing Disc",
		"Rotating Box",
		"Twinkling Star",
		"Radiating Spokes",
		"Pulsing Plus",
	}
	for i, v := range vs {
		if v.Name() != want[i] {
			t.Fatalf("visualizer %d: expected %q, got %q", i, want[i], v.Name())
		}
	}
}

// Shader compilation is host independent, so every program can be verified
// to compile without a display.
func TestShaderSourcesCompile(t *testing.T) {
	srcs := map[string]string{
		"disc mask":    discMaskSrc,
		"disc color":   discColorSrc,
		"box mask":     boxMaskSrc,
		"box color":    boxColorSrc,
		"star mask":    starMaskSrc,
		"star color":   starColorSrc,
		"spokes mask":  spokesMaskSrc,
		"spokes color": spokesColorSrc,
		"plus mask":    plusMaskSrc,
		"plus color":   plusColorSrc,
	}
	for name, src := range srcs {
		if _, err := ebiten.NewShader([]byte(src)); err != nil {
			t.Errorf("%s does not compile: %v", name, err)
		}
	}
}

func TestInitAll(t *testing.T) {
	for _, v := range All() {
		if err := v.Init(); err != nil {
			t.Fatalf("%s: init failed: %v", v.Name(), err)
		}
	}
}

func TestInitPropagatesCompileFailure(t *testing.T) {
	orig := newShader
	defer func() { newShader = orig }()

	compileErr := errors.New("boom")
	newShader = func([]byte) (*ebiten.Shader, error) { return nil, compileErr }

	for _, v := range All() {
		err := v.Init()
		if !errors.Is(err, compileErr) {
			t.Fatalf("%s: expected wrapped compile error, got %v", v.Name(), err)
		}
	}
}
