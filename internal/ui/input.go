package ui

import "github.com/hajimehoshi/ebiten/v2"

var (
	isKeyPressed = ebiten.IsKeyPressed
	inputChars   = ebiten.InputChars
	deviceScale  = func() float64 { return ebiten.Monitor().DeviceScaleFactor() }
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	key func(ebiten.Key) bool,
	chars func() []rune,
	scale func() float64,
) func() {
	oldKey := isKeyPressed
	oldChars := inputChars
	oldScale := deviceScale
	isKeyPressed = key
	inputChars = chars
	deviceScale = scale
	return func() {
		isKeyPressed = oldKey
		inputChars = oldChars
		deviceScale = oldScale
	}
}
