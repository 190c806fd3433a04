package ui

import (
	"image"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DurationInput is the keyboard-driven box for overriding the segment
// duration in seconds. It only accepts digits and a decimal point; focus,
// apply and cancel are driven by the app (Tab, Enter, Escape).
type DurationInput struct {
	Rect    image.Rectangle
	Text    string
	prev    string
	cursor  int
	blink   int
	focused bool
	repeat  map[ebiten.Key]int
}

func NewDurationInput() *DurationInput {
	return &DurationInput{
		Rect:   image.Rect(8, 26, 104, 26+debugCharH+8),
		repeat: make(map[ebiten.Key]int),
	}
}

// Focused reports whether the input currently has focus.
func (t *DurationInput) Focused() bool { return t.focused }

// Value returns the current text value.
func (t *DurationInput) Value() string { return t.Text }

// Focus grabs keyboard focus and seeds the box with the given text. The
// seed is also the value restored on cancel.
func (t *DurationInput) Focus(initial string) {
	t.focused = true
	t.prev = initial
	t.blink = 0
	t.SetText(initial)
}

// Blur releases focus, keeping the current text.
func (t *DurationInput) Blur() { t.focused = false }

// Cancel releases focus and restores the text from when focus was grabbed.
func (t *DurationInput) Cancel() {
	t.SetText(t.prev)
	t.focused = false
}

// SetText sets the current text and moves the cursor to the end.
func (t *DurationInput) SetText(s string) {
	t.Text = s
	t.cursor = utf8.RuneCountInString(s)
}

// Update processes keyboard editing. No-op without focus.
func (t *DurationInput) Update() {
	if !t.focused {
		t.blink = 0
		return
	}

	t.blink++
	if t.blink > 60 {
		t.blink = 0
	}

	for _, r := range inputChars() {
		if (r < '0' || r > '9') && r != '.' {
			continue
		}
		before := t.Text[:byteIndex(t.Text, t.cursor)]
		after := t.Text[byteIndex(t.Text, t.cursor):]
		t.Text = before + string(r) + after
		t.cursor++
	}

	if t.keyRepeat(ebiten.KeyBackspace) {
		if t.cursor > 0 {
			bi := byteIndex(t.Text, t.cursor)
			prev := byteIndex(t.Text, t.cursor-1)
			t.Text = t.Text[:prev] + t.Text[bi:]
			t.cursor--
		}
	}
	if t.keyRepeat(ebiten.KeyLeft) {
		if t.cursor > 0 {
			t.cursor--
		}
	}
	if t.keyRepeat(ebiten.KeyRight) {
		if t.cursor < utf8.RuneCountInString(t.Text) {
			t.cursor++
		}
	}
}

func (t *DurationInput) keyRepeat(k ebiten.Key) bool {
	if isKeyPressed(k) {
		t.repeat[k]++
		d := t.repeat[k]
		if d == 1 || d > 15 && (d-15)%3 == 0 {
			return true
		}
	} else {
		t.repeat[k] = 0
	}
	return false
}

// byteIndex returns the byte index of rune i in s.
func byteIndex(s string, i int) int {
	if i <= 0 {
		return 0
	}
	bi := 0
	for n := 0; n < i && bi < len(s); n++ {
		_, sz := utf8.DecodeRuneInString(s[bi:])
		bi += sz
	}
	return bi
}

// Draw renders the box. Only visible while focused.
func (t *DurationInput) Draw(dst *ebiten.Image) {
	if !t.focused {
		return
	}
	drawRect(dst, t.Rect, colBoxFill, true)
	drawRect(dst, t.Rect, colBoxFocus, false)
	ebitenutil.DebugPrintAt(dst, t.Text+"s", t.Rect.Min.X+4, t.Rect.Min.Y+4)
	if t.blink < 30 {
		cx := t.Rect.Min.X + 4 + debugCharW*t.cursor
		cy := t.Rect.Min.Y + 4
		drawRect(dst, image.Rect(cx, cy, cx+1, cy+debugCharH-2), colOverlayText, true)
	}
}
