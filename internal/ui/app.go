// Package ui owns the window: the ebiten game loop, keyboard handling, the
// segment overlay and the duration input box. Rendering itself is delegated
// to the visualizers and the compositor.
package ui

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/avelhart/kaleido/core/pattern"
	"github.com/avelhart/kaleido/core/segment"
	game_log "github.com/avelhart/kaleido/internal/log"
	"github.com/avelhart/kaleido/internal/post"
	"github.com/avelhart/kaleido/internal/viz"
)

// initialW, initialH size the compositor targets before the first Layout.
const (
	initialW = 1280
	initialH = 720
)

type App struct {
	/* subsystems */
	logger *game_log.Logger
	rng    *rand.Rand
	vizs   []viz.Visualizer
	post   *post.Post
	sched  *segment.Scheduler

	/* per-segment state, replaced wholesale on every transition */
	params pattern.Params
	label  string

	/* overlay widgets */
	input *DurationInput
	surf  *Surface

	/* key edge detection */
	spacePrev bool
	tabPrev   bool
	enterPrev bool
	escPrev   bool

	/* clock */
	start time.Time
	now   func() time.Time
}

// New compiles every shader up front so a bad program fails startup instead
// of the first frame that needs it.
func New(logger *game_log.Logger, rng *rand.Rand) (*App, error) {
	a := &App{
		logger: logger,
		rng:    rng,
		vizs:   viz.All(),
		input:  NewDurationInput(),
		surf:   &Surface{},
		start:  time.Now(),
		now:    time.Now,
	}
	for _, v := range a.vizs {
		if err := v.Init(); err != nil {
			return nil, err
		}
	}
	p, err := post.New(initialW, initialH)
	if err != nil {
		return nil, err
	}
	a.post = p

	a.sched = segment.NewScheduler(len(a.vizs))
	a.sched.OnSwitch = func(i int) {
		a.params = pattern.Randomize(a.rng)
		a.label = fmt.Sprintf("%d/%d %s", i+1, len(a.vizs), a.vizs[i].Name())
		a.logger.Infof("[SEG] now showing %s (fill=%s)", a.label, a.params.Fill)
	}
	return a, nil
}

func (a *App) Update() error {
	tab := isKeyPressed(ebiten.KeyTab)
	if tab && !a.tabPrev {
		if a.input.Focused() {
			a.input.Cancel()
		} else {
			a.input.Focus(formatSeconds(a.sched.Duration()))
		}
	}
	a.tabPrev = tab

	if a.input.Focused() {
		a.input.Update()

		enter := isKeyPressed(ebiten.KeyEnter)
		if enter && !a.enterPrev {
			a.applyDuration()
		}
		a.enterPrev = enter

		esc := isKeyPressed(ebiten.KeyEscape)
		if esc && !a.escPrev {
			a.input.Cancel()
		}
		a.escPrev = esc
	} else {
		a.enterPrev = false
		a.escPrev = false
	}

	// Space advances the rotation, but never while the duration box is
	// capturing keystrokes.
	space := isKeyPressed(ebiten.KeySpace)
	if space && !a.spacePrev && !a.input.Focused() {
		a.sched.Advance()
		a.logger.Debugf("[SEG] manual advance to index %d", a.sched.Index())
	}
	a.spacePrev = space

	a.sched.Tick()
	return nil
}

func (a *App) applyDuration() {
	v := a.input.Value()
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil || secs <= 0 {
		a.logger.Warnf("[UI] rejecting segment duration %q", v)
		a.input.Cancel()
		return
	}
	d := time.Duration(secs * float64(time.Second))
	a.sched.SetDuration(d)
	a.logger.Infof("[UI] segment duration set to %s", d)
	a.input.Blur()
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// Draw issues the three passes in fixed order: mask, scene, composite. The
// visualizer passes run on segment-local time so every segment starts its
// animation from phase zero; the composite runs on global time so the
// displacement field and pattern drift never jump at a transition.
func (a *App) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	a.post.Resize(b.Dx(), b.Dy())

	idx := a.sched.Index()
	if idx < 0 {
		return
	}
	local := a.sched.LocalTime()
	global := a.now().Sub(a.start).Seconds()

	v := a.vizs[idx]
	v.RenderMask(a.post.BeginMask(), local)
	v.RenderColor(a.post.BeginScene(), local)
	a.post.Draw(screen, global, a.params)

	drawOverlay(screen, a.label, idx, len(a.vizs))
	a.input.Draw(screen)
}

// LayoutF maps the logical window size to physical pixels so the offscreen
// targets and the presented surface agree on resolution.
func (a *App) LayoutF(logicalW, logicalH float64) (float64, float64) {
	if a.surf.Adjust(logicalW, logicalH, deviceScale()) {
		a.logger.Debugf("[UI] surface %dx%d", a.surf.W, a.surf.H)
	}
	return float64(a.surf.W), float64(a.surf.H)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}
