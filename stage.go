package plotline

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Stage owns the chart, the story, and the control strip, and runs the
// per-frame loop: pointer processing, tween advance, drawing. All state
// transitions happen synchronously on the game-loop goroutine; nothing here
// blocks or suspends.
type Stage struct {
	story    *Story
	chart    *Chart
	controls *ControlStrip

	width, height int
	ClearColor    Color

	// ScreenshotDir receives queued PNG captures. Relative to the working
	// directory.
	ScreenshotDir string

	pointer         pointerState
	injectQueue     []syntheticPointerEvent
	script          *ScriptRunner
	screenshotQueue []string
}

// controlStripHeight is the reserved band under the chart.
const controlStripHeight = 100

// NewStage wires a story into a windowed surface of the given pixel size.
// The control strip occupies the bottom band; the chart's plot rectangle is
// whatever its creator chose.
func NewStage(story *Story, width, height int) *Stage {
	st := &Stage{
		story:         story,
		chart:         story.Chart(),
		width:         width,
		height:        height,
		ClearColor:    ColorBackground,
		ScreenshotDir: "screenshots",
	}
	st.controls = NewControlStrip(story, Rect{
		X: 0, Y: float64(height - controlStripHeight),
		Width: float64(width), Height: controlStripHeight,
	})
	return st
}

// Story returns the stage's story.
func (st *Stage) Story() *Story {
	return st.story
}

// Chart returns the stage's chart.
func (st *Stage) Chart() *Chart {
	return st.chart
}

// Controls returns the stage's control strip.
func (st *Stage) Controls() *ControlStrip {
	return st.controls
}

// Size returns the stage dimensions in pixels.
func (st *Stage) Size() (width, height int) {
	return st.width, st.height
}

// Update processes input and advances mark tweens. Call once per tick.
func (st *Stage) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if st.script != nil && !st.script.Done() {
		st.script.step(st)
	}
	st.processInput()
	st.chart.Update(dt)
}

// Draw renders the chart and controls onto screen, then flushes any queued
// screenshots of the finished frame.
func (st *Stage) Draw(screen *ebiten.Image) {
	screen.Fill(st.ClearColor.rgba())
	st.chart.Draw(screen)
	st.controls.Draw(screen)
	st.flushScreenshots(screen)
}

// --- Pointer processing ---

type pointerState struct {
	down        bool
	pressTarget any
	lastX       float64
	lastY       float64
}

// processInput feeds injected events first; real mouse input is skipped on
// frames that consume a synthetic event, mirroring real-input routing.
func (st *Stage) processInput() {
	if st.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	st.processPointer(float64(mx), float64(my), pressed)
}

// processPointer runs the pointer state machine: hover tracking every
// frame, click on press-then-release over the same widget.
func (st *Stage) processPointer(x, y float64, pressed bool) {
	p := &st.pointer
	p.lastX, p.lastY = x, y

	st.controls.pointerMoved(x, y)
	st.chart.PointerMoved(x, y)

	target := st.controls.targetAt(x, y)

	switch {
	case pressed && !p.down:
		p.down = true
		p.pressTarget = target
	case !pressed && p.down:
		if target != nil && target == p.pressTarget {
			st.controls.activate(target)
		}
		p.down = false
		p.pressTarget = nil
	}
}
