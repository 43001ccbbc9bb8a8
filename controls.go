package plotline

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable rectangle with a centered label. A disabled button
// still draws (dimmed) but ignores the pointer: boundary scenes disable a
// nav button rather than hiding it.
type Button struct {
	Label   string
	Bounds  Rect
	Enabled bool
	OnClick func()

	hovered bool
}

// Selector cycles through a closed set of options on click. The option set
// is fixed at construction, so every value it can emit is valid by
// construction.
type Selector struct {
	Label    string // prefix shown before the current option
	Options  []string
	Index    int
	Bounds   Rect
	Visible  bool
	OnChange func(value string)

	hovered bool
}

// Value returns the currently selected option.
func (s *Selector) Value() string {
	return s.Options[s.Index]
}

// advance moves to the next option, wrapping, and fires OnChange.
func (s *Selector) advance() {
	s.Index = (s.Index + 1) % len(s.Options)
	if s.OnChange != nil {
		s.OnChange(s.Options[s.Index])
	}
}

// ControlStrip is the navigation surface under the chart: previous/next
// buttons, the scene indicator, and the filter selector with its summary
// caption. It mirrors story state and never holds narrative state itself.
type ControlStrip struct {
	Bounds Rect
	Prev   *Button
	Next   *Button
	Filter *Selector

	story     *Story
	indicator string
	caption   string
}

const (
	buttonWidth  = 96
	buttonHeight = 30
	stripPad     = 16
)

// NewControlStrip builds the strip for a story and subscribes to its
// renders so nav enablement, indicator text, and filter visibility always
// track the current scene.
func NewControlStrip(story *Story, bounds Rect) *ControlStrip {
	cs := &ControlStrip{Bounds: bounds, story: story}

	cs.Prev = &Button{
		Label: "< Previous",
		Bounds: Rect{
			X: bounds.X + stripPad, Y: bounds.Y + stripPad,
			Width: buttonWidth, Height: buttonHeight,
		},
		OnClick: story.Previous,
	}
	cs.Next = &Button{
		Label: "Next >",
		Bounds: Rect{
			X: bounds.X + bounds.Width - stripPad - buttonWidth, Y: bounds.Y + stripPad,
			Width: buttonWidth, Height: buttonHeight,
		},
		OnClick: story.Next,
	}

	options := append([]string{FilterAll}, story.Chart().Dataset().Categories()...)
	cs.Filter = &Selector{
		Label:   "Category",
		Options: options,
		Bounds: Rect{
			X: bounds.X + bounds.Width/2 - 90, Y: bounds.Y + stripPad + buttonHeight + 10,
			Width: 180, Height: 24,
		},
		OnChange: story.SetFilter,
	}

	story.SetOnChange(cs.sync)
	return cs
}

// sync refreshes everything derived from story state. Registered as the
// story's change callback, so it runs after every scene render.
func (cs *ControlStrip) sync() {
	cs.indicator = cs.story.Indicator()
	cs.Prev.Enabled = cs.story.CanPrevious()
	cs.Next.Enabled = cs.story.CanNext()
	cs.Filter.Visible = cs.story.FilterVisible()

	// The filter can change without a selector click (scripted walkthroughs
	// call Story.SetFilter directly), so the selector follows the story, not
	// the other way around.
	for i, opt := range cs.Filter.Options {
		if opt == cs.story.Filter() {
			cs.Filter.Index = i
			break
		}
	}

	cs.caption = ""
	if cs.Filter.Visible && cs.story.Filter() != FilterAll {
		sum, err := Summarize(cs.story.Chart().Dataset(), cs.story.Filter())
		if err == nil {
			cs.caption = fmt.Sprintf("%s: %d cars, mean %.1f mpg, median %.1f mpg",
				sum.Category, sum.Count, sum.MeanFuelEconomy, sum.MedianFuelEconomy)
		}
	}
}

// Indicator returns the scene indicator text.
func (cs *ControlStrip) Indicator() string {
	return cs.indicator
}

// Caption returns the filter summary caption, empty when none applies.
func (cs *ControlStrip) Caption() string {
	return cs.caption
}

// targetAt returns the interactive widget at (x, y): an enabled button or
// the visible selector. Nil when the point hits nothing clickable.
func (cs *ControlStrip) targetAt(x, y float64) any {
	if cs.Prev.Enabled && cs.Prev.Bounds.Contains(x, y) {
		return cs.Prev
	}
	if cs.Next.Enabled && cs.Next.Bounds.Contains(x, y) {
		return cs.Next
	}
	if cs.Filter.Visible && cs.Filter.Bounds.Contains(x, y) {
		return cs.Filter
	}
	return nil
}

// activate fires the widget's action. Called on click (press and release
// over the same widget).
func (cs *ControlStrip) activate(target any) {
	switch w := target.(type) {
	case *Button:
		if w.OnClick != nil {
			w.OnClick()
		}
	case *Selector:
		w.advance()
	}
}

// pointerMoved updates hover styling.
func (cs *ControlStrip) pointerMoved(x, y float64) {
	cs.Prev.hovered = cs.Prev.Enabled && cs.Prev.Bounds.Contains(x, y)
	cs.Next.hovered = cs.Next.Enabled && cs.Next.Bounds.Contains(x, y)
	cs.Filter.hovered = cs.Filter.Visible && cs.Filter.Bounds.Contains(x, y)
}

// Draw renders the strip.
func (cs *ControlStrip) Draw(dst *ebiten.Image) {
	cs.drawButton(dst, cs.Prev)
	cs.drawButton(dst, cs.Next)

	midX := cs.Bounds.X + cs.Bounds.Width/2
	drawTextCentered(dst, cs.indicator, midX, cs.Bounds.Y+stripPad+8, ColorText)

	if cs.Filter.Visible {
		cs.drawSelector(dst, cs.Filter)
		if cs.caption != "" {
			drawTextCentered(dst, cs.caption, midX, cs.Filter.Bounds.Y+cs.Filter.Bounds.Height+8, ColorTextDim)
		}
	}
}

func (cs *ControlStrip) drawButton(dst *ebiten.Image, b *Button) {
	bg := Color{R: 0.16, G: 0.18, B: 0.23, A: 1}
	fg := ColorText
	if !b.Enabled {
		bg = Color{R: 0.12, G: 0.13, B: 0.16, A: 1}
		fg = ColorTextDim
	} else if b.hovered {
		bg = Color{R: 0.22, G: 0.25, B: 0.31, A: 1}
	}
	r := b.Bounds
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), bg.rgba(), false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, ColorAxis.rgba(), false)
	drawTextCentered(dst, b.Label, r.X+r.Width/2, r.Y+(r.Height-lineHeight)/2+1, fg)
}

func (cs *ControlStrip) drawSelector(dst *ebiten.Image, sel *Selector) {
	bg := Color{R: 0.16, G: 0.18, B: 0.23, A: 1}
	if sel.hovered {
		bg = Color{R: 0.22, G: 0.25, B: 0.31, A: 1}
	}
	r := sel.Bounds
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), bg.rgba(), false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, ColorAxis.rgba(), false)
	label := fmt.Sprintf("%s: %s", sel.Label, sel.Value())
	drawTextCentered(dst, label, r.X+r.Width/2, r.Y+(r.Height-lineHeight)/2+1, ColorText)
}
