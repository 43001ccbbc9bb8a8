package plotline

import "fmt"

// FilterAll is the filter value meaning no category is isolated.
const FilterAll = "All"

// Scene is one step of the narrative: a title, a highlight rule, the
// callouts to show, and which fixtures (regression line, filter control)
// are visible. Highlight and Annotations receive the current filter as an
// explicit parameter; most scenes ignore it.
type Scene struct {
	Title          string
	Highlight      func(filter string) Highlight
	Annotations    func(filter string) []Annotation
	ShowRegression bool
	ShowFilter     bool
}

// Story is the scene controller: a bounded, reversible state machine over a
// fixed scene sequence. Its whole state is the scene index and the current
// filter value; everything else is derived on (re)entry.
type Story struct {
	chart      *Chart
	scenes     []Scene
	regression Regression

	index  int
	filter string

	onChange func()
}

// NewStory creates a story over the chart and enters the first scene.
// The regression is fit once here and never recomputed.
// Panics if scenes is empty.
func NewStory(chart *Chart, scenes []Scene) *Story {
	if len(scenes) == 0 {
		panic("plotline: story needs at least one scene")
	}
	s := &Story{
		chart:      chart,
		scenes:     scenes,
		regression: FitRegression(chart.Dataset()),
		filter:     FilterAll,
	}
	s.apply()
	return s
}

// Chart returns the chart the story renders onto.
func (s *Story) Chart() *Chart {
	return s.chart
}

// Index returns the current scene index, always within [0, SceneCount-1].
func (s *Story) Index() int {
	return s.index
}

// SceneCount returns the number of scenes.
func (s *Story) SceneCount() int {
	return len(s.scenes)
}

// Current returns the current scene.
func (s *Story) Current() Scene {
	return s.scenes[s.index]
}

// Filter returns the current filter value ("All" or a category).
func (s *Story) Filter() string {
	return s.filter
}

// Regression returns the story's precomputed fit.
func (s *Story) Regression() Regression {
	return s.regression
}

// CanNext reports whether a next scene exists.
func (s *Story) CanNext() bool {
	return s.index < len(s.scenes)-1
}

// CanPrevious reports whether a previous scene exists.
func (s *Story) CanPrevious() bool {
	return s.index > 0
}

// FilterVisible reports whether the filter control applies to the current
// scene. Hidden everywhere except the scenes that opt in.
func (s *Story) FilterVisible() bool {
	return s.scenes[s.index].ShowFilter
}

// Indicator returns the scene indicator text, e.g. "Scene 1 of 3: title".
func (s *Story) Indicator() string {
	return fmt.Sprintf("Scene %d of %d: %s", s.index+1, len(s.scenes), s.scenes[s.index].Title)
}

// SetOnChange registers a callback fired after every scene render, for
// control surfaces that mirror story state (nav enablement, indicator
// text, filter visibility).
func (s *Story) SetOnChange(fn func()) {
	s.onChange = fn
	if fn != nil {
		fn()
	}
}

// --- Transitions ---

// Next advances to the following scene. A no-op at the last scene.
func (s *Story) Next() {
	if !s.CanNext() {
		return
	}
	s.index++
	s.apply()
}

// Previous returns to the preceding scene. A no-op at the first scene.
func (s *Story) Previous() {
	if !s.CanPrevious() {
		return
	}
	s.index--
	s.apply()
}

// SetFilter changes the filter value and re-renders the current scene.
// Only meaningful where the filter control is visible; elsewhere the call
// is a no-op, so filter changes are never observable on earlier scenes.
func (s *Story) SetFilter(filter string) {
	if !s.FilterVisible() || filter == s.filter {
		return
	}
	s.filter = filter
	s.apply()
}

// Reenter re-renders the current scene from scratch. Renders are idempotent
// given the story state, so this is safe at any time.
func (s *Story) Reenter() {
	s.apply()
}

// apply is the per-scene render contract: clear transient decorations,
// retarget marks for the scene's highlight, restore whichever fixtures the
// scene wants, then notify the control surface. Marks survive across calls;
// only their targets change.
func (s *Story) apply() {
	scene := s.scenes[s.index]

	s.chart.ClearDecorations()
	var pred Highlight
	if scene.Highlight != nil {
		pred = scene.Highlight(s.filter)
	}
	s.chart.SetHighlight(pred)
	if scene.ShowRegression {
		s.chart.ShowRegression(s.regression)
	}
	if scene.Annotations != nil {
		for _, a := range scene.Annotations(s.filter) {
			s.chart.AddAnnotation(a)
		}
	}
	if s.onChange != nil {
		s.onChange()
	}
}
