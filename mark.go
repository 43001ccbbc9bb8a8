package plotline

import "github.com/tanema/gween/ease"

// VisualState is the declarative target a mark interpolates toward. Renders
// set targets; the tween engine owns the in-between frames, so tests can
// assert on targets without waiting out timers.
type VisualState struct {
	Radius float64
	Alpha  float64
}

// The three mark styles. Emphasis is two-way only: a mark is either
// emphasized or faded when a highlight is active, uniform baseline when not.
// No partial or graded emphasis exists.
var (
	VisualBaseline = VisualState{Radius: 4.5, Alpha: 0.85}
	VisualEmphasis = VisualState{Radius: 8, Alpha: 1}
	VisualFaded    = VisualState{Radius: 3, Alpha: 0.25}
)

// DefaultTransition is the emphasis transition duration in seconds.
// Transitions are fire-and-forget: a retarget mid-flight simply starts a new
// tween from the current value, so rapid scene changes settle last-writer-wins.
const DefaultTransition float32 = 0.6

// Mark is the persistent visual of one record. A mark is created once per
// record when the chart is built and lives for the chart's lifetime; renders
// only retarget it. That identity is what makes scene transitions read as
// emphasis changes rather than redraws.
type Mark struct {
	Record Record
	X, Y   float64 // pixel position, fixed once scales are derived

	// Current interpolated state, written by the tween each frame.
	Radius float64
	Alpha  float64

	// Highlighted reports which side of the partition the mark is on.
	// Meaningless (false) while no highlight is active.
	Highlighted bool

	target VisualState
	tween  *TweenGroup
}

// Target returns the visual state the mark is heading toward.
func (m *Mark) Target() VisualState {
	return m.target
}

// Retarget points the mark at a new visual state, tweening from wherever it
// currently is. Retargeting to the current target is harmless.
func (m *Mark) Retarget(v VisualState, duration float32) {
	m.target = v
	if duration <= 0 {
		m.Radius = v.Radius
		m.Alpha = v.Alpha
		m.tween = nil
		return
	}
	m.tween = TweenVisual(m, v, duration, ease.OutQuad)
}

// Update advances the mark's tween by dt seconds.
func (m *Mark) Update(dt float32) {
	if m.tween == nil || m.tween.Done {
		return
	}
	m.tween.Update(dt)
}

// Color returns the mark's draw color for its current emphasis side,
// with the interpolated alpha applied.
func (m *Mark) Color() Color {
	c := ColorMark
	if m.Highlighted {
		c = ColorEmphasis
	}
	return c.WithAlpha(m.Alpha)
}

// --- MarkSet ---

// MarkSet maintains the one-to-one correspondence between records and marks,
// keyed by record name. Marks are created once and never replaced.
type MarkSet struct {
	marks  []*Mark
	byName map[string]*Mark
}

// NewMarkSet creates one baseline mark per record, positioned through the
// given scales.
func NewMarkSet(d *Dataset, x, y LinearScale) *MarkSet {
	ms := &MarkSet{
		marks:  make([]*Mark, 0, d.Len()),
		byName: make(map[string]*Mark, d.Len()),
	}
	for _, r := range d.Records() {
		m := &Mark{
			Record: r,
			X:      x.Apply(r.Horsepower),
			Y:      y.Apply(r.FuelEconomy),
			Radius: VisualBaseline.Radius,
			Alpha:  VisualBaseline.Alpha,
			target: VisualBaseline,
		}
		ms.marks = append(ms.marks, m)
		ms.byName[r.Name] = m
	}
	return ms
}

// Apply retargets every mark for the given highlight. A nil highlight sends
// all marks to the uniform baseline; otherwise marks are partitioned into
// emphasized and faded.
func (ms *MarkSet) Apply(pred Highlight, duration float32) {
	for _, m := range ms.marks {
		if pred == nil {
			m.Highlighted = false
			m.Retarget(VisualBaseline, duration)
			continue
		}
		if pred(m.Record) {
			m.Highlighted = true
			m.Retarget(VisualEmphasis, duration)
		} else {
			m.Highlighted = false
			m.Retarget(VisualFaded, duration)
		}
	}
}

// Update advances all mark tweens by dt seconds.
func (ms *MarkSet) Update(dt float32) {
	for _, m := range ms.marks {
		m.Update(dt)
	}
}

// Len returns the number of marks.
func (ms *MarkSet) Len() int {
	return len(ms.marks)
}

// Marks returns the marks in record order. The returned slice MUST NOT be
// mutated.
func (ms *MarkSet) Marks() []*Mark {
	return ms.marks
}

// ByName returns the mark for the named record, or nil.
func (ms *MarkSet) ByName(name string) *Mark {
	return ms.byName[name]
}

// Highlighted returns the names of the currently emphasized marks, in
// record order.
func (ms *MarkSet) Highlighted() []string {
	var names []string
	for _, m := range ms.marks {
		if m.Highlighted {
			names = append(names, m.Record.Name)
		}
	}
	return names
}

// At returns the topmost mark whose hit area contains the pixel point
// (x, y), or nil. The hit radius never shrinks below the baseline radius so
// faded marks stay hoverable.
func (ms *MarkSet) At(x, y float64) *Mark {
	for i := len(ms.marks) - 1; i >= 0; i-- {
		m := ms.marks[i]
		r := m.Radius
		if r < VisualBaseline.Radius {
			r = VisualBaseline.Radius
		}
		dx, dy := x-m.X, y-m.Y
		if dx*dx+dy*dy <= r*r {
			return m
		}
	}
	return nil
}
