package plotline

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Chart draws and updates the scatter plot: persistent point marks, an
// optional regression overlay, and annotation callouts. It owns no narrative
// state; the Story tells it what to show and the chart keeps mark identity
// stable so repeated renders animate instead of flicker.
type Chart struct {
	dataset *Dataset
	plot    Rect // plot area in pixels (axes sit just outside it)
	xScale  LinearScale
	yScale  LinearScale
	marks   *MarkSet

	// Transient decorations, cleared at the start of every scene render.
	regression    Regression
	hasRegression bool
	annotations   []Annotation

	highlight  Highlight
	transition float32

	// Hover state is owned by the chart, outside narrative state.
	hover *Mark

	XLabel, YLabel string
}

// extentPad widens the data extents so edge marks clear the plot border.
const extentPad = 0.08

// NewChart builds a chart over the dataset, deriving both scales from the
// dataset extents once. The plot rectangle is the data region; leave room
// around it for tick labels and axis titles.
func NewChart(d *Dataset, plot Rect) *Chart {
	xMin, xMax := d.HorsepowerExtent()
	xMin, xMax = PadExtent(xMin, xMax, extentPad)
	yMin, yMax := d.FuelEconomyExtent()
	yMin, yMax = PadExtent(yMin, yMax, extentPad)

	// Y runs backwards: larger fuel economy maps to smaller pixel Y.
	x := NewLinearScale(xMin, xMax, plot.X, plot.X+plot.Width)
	y := NewLinearScale(yMin, yMax, plot.Y+plot.Height, plot.Y)

	return &Chart{
		dataset:    d,
		plot:       plot,
		xScale:     x,
		yScale:     y,
		marks:      NewMarkSet(d, x, y),
		transition: DefaultTransition,
		XLabel:     "Horsepower",
		YLabel:     "Fuel economy (mpg)",
	}
}

// Dataset returns the dataset the chart was built over.
func (c *Chart) Dataset() *Dataset {
	return c.dataset
}

// XScale returns the horizontal scale.
func (c *Chart) XScale() LinearScale {
	return c.xScale
}

// YScale returns the vertical scale.
func (c *Chart) YScale() LinearScale {
	return c.yScale
}

// Marks returns the chart's mark set.
func (c *Chart) Marks() *MarkSet {
	return c.marks
}

// SetTransition overrides the emphasis transition duration in seconds.
// Zero applies retargets instantly, which tests use.
func (c *Chart) SetTransition(seconds float32) {
	c.transition = seconds
}

// --- Render operations (called by the Story per scene render) ---

// SetHighlight retargets every mark for the given predicate. A nil predicate
// returns all marks to the uniform baseline.
func (c *Chart) SetHighlight(pred Highlight) {
	c.highlight = pred
	c.marks.Apply(pred, c.transition)
}

// Highlight returns the active predicate, nil when none.
func (c *Chart) Highlight() Highlight {
	return c.highlight
}

// Highlighted returns the names of the emphasized marks, in record order.
func (c *Chart) Highlighted() []string {
	return c.marks.Highlighted()
}

// ShowRegression draws the fitted line across the plot until the next
// ClearDecorations.
func (c *Chart) ShowRegression(r Regression) {
	c.regression = r
	c.hasRegression = true
}

// Regression returns the displayed regression and whether one is shown.
func (c *Chart) Regression() (Regression, bool) {
	return c.regression, c.hasRegression
}

// AddAnnotation adds a callout for the current scene.
func (c *Chart) AddAnnotation(a Annotation) {
	c.annotations = append(c.annotations, a)
}

// Annotations returns the current callouts. The returned slice MUST NOT be
// mutated.
func (c *Chart) Annotations() []Annotation {
	return c.annotations
}

// ClearDecorations removes the regression overlay and all annotations.
// Marks are untouched: they are re-styled, never recreated, so enter/update
// transitions animate instead of flicker.
func (c *Chart) ClearDecorations() {
	c.hasRegression = false
	c.annotations = c.annotations[:0]
}

// --- Per-frame ---

// Update advances mark tweens by dt seconds.
func (c *Chart) Update(dt float32) {
	c.marks.Update(dt)
}

// PointerMoved tells the chart where the pointer is so it can maintain its
// hover tooltip. Coordinates are in pixels; points outside the plot clear
// the hover.
func (c *Chart) PointerMoved(x, y float64) {
	if !c.plot.Contains(x, y) {
		c.hover = nil
		return
	}
	c.hover = c.marks.At(x, y)
}

// Hovered returns the mark under the pointer, or nil.
func (c *Chart) Hovered() *Mark {
	return c.hover
}

// --- Drawing ---

// Draw renders axes, marks, the regression overlay, callouts, and the hover
// tooltip onto dst.
func (c *Chart) Draw(dst *ebiten.Image) {
	c.drawAxes(dst)
	if c.hasRegression {
		c.drawRegression(dst)
	}
	for _, m := range c.marks.Marks() {
		vector.DrawFilledCircle(dst, float32(m.X), float32(m.Y), float32(m.Radius), m.Color().rgba(), true)
	}
	for _, a := range c.annotations {
		c.drawCallout(dst, a.Layout(c.xScale, c.yScale))
	}
	if c.hover != nil {
		c.drawTooltip(dst, c.hover)
	}
}

func (c *Chart) drawAxes(dst *ebiten.Image) {
	p := c.plot
	left := float32(p.X)
	right := float32(p.X + p.Width)
	top := float32(p.Y)
	bottom := float32(p.Y + p.Height)

	for _, t := range c.xScale.Ticks(8) {
		x := float32(c.xScale.Apply(t))
		vector.StrokeLine(dst, x, top, x, bottom, 1, ColorGrid.rgba(), false)
		drawTextCentered(dst, fmt.Sprintf("%g", t), float64(x), float64(bottom)+6, ColorTextDim)
	}
	for _, t := range c.yScale.Ticks(6) {
		y := float32(c.yScale.Apply(t))
		vector.StrokeLine(dst, left, y, right, y, 1, ColorGrid.rgba(), false)
		drawTextRight(dst, fmt.Sprintf("%g", t), float64(left)-8, float64(y)-7, ColorTextDim)
	}

	vector.StrokeLine(dst, left, bottom, right, bottom, 1.5, ColorAxis.rgba(), false)
	vector.StrokeLine(dst, left, top, left, bottom, 1.5, ColorAxis.rgba(), false)

	drawTextCentered(dst, c.XLabel, p.X+p.Width/2, p.Y+p.Height+24, ColorText)
	drawText(dst, c.YLabel, p.X-44, p.Y-24, ColorText)
}

// drawRegression clips the fitted line to the plot's horizontal span.
func (c *Chart) drawRegression(dst *ebiten.Image) {
	x0 := c.xScale.DomainMin
	x1 := c.xScale.DomainMax
	vector.StrokeLine(dst,
		float32(c.xScale.Apply(x0)), float32(c.yScale.Apply(c.regression.ValueAt(x0))),
		float32(c.xScale.Apply(x1)), float32(c.yScale.Apply(c.regression.ValueAt(x1))),
		2, ColorRegression.rgba(), true)
}

func (c *Chart) drawCallout(dst *ebiten.Image, co Callout) {
	// Connector starts just outside the anchored point.
	dx := co.ElbowX - co.AnchorX
	dy := co.ElbowY - co.AnchorY
	dist := math.Hypot(dx, dy)
	startX, startY := co.AnchorX, co.AnchorY
	if dist > calloutGap {
		startX += dx / dist * calloutGap
		startY += dy / dist * calloutGap
	}
	vector.StrokeLine(dst, float32(startX), float32(startY), float32(co.ElbowX), float32(co.ElbowY), 1, ColorAnnotation.rgba(), true)
	vector.StrokeLine(dst, float32(co.ElbowX), float32(co.ElbowY), float32(co.TextX), float32(co.ElbowY), 1, ColorAnnotation.rgba(), true)

	pad := 4.0
	y := co.TextY - lineHeight/2
	x := co.TextX + pad
	if co.TextX < co.ElbowX {
		// Text block sits to the left of the connector.
		for i, line := range co.Lines {
			drawTextRight(dst, line, co.TextX-pad, y+float64(i)*lineHeight, ColorAnnotation)
		}
		return
	}
	for i, line := range co.Lines {
		drawText(dst, line, x, y+float64(i)*lineHeight, ColorAnnotation)
	}
}

func (c *Chart) drawTooltip(dst *ebiten.Image, m *Mark) {
	lines := []string{
		m.Record.Name,
		fmt.Sprintf("%g hp, %g mpg", m.Record.Horsepower, m.Record.FuelEconomy),
		fmt.Sprintf("%s, %g lb", m.Record.Category, m.Record.Weight),
	}
	var w float64
	for _, line := range lines {
		lw, _ := measureText(line)
		if lw > w {
			w = lw
		}
	}
	pad := 6.0
	boxW := w + pad*2
	boxH := float64(len(lines))*lineHeight + pad*2

	x := m.X + 12
	y := m.Y - boxH - 4
	// Keep the box inside the plot.
	if x+boxW > c.plot.X+c.plot.Width {
		x = m.X - boxW - 12
	}
	if y < c.plot.Y {
		y = m.Y + 12
	}

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(boxW), float32(boxH), Color{R: 0, G: 0, B: 0, A: 0.8}.rgba(), false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(boxW), float32(boxH), 1, ColorAxis.rgba(), false)
	for i, line := range lines {
		drawText(dst, line, x+pad, y+pad+float64(i)*lineHeight, ColorText)
	}
}
