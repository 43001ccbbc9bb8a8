package plotline

import (
	"reflect"
	"testing"
)

// newTestChart builds a chart over the cars dataset with instant
// transitions so tests can assert on state without pumping frames.
func newTestChart() *Chart {
	c := NewChart(Cars(), Rect{X: 60, Y: 40, Width: 560, Height: 400})
	c.SetTransition(0)
	return c
}

func TestNewChartScales(t *testing.T) {
	c := newTestChart()

	x := c.XScale()
	if x.RangeMin != 60 || x.RangeMax != 620 {
		t.Errorf("x range = %g..%g, want 60..620", x.RangeMin, x.RangeMax)
	}
	y := c.YScale()
	if y.RangeMin != 440 || y.RangeMax != 40 {
		t.Errorf("y range = %g..%g, want 440..40 (inverted)", y.RangeMin, y.RangeMax)
	}

	// The padded domains must contain every record.
	for _, r := range c.Dataset().Records() {
		if r.Horsepower < x.DomainMin || r.Horsepower > x.DomainMax {
			t.Errorf("%s horsepower %g outside x domain", r.Name, r.Horsepower)
		}
		if r.FuelEconomy < y.DomainMin || r.FuelEconomy > y.DomainMax {
			t.Errorf("%s fuel economy %g outside y domain", r.Name, r.FuelEconomy)
		}
	}
}

func TestChartOneMarkPerRecord(t *testing.T) {
	c := newTestChart()
	if c.Marks().Len() != c.Dataset().Len() {
		t.Fatalf("marks = %d, want %d", c.Marks().Len(), c.Dataset().Len())
	}
	for _, r := range c.Dataset().Records() {
		if c.Marks().ByName(r.Name) == nil {
			t.Errorf("no mark for %s", r.Name)
		}
	}
}

func TestChartSetHighlight(t *testing.T) {
	c := newTestChart()
	c.SetHighlight(HighlightName(CarsOutlier))
	if got := c.Highlighted(); !reflect.DeepEqual(got, []string{CarsOutlier}) {
		t.Errorf("Highlighted() = %v, want [%s]", got, CarsOutlier)
	}

	c.SetHighlight(nil)
	if got := c.Highlighted(); got != nil {
		t.Errorf("Highlighted() after nil = %v, want none", got)
	}
}

func TestChartDecorations(t *testing.T) {
	c := newTestChart()
	c.ShowRegression(Regression{Slope: -1, Intercept: 50})
	c.AddAnnotation(Annotation{AnchorX: 200, AnchorY: 30, Lines: []string{"x"}})

	if _, ok := c.Regression(); !ok {
		t.Error("regression should be shown")
	}
	if len(c.Annotations()) != 1 {
		t.Fatalf("annotations = %d, want 1", len(c.Annotations()))
	}

	c.ClearDecorations()
	if _, ok := c.Regression(); ok {
		t.Error("regression should be cleared")
	}
	if len(c.Annotations()) != 0 {
		t.Error("annotations should be cleared")
	}
}

func TestChartClearDecorationsKeepsMarks(t *testing.T) {
	c := newTestChart()
	c.SetHighlight(HighlightCategory("Truck"))
	before := c.Marks().Marks()[0]

	c.ClearDecorations()

	if c.Marks().Marks()[0] != before {
		t.Error("ClearDecorations must not touch marks")
	}
	if len(c.Highlighted()) == 0 {
		t.Error("highlight survives ClearDecorations; only SetHighlight changes it")
	}
}

func TestChartHover(t *testing.T) {
	c := newTestChart()
	m := c.Marks().ByName(CarsOutlier)

	c.PointerMoved(m.X, m.Y)
	if c.Hovered() != m {
		t.Fatalf("Hovered() = %v, want the outlier mark", c.Hovered())
	}

	// Outside the plot clears the hover even if numerically near a mark.
	c.PointerMoved(-5, -5)
	if c.Hovered() != nil {
		t.Error("hover should clear outside the plot")
	}
}
