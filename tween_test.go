package plotline

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenValueReachesTarget(t *testing.T) {
	v := 10.0
	g := TweenValue(&v, 20, 1.0, ease.Linear)

	g.Update(0.5)
	if math.Abs(v-15) > 1e-4 {
		t.Errorf("midway value = %g, want 15", v)
	}
	if g.Done {
		t.Error("group should not be done midway")
	}

	g.Update(0.5)
	if math.Abs(v-20) > 1e-4 {
		t.Errorf("final value = %g, want 20", v)
	}
	if !g.Done {
		t.Error("group should be done at the end")
	}
}

func TestTweenGroupUpdateAfterDone(t *testing.T) {
	v := 0.0
	g := TweenValue(&v, 1, 0.1, ease.Linear)
	g.Update(1)
	final := v
	g.Update(1)
	if v != final {
		t.Errorf("value moved after done: %g -> %g", final, v)
	}
}

func TestTweenVisual(t *testing.T) {
	m := &Mark{Radius: 4, Alpha: 0.5}
	g := TweenVisual(m, VisualState{Radius: 8, Alpha: 1}, 1.0, ease.Linear)

	g.Update(1.0)
	if math.Abs(m.Radius-8) > 1e-4 {
		t.Errorf("Radius = %g, want 8", m.Radius)
	}
	if math.Abs(m.Alpha-1) > 1e-4 {
		t.Errorf("Alpha = %g, want 1", m.Alpha)
	}
}

func TestTweenGroupFullPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when adding a fifth field")
		}
	}()
	g := &TweenGroup{}
	var f float64
	for i := 0; i < 5; i++ {
		g.add(&f, 1, 1, ease.Linear)
	}
}
