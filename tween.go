package plotline

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenVisual, TweenValue) and call Update(dt)
// each frame; the group writes interpolated values straight into the target
// fields.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Once every tween has finished, Done is set and further calls are
// no-ops.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// add registers one field animation. Panics when the group is full.
func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	if g.count == len(g.tweens) {
		panic("plotline: tween group is full")
	}
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenVisual creates a TweenGroup that animates a mark's radius and alpha
// toward the given target state over duration seconds.
func TweenVisual(m *Mark, to VisualState, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&m.Radius, to.Radius, duration, fn)
	g.add(&m.Alpha, to.Alpha, duration, fn)
	return g
}

// TweenValue creates a TweenGroup animating a single float64 field. The
// built-in renders only need TweenVisual; this is the general constructor
// for callers animating their own fields.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(field, to, duration, fn)
	return g
}
