package plotline

// syntheticPointerEvent is a single injected pointer event in screen
// coordinates, identical to what the mouse path produces.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame's input pass.
func (st *Stage) InjectPress(x, y float64) {
	st.injectQueue = append(st.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with no button held, for driving hover.
func (st *Stage) InjectMove(x, y float64) {
	st.injectQueue = append(st.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (st *Stage) InjectRelease(x, y float64) {
	st.injectQueue = append(st.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same screen coordinates. Consumes two frames.
func (st *Stage) InjectClick(x, y float64) {
	st.InjectPress(x, y)
	st.InjectRelease(x, y)
}

// processInjectedInput pops one queued event and feeds it through the
// pointer state machine. Returns true if an event was consumed (real mouse
// input is skipped that frame).
func (st *Stage) processInjectedInput() bool {
	if len(st.injectQueue) == 0 {
		return false
	}
	evt := st.injectQueue[0]
	copy(st.injectQueue, st.injectQueue[1:])
	st.injectQueue = st.injectQueue[:len(st.injectQueue)-1]

	st.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
