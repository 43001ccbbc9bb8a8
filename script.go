package plotline

import (
	"encoding/json"
	"fmt"
	"os"
)

// scriptStep represents a single action in a story script.
type scriptStep struct {
	Action string `json:"action"`
	Filter string `json:"filter,omitempty"`
	Frames int    `json:"frames,omitempty"`
	Path   string `json:"path,omitempty"`
}

// storyScript is the top-level JSON structure for a story script.
type storyScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences story actions and captures across frames for
// automated visual testing. Attach to a Stage via SetScriptRunner.
//
// Supported actions: "next", "previous", "filter" (with filter),
// "wait" (with frames), "screenshot" (queued PNG of the frame), and
// "svg" (with path, written immediately from the target visual state).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadStoryScript parses a JSON story script.
func LoadStoryScript(jsonData []byte) (*ScriptRunner, error) {
	var script storyScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse story script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse story script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner to the stage. The runner's step method
// is called from Stage.Update before input processing each frame.
func (st *Stage) SetScriptRunner(r *ScriptRunner) {
	st.script = r
}

// Done reports whether every step has executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step executes at most one script action per frame. Waits burn one frame
// per count so tween transitions get real frames to play out.
func (r *ScriptRunner) step(st *Stage) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	s := r.steps[r.cursor]
	r.cursor++

	switch s.Action {
	case "next":
		st.Story().Next()
	case "previous":
		st.Story().Previous()
	case "filter":
		st.Story().SetFilter(s.Filter)
	case "wait":
		if s.Frames > 0 {
			r.waitCount = s.Frames
		}
	case "screenshot":
		st.Screenshot(s.Path)
	case "svg":
		if err := writeSVGFile(st, s.Path); err != nil {
			fmt.Fprintf(os.Stderr, "[plotline] script: %v\n", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "[plotline] script: unknown action %q\n", s.Action)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
