package plotline

import "testing"

// runScript attaches the runner and pumps frames until it finishes. Each
// frame gets an injected pointer move so the input pass never touches the
// real mouse.
func runScript(st *Stage, r *ScriptRunner) int {
	st.SetScriptRunner(r)
	frames := 0
	for !r.Done() {
		st.InjectMove(1, 1)
		st.Update()
		frames++
		if frames > 1000 {
			break
		}
	}
	return frames
}

func TestLoadStoryScript(t *testing.T) {
	r, err := LoadStoryScript([]byte(`{"steps":[{"action":"next"},{"action":"wait","frames":3}]}`))
	if err != nil {
		t.Fatalf("LoadStoryScript: %v", err)
	}
	if len(r.steps) != 2 {
		t.Errorf("steps = %d, want 2", len(r.steps))
	}
	if r.Done() {
		t.Error("fresh runner should not be done")
	}
}

func TestLoadStoryScriptErrors(t *testing.T) {
	if _, err := LoadStoryScript([]byte(`{not json`)); err == nil {
		t.Error("malformed JSON should error")
	}
	if _, err := LoadStoryScript([]byte(`{"steps":[]}`)); err == nil {
		t.Error("empty steps should error")
	}
}

func TestScriptDrivesStory(t *testing.T) {
	r, err := LoadStoryScript([]byte(`{"steps":[
		{"action":"next"},
		{"action":"next"},
		{"action":"filter","filter":"Sports"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	st := newTestStage()
	runScript(st, r)

	if got := st.Story().Index(); got != 2 {
		t.Errorf("Index() = %d, want 2", got)
	}
	if got := st.Story().Filter(); got != "Sports" {
		t.Errorf("Filter() = %q, want Sports", got)
	}
}

func TestScriptFilterSyncsSelector(t *testing.T) {
	r, err := LoadStoryScript([]byte(`{"steps":[
		{"action":"next"},
		{"action":"next"},
		{"action":"filter","filter":"Sports"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	st := newTestStage()
	runScript(st, r)

	// The drawn selector label must agree with the story on a captured
	// frame, even though no selector click happened.
	if got, want := st.Controls().Filter.Value(), st.Story().Filter(); got != want {
		t.Errorf("Filter.Value() = %q, story filter %q", got, want)
	}
	if got := st.Story().Filter(); got != "Sports" {
		t.Errorf("Filter() = %q, want Sports", got)
	}
}

func TestScriptWaitBurnsFrames(t *testing.T) {
	r, err := LoadStoryScript([]byte(`{"steps":[
		{"action":"next"},
		{"action":"wait","frames":10},
		{"action":"previous"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	st := newTestStage()
	frames := runScript(st, r)

	if got := st.Story().Index(); got != 0 {
		t.Errorf("Index() = %d, want 0", got)
	}
	// 3 action frames plus 10 waited frames, then one frame to notice the end.
	if frames < 13 {
		t.Errorf("script finished in %d frames, want at least 13", frames)
	}
}

func TestScriptUnknownActionSkipped(t *testing.T) {
	r, err := LoadStoryScript([]byte(`{"steps":[
		{"action":"teleport"},
		{"action":"next"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	st := newTestStage()
	runScript(st, r)

	if got := st.Story().Index(); got != 1 {
		t.Errorf("Index() = %d, want 1 (unknown action skipped)", got)
	}
	if !r.Done() {
		t.Error("runner should finish past an unknown action")
	}
}

func TestScriptScreenshotQueues(t *testing.T) {
	r, err := LoadStoryScript([]byte(`{"steps":[{"action":"screenshot","path":"scene-one"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	st := newTestStage()
	runScript(st, r)

	if len(st.screenshotQueue) != 1 || st.screenshotQueue[0] != "scene-one" {
		t.Errorf("screenshotQueue = %v, want [scene-one]", st.screenshotQueue)
	}
}
