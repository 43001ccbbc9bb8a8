package plotline

import (
	"image/color"
	"testing"
)

func TestSafeFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Scene One", "scene_one"},
		{"scene-1.final", "scene-1.final"},
		{"  Padded  ", "padded"},
		{"", "capture"},
		{"cafe/au:lait", "cafe_au_lait"},
	}
	for _, c := range cases {
		if got := safeFilename(c.in); got != c.want {
			t.Errorf("safeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	if got := unpremultiply(10, 20, 30, 255); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("opaque pixel changed: %v", got)
	}
	if got := unpremultiply(0, 0, 0, 0); got != (color.NRGBA{}) {
		t.Errorf("transparent pixel changed: %v", got)
	}
	// Half-covered white: premultiplied (128,128,128,128) unwinds to 255.
	got := unpremultiply(128, 128, 128, 128)
	if got.R != 255 || got.A != 128 {
		t.Errorf("unpremultiply(128,...) = %v, want full channels at half alpha", got)
	}
}

func TestScreenshotQueue(t *testing.T) {
	st := newTestStage()
	st.Screenshot("one")
	st.Screenshot("two")
	if len(st.screenshotQueue) != 2 {
		t.Fatalf("queue = %v, want two entries", st.screenshotQueue)
	}
}
