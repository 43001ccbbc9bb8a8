package plotline

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a named PNG capture of the end of the current frame's
// Draw call, written into ScreenshotDir. Safe to call from Update or Draw.
func (st *Stage) Screenshot(name string) {
	st.screenshotQueue = append(st.screenshotQueue, name)
}

// flushScreenshots writes every queued capture of the finished frame.
// Called at the end of Stage.Draw.
func (st *Stage) flushScreenshots(screen *ebiten.Image) {
	if len(st.screenshotQueue) == 0 {
		return
	}
	img := frameImage(screen)
	for _, name := range st.screenshotQueue {
		path := filepath.Join(st.ScreenshotDir, safeFilename(name)+".png")
		if err := writePNG(path, img); err != nil {
			fmt.Fprintf(os.Stderr, "[plotline] screenshot: %v\n", err)
		}
	}
	st.screenshotQueue = st.screenshotQueue[:0]
}

// frameImage copies the screen's premultiplied pixels into a straight-alpha
// image suitable for PNG encoding.
func frameImage(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := 4 * (y*w + x)
			img.SetNRGBA(x, y, unpremultiply(pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]))
		}
	}
	return img
}

func unpremultiply(r, g, b, a byte) color.NRGBA {
	if a == 0 || a == 255 {
		return color.NRGBA{R: r, G: g, B: b, A: a}
	}
	return color.NRGBA{
		R: uint8(min(int(r)*255/int(a), 255)),
		G: uint8(min(int(g)*255/int(a), 255)),
		B: uint8(min(int(b)*255/int(a), 255)),
		A: a,
	}
}

// writePNG encodes an image to a PNG file, creating the directory as needed.
func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// safeFilename lowercases a capture name and replaces anything that is not
// a letter, digit, dash, or dot with an underscore.
func safeFilename(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return "capture"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}
