package plotline

import (
	"fmt"
	"io"
	"os"
)

// WriteSVG renders the stage's current target visual state as a standalone
// SVG document: axes, marks at the emphasis they are tweening toward, the
// regression overlay, callouts, and the scene indicator. Because it reads
// targets rather than interpolated values, the output is stable the moment
// a scene is entered, with no waiting for transitions.
func WriteSVG(st *Stage, w io.Writer) error {
	c := st.Chart()
	width, height := st.Size()

	out := &svgWriter{w: w}
	out.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height)
	out.printf("  <rect width=\"%d\" height=\"%d\" fill=%q/>\n", width, height, svgHex(ColorBackground))

	svgAxes(out, c)
	if reg, ok := c.Regression(); ok {
		x0, x1 := c.XScale().DomainMin, c.XScale().DomainMax
		out.printf("  <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=%q stroke-width=\"2\"/>\n",
			c.XScale().Apply(x0), c.YScale().Apply(reg.ValueAt(x0)),
			c.XScale().Apply(x1), c.YScale().Apply(reg.ValueAt(x1)),
			svgHex(ColorRegression))
	}

	for _, m := range c.Marks().Marks() {
		target := m.Target()
		fill := ColorMark
		if m.Highlighted {
			fill = ColorEmphasis
		}
		out.printf("  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=%q fill-opacity=\"%.2f\"><title>%s</title></circle>\n",
			m.X, m.Y, target.Radius, svgHex(fill), target.Alpha, svgEscape(m.Record.Name))
	}

	for _, a := range c.Annotations() {
		svgCallout(out, a.Layout(c.XScale(), c.YScale()))
	}

	out.printf("  <text x=\"%d\" y=\"%d\" fill=%q font-family=\"monospace\" font-size=\"13\" text-anchor=\"middle\">%s</text>\n",
		width/2, height-24, svgHex(ColorText), svgEscape(st.Story().Indicator()))

	out.printf("</svg>\n")
	return out.err
}

// writeSVGFile is the script-runner entry point.
func writeSVGFile(st *Stage, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteSVG(st, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// svgWriter collects the first write error so emission code stays linear.
type svgWriter struct {
	w   io.Writer
	err error
}

func (s *svgWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func svgAxes(out *svgWriter, c *Chart) {
	x, y := c.XScale(), c.YScale()
	left, right := x.RangeMin, x.RangeMax
	bottom, top := y.RangeMin, y.RangeMax

	for _, t := range x.Ticks(8) {
		px := x.Apply(t)
		out.printf("  <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=%q/>\n",
			px, top, px, bottom, svgHex(ColorGrid))
		out.printf("  <text x=\"%.1f\" y=\"%.1f\" fill=%q font-family=\"monospace\" font-size=\"11\" text-anchor=\"middle\">%g</text>\n",
			px, bottom+16, svgHex(ColorTextDim), t)
	}
	for _, t := range y.Ticks(6) {
		py := y.Apply(t)
		out.printf("  <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=%q/>\n",
			left, py, right, py, svgHex(ColorGrid))
		out.printf("  <text x=\"%.1f\" y=\"%.1f\" fill=%q font-family=\"monospace\" font-size=\"11\" text-anchor=\"end\">%g</text>\n",
			left-8, py+4, svgHex(ColorTextDim), t)
	}

	out.printf("  <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=%q stroke-width=\"1.5\"/>\n",
		left, bottom, right, bottom, svgHex(ColorAxis))
	out.printf("  <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=%q stroke-width=\"1.5\"/>\n",
		left, top, left, bottom, svgHex(ColorAxis))

	out.printf("  <text x=\"%.1f\" y=\"%.1f\" fill=%q font-family=\"monospace\" font-size=\"13\" text-anchor=\"middle\">%s</text>\n",
		(left+right)/2, bottom+34, svgHex(ColorText), svgEscape(c.XLabel))
	out.printf("  <text x=\"%.1f\" y=\"%.1f\" fill=%q font-family=\"monospace\" font-size=\"13\">%s</text>\n",
		left-44, top-12, svgHex(ColorText), svgEscape(c.YLabel))
}

func svgCallout(out *svgWriter, co Callout) {
	out.printf("  <polyline points=\"%.1f,%.1f %.1f,%.1f %.1f,%.1f\" fill=\"none\" stroke=%q/>\n",
		co.AnchorX, co.AnchorY, co.ElbowX, co.ElbowY, co.TextX, co.ElbowY, svgHex(ColorAnnotation))
	anchor := "start"
	if co.TextX < co.ElbowX {
		anchor = "end"
	}
	for i, line := range co.Lines {
		out.printf("  <text x=\"%.1f\" y=\"%.1f\" fill=%q font-family=\"monospace\" font-size=\"12\" text-anchor=%q>%s</text>\n",
			co.TextX, co.TextY+float64(i*lineHeight), svgHex(ColorAnnotation), anchor, svgEscape(line))
	}
}

// svgHex formats a color as #rrggbb, ignoring alpha (emitted separately as
// opacity where it matters).
func svgHex(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp01(c.R)*255), uint8(clamp01(c.G)*255), uint8(clamp01(c.B)*255))
}

func svgEscape(s string) string {
	var b []byte
	for _, r := range s {
		switch r {
		case '&':
			b = append(b, "&amp;"...)
		case '<':
			b = append(b, "&lt;"...)
		case '>':
			b = append(b, "&gt;"...)
		default:
			b = append(b, string(r)...)
		}
	}
	return string(b)
}
