package plotline

// Annotation is a connector-plus-text callout anchored to a point in data
// space, with its text placed at a fixed pixel offset from the anchor.
// Annotations are ephemeral: each scene render rebuilds its own and the next
// render discards them.
type Annotation struct {
	AnchorX float64 // data space (horsepower)
	AnchorY float64 // data space (fuel economy)
	DX, DY  float64 // pixel offset from the anchor to the text
	Lines   []string
}

// Callout is an annotation resolved to pixel space: an elbow connector from
// the anchor toward the text block.
type Callout struct {
	AnchorX, AnchorY float64 // pixel position of the anchored point
	ElbowX, ElbowY   float64 // pixel position of the connector elbow
	TextX, TextY     float64 // top-left of the first text line
	Lines            []string
}

// connector geometry
const (
	calloutGap     = 6 // pixels between the anchor and the connector start
	calloutLanding = 8 // horizontal landing segment before the text
)

// Layout resolves the annotation through the given scales. The connector
// runs diagonally from just outside the anchor to the elbow, then a short
// horizontal landing leads into the text.
func (a Annotation) Layout(x, y LinearScale) Callout {
	ax := x.Apply(a.AnchorX)
	ay := y.Apply(a.AnchorY)

	elbowX := ax + a.DX
	elbowY := ay + a.DY

	landing := float64(calloutLanding)
	if a.DX < 0 {
		landing = -landing
	}

	return Callout{
		AnchorX: ax, AnchorY: ay,
		ElbowX: elbowX, ElbowY: elbowY,
		TextX: elbowX + landing, TextY: elbowY,
		Lines: a.Lines,
	}
}
