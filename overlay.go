package a11ykit

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var severityColors = [...]color.RGBA{
	SeverityLow:    {R: 0x3a, G: 0x8e, B: 0xe6, A: 0xff},
	SeverityMedium: {R: 0xf5, G: 0xa6, B: 0x23, A: 0xff},
	SeverityHigh:   {R: 0xe0, G: 0x2f, B: 0x2f, A: 0xff},
}

// overlayBox is one outlined node in an Overlay.
type overlayBox struct {
	bounds   Rect
	severity Severity
	count    int
}

// Overlay outlines nodes with issues on an Ebitengine screen. Node bounds are
// taken to be in screen coordinates. Each node is drawn once, in the color
// of its most severe issue.
type Overlay struct {
	StrokeWidth float32
	ShowCounts  bool

	boxes []overlayBox
}

// NewOverlay creates an overlay for issues.
func NewOverlay(issues []Issue) *Overlay {
	o := &Overlay{StrokeWidth: 2, ShowCounts: true}
	o.SetIssues(issues)
	return o
}

// SetIssues replaces the displayed issues. Issues whose node has been
// released are dropped.
func (o *Overlay) SetIssues(issues []Issue) {
	o.boxes = o.boxes[:0]
	index := make(map[uint32]int, len(issues))
	for _, is := range issues {
		n := is.Node()
		if n == nil {
			continue
		}
		if i, ok := index[is.NodeID]; ok {
			o.boxes[i].count++
			o.boxes[i].severity = max(o.boxes[i].severity, is.Severity)
			continue
		}
		index[is.NodeID] = len(o.boxes)
		o.boxes = append(o.boxes, overlayBox{bounds: n.Bounds, severity: is.Severity, count: 1})
	}
}

// Len returns the number of outlined nodes.
func (o *Overlay) Len() int {
	return len(o.boxes)
}

// Draw strokes every box onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	for _, b := range o.boxes {
		if b.bounds.Width <= 0 || b.bounds.Height <= 0 {
			continue
		}
		clr := severityColors[min(int(b.severity), len(severityColors)-1)]
		vector.StrokeRect(screen,
			float32(b.bounds.X), float32(b.bounds.Y),
			float32(b.bounds.Width), float32(b.bounds.Height),
			o.StrokeWidth, clr, true)
		if o.ShowCounts {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", b.count), int(b.bounds.X)+2, int(b.bounds.Y)+1)
		}
	}
}
