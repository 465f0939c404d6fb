package document

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Default US Letter dimensions, used when a page carries no usable MediaBox
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// lineTolerance is the maximum baseline distance (in points) between two
// text spans still considered part of the same line.
const lineTolerance = 2.0

// Rect is a drawn rectangle primitive in top-origin page coordinates:
// y grows downward, so Y0 is the visually upper edge and Y0 <= Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// TextSpan is a positioned fragment of page text. X is the left edge of the
// fragment, Y its baseline in top-origin coordinates, W its advance width.
type TextSpan struct {
	X, Y, W  float64
	FontSize float64
	S        string
}

// Page holds the decoded geometry and positioned text of one catalog page.
// All coordinates are top-origin: the conversion from PDF bottom-origin user
// space happens once at decode time, so the separator heuristics and region
// clipping operate in layout order.
type Page struct {
	Index  int
	Width  float64
	Height float64
	Rects  []Rect
	Spans  []TextSpan
}

// decodePage interprets the page content stream into rectangles and text
// spans. Content stream interpretation can panic on malformed documents, so
// the failure is converted into an error for the caller to skip the page.
func decodePage(raw pdf.Page, index int) (page *Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			page = nil
			err = fmt.Errorf("panic during page content decoding: %v", r)
		}
	}()

	width, height := pageSize(raw)
	content := raw.Content()

	rects := make([]Rect, 0, len(content.Rect))
	for _, r := range content.Rect {
		rects = append(rects, Rect{
			X0: math.Min(r.Min.X, r.Max.X),
			Y0: height - math.Max(r.Min.Y, r.Max.Y),
			X1: math.Max(r.Min.X, r.Max.X),
			Y1: height - math.Min(r.Min.Y, r.Max.Y),
		})
	}

	spans := make([]TextSpan, 0, len(content.Text))
	for _, t := range content.Text {
		spans = append(spans, TextSpan{
			X:        t.X,
			Y:        height - t.Y,
			W:        t.W,
			FontSize: t.FontSize,
			S:        t.S,
		})
	}

	return &Page{
		Index:  index,
		Width:  width,
		Height: height,
		Rects:  rects,
		Spans:  spans,
	}, nil
}

// pageSize extracts the page dimensions from the MediaBox, walking up the
// page tree for an inherited box when the page itself has none.
func pageSize(raw pdf.Page) (width, height float64) {
	if w, h, ok := parseMediaBox(raw.V.Key("MediaBox")); ok {
		return w, h
	}

	// Look for an inherited MediaBox; limit traversal to guard against cycles
	current := raw.V
	for i := 0; i < 10; i++ {
		parent := current.Key("Parent")
		if parent.IsNull() {
			break
		}
		if w, h, ok := parseMediaBox(parent.Key("MediaBox")); ok {
			return w, h
		}
		current = parent
	}

	return defaultPageWidth, defaultPageHeight
}

// parseMediaBox reads [llx lly urx ury] out of a MediaBox value.
func parseMediaBox(box pdf.Value) (width, height float64, ok bool) {
	if box.IsNull() || box.Kind() != pdf.Array || box.Len() != 4 {
		return 0, 0, false
	}

	coords := make([]float64, 4)
	for i := 0; i < 4; i++ {
		val := box.Index(i)
		switch val.Kind() {
		case pdf.Integer:
			coords[i] = float64(val.Int64())
		case pdf.Real:
			coords[i] = val.Float64()
		default:
			return 0, 0, false
		}
	}

	width = coords[2] - coords[0]
	height = coords[3] - coords[1]
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

// Text assembles the full page text in reading order.
func (p *Page) Text() string {
	return p.TextInRegion(0, math.Inf(1))
}

// TextInRegion assembles reading-order plain text from the spans whose
// baseline lies in [yMin, yMax). Spans are grouped into lines by baseline
// proximity, lines ordered top to bottom, fragments within a line left to
// right with spaces restored across wide gaps.
func (p *Page) TextInRegion(yMin, yMax float64) string {
	var clipped []TextSpan
	for _, span := range p.Spans {
		if span.Y >= yMin && span.Y < yMax && span.S != "" {
			clipped = append(clipped, span)
		}
	}
	if len(clipped) == 0 {
		return ""
	}

	sort.SliceStable(clipped, func(i, j int) bool {
		if math.Abs(clipped[i].Y-clipped[j].Y) > lineTolerance {
			return clipped[i].Y < clipped[j].Y
		}
		return clipped[i].X < clipped[j].X
	})

	var b strings.Builder
	lineStart := 0
	for i := 1; i <= len(clipped); i++ {
		if i < len(clipped) && math.Abs(clipped[i].Y-clipped[lineStart].Y) <= lineTolerance {
			continue
		}
		if lineStart > 0 {
			b.WriteByte('\n')
		}
		writeLine(&b, clipped[lineStart:i])
		lineStart = i
	}
	return b.String()
}

// writeLine joins the fragments of one line, inserting a space where the
// horizontal gap between adjacent fragments exceeds a third of an em.
func writeLine(b *strings.Builder, spans []TextSpan) {
	for i, span := range spans {
		if i > 0 {
			prev := spans[i-1]
			gap := span.X - (prev.X + prev.W)
			threshold := 0.3 * prev.FontSize
			if threshold <= 0 {
				threshold = 1.0
			}
			if gap > threshold && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(span.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(span.S)
	}
}
