package catalog

import (
	"github.com/chdonahue/art-valuation/internal/document"
)

// PageSource is the slice of document behavior the pipeline needs: a page
// count and decoded pages by zero-based index. *document.Document satisfies
// it; tests substitute synthetic pages.
type PageSource interface {
	PageCount() int
	Page(index int) (*document.Page, error)
}

// Separator geometry thresholds. An entry divider renders as a thin bar
// spanning most of the column width; anything hugging the top page border
// is a frame artifact, not a divider.
const (
	maxSeparatorHeight = 1.0
	minSeparatorWidth  = 100.0
	pageBorderMargin   = 50.0
)

// Separator marks one horizontal entry divider: the page it sits on and its
// vertical position in top-origin page coordinates. Positions are only
// comparable within their own page.
type Separator struct {
	Page int     `json:"page"`
	Y    float64 `json:"y"`
}

// LocateSeparators scans every page of the document for rectangle
// primitives that qualify as entry dividers and returns them in page scan
// order. No sort is applied beyond that natural order, and no
// deduplication: the page-by-page, primitive-by-primitive enumeration is
// what downstream pairing relies on. Pages that fail to decode contribute
// no separators.
func LocateSeparators(doc PageSource) []Separator {
	var candidates []Separator
	for pageNum := 0; pageNum < doc.PageCount(); pageNum++ {
		page, err := doc.Page(pageNum)
		if err != nil {
			continue
		}
		for _, rect := range page.Rects {
			if rect.Height() < maxSeparatorHeight && rect.Width() > minSeparatorWidth {
				candidates = append(candidates, Separator{
					Page: pageNum,
					Y:    rect.Y0,
				})
			}
		}
	}

	// Drop page-border rectangles, which sit at the very top of pages
	separators := make([]Separator, 0, len(candidates))
	for _, sep := range candidates {
		if sep.Y > pageBorderMargin {
			separators = append(separators, sep)
		}
	}
	return separators
}
