package catalog

import (
	"fmt"
	"math"
	"strings"
)

// ExtractRegion returns the entry text lying between two consecutive
// separators. When both separators share a page the region is a single
// clip; when the entry crosses page boundaries the text is stitched from
// the bottom of the start page, any full pages in between, and the top of
// the end page, each piece trimmed, joined with newlines in that order.
//
// start must not lie on a later page than end; the locator's monotonic
// enumeration guarantees that for adjacent separator pairs.
func ExtractRegion(doc PageSource, start, end Separator) (string, error) {
	if start.Page == end.Page {
		page, err := doc.Page(start.Page)
		if err != nil {
			return "", fmt.Errorf("failed to load page %d: %w", start.Page, err)
		}
		return strings.TrimSpace(page.TextInRegion(start.Y, end.Y)), nil
	}

	var pieces []string

	// From the start separator to the bottom of its page
	first, err := doc.Page(start.Page)
	if err != nil {
		return "", fmt.Errorf("failed to load page %d: %w", start.Page, err)
	}
	pieces = append(pieces, strings.TrimSpace(first.TextInRegion(start.Y, math.Inf(1))))

	// Full text of any pages strictly in between
	for pageNum := start.Page + 1; pageNum < end.Page; pageNum++ {
		middle, err := doc.Page(pageNum)
		if err != nil {
			return "", fmt.Errorf("failed to load page %d: %w", pageNum, err)
		}
		pieces = append(pieces, strings.TrimSpace(middle.Text()))
	}

	// From the top of the end page down to the end separator
	last, err := doc.Page(end.Page)
	if err != nil {
		return "", fmt.Errorf("failed to load page %d: %w", end.Page, err)
	}
	pieces = append(pieces, strings.TrimSpace(last.TextInRegion(0, end.Y)))

	return strings.Join(pieces, "\n"), nil
}
