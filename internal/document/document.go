package document

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Document is an opened catalog PDF. Pages are decoded lazily and cached,
// since the extraction pipeline visits the same page several times (once for
// the separator scan, then once per entry region).
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
	pages  map[int]*Page
}

// Open opens a catalog PDF for extraction.
func Open(path string) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	return &Document{
		path:   path,
		file:   f,
		reader: reader,
		pages:  make(map[int]*Page),
	}, nil
}

// Path returns the file path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// Page decodes the page at the given zero-based index into geometry and
// positioned text. Decoded pages are cached for the lifetime of the document.
func (d *Document) Page(index int) (*Page, error) {
	if index < 0 || index >= d.PageCount() {
		return nil, fmt.Errorf("invalid page index %d (document has %d pages)", index, d.PageCount())
	}

	if page, ok := d.pages[index]; ok {
		return page, nil
	}

	// ledongthuc/pdf pages are 1-based
	raw := d.reader.Page(index + 1)
	if raw.V.IsNull() {
		return nil, fmt.Errorf("invalid page %d", index)
	}

	page, err := decodePage(raw, index)
	if err != nil {
		return nil, fmt.Errorf("failed to decode page %d: %w", index, err)
	}

	d.pages[index] = page
	return page, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}
