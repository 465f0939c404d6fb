package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chdonahue/art-valuation/internal/document"
)

func TestNewService(t *testing.T) {
	service := NewService(nil, 1024)
	if service == nil {
		t.Fatal("expected a service")
	}
	if service.logger == nil {
		t.Error("expected a default logger when none is given")
	}
	if service.validator == nil || service.discovery == nil {
		t.Error("expected validator and discovery to be constructed")
	}
}

func TestProcessFile_RejectsInvalidFiles(t *testing.T) {
	service := NewService(nil, 1024)

	tests := []struct {
		name string
		path string
	}{
		{"nonexistent file", "/nonexistent/catalog.pdf"},
		{"wrong extension", writeTempFile(t, "notes.txt", []byte("plain text"))},
		{"empty pdf", writeTempFile(t, "empty.pdf", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.ProcessFile(tt.path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestProcessDirectory_EmptyDirectory(t *testing.T) {
	service := NewService(nil, 1024)

	artworks, err := service.ProcessDirectory(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(artworks) != 0 {
		t.Errorf("expected no artworks, got %d", len(artworks))
	}
}

func TestProcessDirectory_MissingDirectory(t *testing.T) {
	service := NewService(nil, 1024)

	if _, err := service.ProcessDirectory("/nonexistent/catalogs"); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestProcessDirectory_SkipsBrokenDocuments(t *testing.T) {
	dir := t.TempDir()
	// Valid extension but not a real PDF; the document is skipped, not fatal
	if err := os.WriteFile(filepath.Join(dir, "broken.pdf"), []byte("%PDF-1.4 truncated"), 0o644); err != nil {
		t.Fatal(err)
	}

	service := NewService(nil, 1024)
	artworks, err := service.ProcessDirectory(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(artworks) != 0 {
		t.Errorf("expected no artworks from a broken document, got %d", len(artworks))
	}
}

func TestExtractRecords_EntryCountInvariant(t *testing.T) {
	doc := &fakeDoc{pages: []*document.Page{
		{Index: 0, Width: 612, Height: 792,
			Rects: []document.Rect{bar(100, 540), bar(300, 540), bar(500, 540)},
			Spans: []document.TextSpan{
				span(36, 150, "Jane Doe"),
				span(36, 170, "Title: Untitled"),
				span(36, 350, "Title: Horse"),
			},
		},
	}}
	service := NewService(nil, 1024)

	separators := LocateSeparators(doc)
	if len(separators) != 3 {
		t.Fatalf("expected 3 separators, got %d", len(separators))
	}

	records := service.extractRecords(doc, separators, "synthetic.pdf")
	if len(records) != 2 {
		t.Fatalf("expected N-1 = 2 records, got %d", len(records))
	}
	if records[0][FieldTitle] != "Untitled" || records[0][FieldArtist] != "Jane Doe" {
		t.Errorf("unexpected first record: %v", records[0])
	}
	if records[1][FieldTitle] != "Horse" {
		t.Errorf("unexpected second record: %v", records[1])
	}
}

func TestExtractRecords_FailedEntryKeepsItsRow(t *testing.T) {
	// Three separators with the middle region on an unreadable page: the
	// count invariant holds and the failed entry is an empty record.
	doc := &fakeDoc{pages: []*document.Page{
		{Index: 0, Width: 612, Height: 792, Spans: []document.TextSpan{
			span(36, 150, "Title: First"),
		}},
		nil,
		{Index: 2, Width: 612, Height: 792, Spans: []document.TextSpan{
			span(36, 80, "Title: Last"),
		}},
	}}
	service := NewService(nil, 1024)

	separators := []Separator{
		{Page: 0, Y: 100},
		{Page: 0, Y: 400},
		{Page: 2, Y: 100},
	}

	records := service.extractRecords(doc, separators, "synthetic.pdf")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0][FieldTitle] != "First" {
		t.Errorf("unexpected first record: %v", records[0])
	}
	if len(records[1]) != 0 {
		t.Errorf("expected an empty record for the failed entry, got %v", records[1])
	}
}

func TestExtractRecords_NoSeparators(t *testing.T) {
	service := NewService(nil, 1024)
	if records := service.extractRecords(&fakeDoc{}, nil, "synthetic.pdf"); len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
