package catalog

import (
	"fmt"
	"log/slog"

	"github.com/chdonahue/art-valuation/internal/document"
)

// Service drives the extraction pipeline: discover catalogs, locate entry
// separators, extract and parse each entry region, then decompose the
// "Sale of" field across the accumulated records.
type Service struct {
	logger    *slog.Logger
	validator *document.Validator
	discovery *document.Discovery
}

// NewService creates a new extraction service
func NewService(logger *slog.Logger, maxFileSize int64) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:    logger,
		validator: document.NewValidator(maxFileSize),
		discovery: document.NewDiscovery(maxFileSize),
	}
}

// ProcessDirectory runs the pipeline over every catalog PDF in the
// directory and returns the accumulated artworks in document order, then
// entry order within each document. A document that fails validation or
// refuses to open is logged and skipped; it never aborts the rest of the
// batch.
func (s *Service) ProcessDirectory(directory string) ([]Artwork, error) {
	files, err := s.discovery.FindCatalogs(directory)
	if err != nil {
		return nil, fmt.Errorf("catalog discovery failed: %w", err)
	}

	var artworks []Artwork
	for _, file := range files {
		records, err := s.ProcessFile(file.Path)
		if err != nil {
			s.logger.Warn("pipeline.document.skipped", "file", file.Name, "err", err)
			continue
		}
		s.logger.Info("pipeline.document.ok", "file", file.Name, "entries", len(records))
		for _, record := range records {
			artworks = append(artworks, Artwork{Fields: record})
		}
	}

	// Decompose the "Sale of" column once the whole batch is accumulated.
	// Records without the field get the zero-value fallback.
	for i := range artworks {
		artworks[i].Sale = DecomposeSale(artworks[i].Fields[FieldSaleOf])
	}

	return artworks, nil
}

// ProcessFile extracts the records of a single catalog PDF. A document
// with N separators yields exactly N-1 records; zero separators yield zero
// records without error.
func (s *Service) ProcessFile(path string) ([]Record, error) {
	if err := s.validator.Validate(path); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	doc, err := document.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return s.extractRecords(doc, LocateSeparators(doc), path), nil
}

// extractRecords parses the entry between every adjacent separator pair.
// N separators always yield N-1 records.
func (s *Service) extractRecords(doc PageSource, separators []Separator, path string) []Record {
	var records []Record
	for i := 0; i+1 < len(separators); i++ {
		text, err := ExtractRegion(doc, separators[i], separators[i+1])
		if err != nil {
			// Keep the entry-per-separator-pair invariant: the failed
			// entry becomes an empty record instead of shifting rows
			s.logger.Warn("pipeline.entry.failed", "file", path, "entry", i, "err", err)
			text = ""
		}
		records = append(records, ParseFields(text))
	}
	return records
}
