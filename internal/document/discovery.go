package document

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileInfo describes one discovered catalog file
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Discovery finds catalog PDFs in the input directory.
type Discovery struct {
	validator *Validator
}

// NewDiscovery creates a new catalog discovery handler
func NewDiscovery(maxFileSize int64) *Discovery {
	return &Discovery{
		validator: NewValidator(maxFileSize),
	}
}

// FindCatalogs lists the PDF files directly inside the given directory,
// sorted by file name. Sorting keeps the output table deterministic across
// filesystems; subdirectories are not descended into, matching the flat
// layout catalog exports arrive in. Files that fail basic validation are
// skipped without error.
func (d *Discovery) FindCatalogs(directory string) ([]FileInfo, error) {
	if directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	if _, err := os.Stat(directory); os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", directory)
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("error reading directory: %w", err)
	}

	var catalogs []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !IsPDFFile(entry.Name()) {
			continue
		}

		path := filepath.Join(directory, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}

		if err := d.validator.ValidateFileInfo(path, info); err != nil {
			// Skip invalid files but continue processing
			continue
		}

		catalogs = append(catalogs, FileInfo{
			Path:         path,
			Name:         entry.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format("2006-01-02 15:04:05"),
		})
	}

	sort.Slice(catalogs, func(i, j int) bool {
		return catalogs[i].Name < catalogs[j].Name
	})

	return catalogs, nil
}

// CountCatalogs returns the number of catalog PDFs in a directory
func (d *Discovery) CountCatalogs(directory string) (int, error) {
	files, err := d.FindCatalogs(directory)
	if err != nil {
		return 0, err
	}
	return len(files), nil
}
