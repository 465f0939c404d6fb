package catalog

import (
	"strings"
)

// ParseFields segments a block of entry text into a labeled record.
//
// Lines are scanned in order against the fixed label vocabulary; the first
// matching label claims the line and becomes the active field. Unlabeled
// lines fold into the active field's value, space-joined. The artist has no
// label of its own: when a line starts with "Title", the line immediately
// before it is taken as the artist, provided that line does not itself start
// with a known label.
//
// Empty input yields an empty (non-nil) record so that every separator pair
// still produces exactly one row downstream.
func ParseFields(text string) Record {
	record := Record{}
	if text == "" {
		return record
	}

	lines := strings.Split(text, "\n")
	currentField := ""

	for idx, raw := range lines {
		line := strings.TrimSpace(raw)

		// Artist inference: the unlabeled line right before the Title line
		if strings.HasPrefix(line, FieldTitle) && idx > 0 {
			artistLine := strings.TrimSpace(lines[idx-1])
			if !startsWithKnownLabel(artistLine) {
				record[FieldArtist] = artistLine
			}
		}

		matched := false
		for _, label := range fieldLabels {
			if strings.HasPrefix(line, label) {
				currentField = label
				value := strings.TrimSpace(line[len(label):])
				if strings.HasPrefix(value, ":") {
					value = strings.TrimSpace(value[1:])
				}
				record[label] = value
				matched = true
				break
			}
		}

		if !matched && currentField != "" {
			// Continuation lines only fold into a field that already holds
			// a value
			if existing, ok := record[currentField]; ok {
				record[currentField] = existing + " " + line
			}
		}
	}

	return record
}

// startsWithKnownLabel reports whether the line begins with any of the nine
// field labels.
func startsWithKnownLabel(line string) bool {
	for _, label := range fieldLabels {
		if strings.HasPrefix(line, label) {
			return true
		}
	}
	return false
}
