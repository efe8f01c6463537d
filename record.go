package kotobadict

import (
	"strings"
)

// Field indexes of a mecab-ipadic lexicon record.
const (
	surfaceField = 0
	readingField = 11
)

// ExtractReading returns the reading of one lexicon record: the reading
// field when the record carries a non-blank one, otherwise the surface
// field. The empty string means the record has no usable reading.
func ExtractReading(record []string) string {
	if len(record) == 0 {
		return ""
	}
	if len(record) > readingField {
		r := strings.TrimSpace(record[readingField])
		if r != "" {
			return r
		}
	}
	return strings.TrimSpace(record[surfaceField])
}
