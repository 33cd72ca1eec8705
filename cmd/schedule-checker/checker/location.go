package checker

import (
	"strings"

	"schedule-checker-backend/cmd/schedule-checker/model"
)

// LocationValid reports whether the trimmed location exactly matches a
// library entry. Fuzzy matching is reserved for Recommend.
func LocationValid(location string, entries []model.Location) bool {
	trimmed := strings.TrimSpace(location)
	for _, e := range entries {
		if e.Name == trimmed {
			return true
		}
	}
	return false
}

// Recommend returns the first library entry containing the input
// (abbreviated input), else the first entry contained in the input
// (canonical name plus an annotation), else "".
func Recommend(location string, entries []model.Location) string {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return ""
	}
	for _, e := range entries {
		if e.Name != "" && strings.Contains(e.Name, trimmed) {
			return e.Name
		}
	}
	for _, e := range entries {
		if e.Name != "" && strings.Contains(trimmed, e.Name) {
			return e.Name
		}
	}
	return ""
}
