package reconcile

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Item is the minimum both sides have to expose. The secondary list
// typically comes from AI extraction of a poster image, so every field
// is optional free text.
type Item struct {
	SerialNo string `json:"serial_no"`
	Name     string `json:"name"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

type Status string

const (
	StatusMatch              Status = "match"
	StatusMismatch           Status = "mismatch"
	StatusMissingInSecondary Status = "missing_in_secondary"
	StatusExtraInSecondary   Status = "extra_in_secondary"
)

type FieldDiff struct {
	Field     string `json:"field"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type Entry struct {
	Serial     string      `json:"serial"`
	Primary    *Item       `json:"primary,omitempty"`
	Secondary  *Item       `json:"secondary,omitempty"`
	Status     Status      `json:"status"`
	FieldDiffs []FieldDiff `json:"field_diffs,omitempty"`
}

// Reconcile aligns the two lists greedily in primary order: first an
// unused secondary with the same serial, else one whose name is contained
// in the primary name. Leftover secondaries are appended as extras, then
// everything sorts by serial read as a number.
func Reconcile(primary, secondary []Item) []Entry {
	used := make([]bool, len(secondary))
	entries := make([]Entry, 0, len(primary))

	for i := range primary {
		p := primary[i]

		si := findSecondary(p, secondary, used)
		if si == -1 {
			entries = append(entries, Entry{
				Serial:  p.SerialNo,
				Primary: &p,
				Status:  StatusMissingInSecondary,
			})
			continue
		}

		used[si] = true
		s := secondary[si]
		diffs := diffFields(p, s)
		status := StatusMatch
		if len(diffs) > 0 {
			status = StatusMismatch
		}
		entries = append(entries, Entry{
			Serial:     p.SerialNo,
			Primary:    &p,
			Secondary:  &s,
			Status:     status,
			FieldDiffs: diffs,
		})
	}

	for i := range secondary {
		if used[i] {
			continue
		}
		s := secondary[i]
		entries = append(entries, Entry{
			Serial:    s.SerialNo,
			Secondary: &s,
			Status:    StatusExtraInSecondary,
		})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return serialKey(entries[a].Serial) < serialKey(entries[b].Serial)
	})
	return entries
}

func findSecondary(p Item, secondary []Item, used []bool) int {
	pSerial := strings.TrimSpace(p.SerialNo)
	if pSerial != "" {
		for i := range secondary {
			if !used[i] && strings.TrimSpace(secondary[i].SerialNo) == pSerial {
				return i
			}
		}
	}
	for i := range secondary {
		if !used[i] && secondary[i].Name != "" && strings.Contains(p.Name, secondary[i].Name) {
			return i
		}
	}
	return -1
}

func diffFields(p, s Item) []FieldDiff {
	var diffs []FieldDiff
	if p.Name != s.Name {
		diffs = append(diffs, FieldDiff{Field: "name", Primary: p.Name, Secondary: s.Name})
	}
	if stripSpace(p.Time) != stripSpace(s.Time) {
		diffs = append(diffs, FieldDiff{Field: "time", Primary: p.Time, Secondary: s.Time})
	}
	if stripSpace(p.Location) != stripSpace(s.Location) {
		diffs = append(diffs, FieldDiff{Field: "location", Primary: p.Location, Secondary: s.Location})
	}
	return diffs
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Unparsable serials sort last, keeping their relative order.
func serialKey(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.Inf(1)
	}
	return f
}
