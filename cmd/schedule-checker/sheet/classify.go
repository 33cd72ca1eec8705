package sheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Layout describes where the classifier found the header row and the
// four column roles. -1 means not found.
type Layout struct {
	HeaderRow int `json:"header_row"`
	Serial    int `json:"serial"`
	Name      int `json:"name"`
	Time      int `json:"time"`
	Location  int `json:"location"`
}

const maxHeaderScan = 20

var (
	serialKeyRe   = regexp.MustCompile(`序号|编号`)
	nameKeyRe     = regexp.MustCompile(`名称|活动|内容|项目`)
	timeKeyRe     = regexp.MustCompile(`时间|日期`)
	locationKeyRe = regexp.MustCompile(`地点|地址|场地|位置`)

	spaceRe = regexp.MustCompile(`\s+`)
)

// Classify scans at most the first 20 rows for a header, scoring each row
// by the keyword categories it covers, then infers column roles from the
// winning row. Without a header it falls back to positional defaults.
func Classify(rows [][]any) Layout {
	layout := Layout{HeaderRow: -1, Serial: -1, Name: -1, Time: -1, Location: -1}

	limit := len(rows)
	if limit > maxHeaderScan {
		limit = maxHeaderScan
	}

	bestScore := 0
	for i := 0; i < limit; i++ {
		score := scoreHeaderRow(rows[i])
		if score > bestScore {
			bestScore = score
			layout.HeaderRow = i
		}
	}

	if layout.HeaderRow >= 0 {
		inferColumnRoles(&layout, rows[layout.HeaderRow])
		return layout
	}

	// No header anywhere: a numeric leading cell suggests a serial column.
	if len(rows) > 0 && len(rows[0]) > 0 {
		if _, ok := cellNumber(rows[0][0]); ok {
			return Layout{HeaderRow: -1, Serial: 0, Name: 1, Time: 2, Location: 3}
		}
	}
	return Layout{HeaderRow: -1, Serial: -1, Name: 0, Time: 1, Location: 2}
}

func scoreHeaderRow(row []any) int {
	var hasSerial, hasName, hasTime, hasLocation bool
	for _, cell := range row {
		s := normalizeCell(cell)
		if s == "" {
			continue
		}
		if serialKeyRe.MatchString(s) {
			hasSerial = true
		}
		if nameKeyRe.MatchString(s) && !timeKeyRe.MatchString(s) && !locationKeyRe.MatchString(s) {
			hasName = true
		}
		if timeKeyRe.MatchString(s) {
			hasTime = true
		}
		if locationKeyRe.MatchString(s) {
			hasLocation = true
		}
	}

	score := 0
	if hasSerial {
		score += 10
	}
	if hasName {
		score += 10
	}
	if hasTime {
		score += 10
	}
	if hasLocation {
		score += 10
	}
	return score
}

func inferColumnRoles(layout *Layout, header []any) {
	for i, cell := range header {
		s := normalizeCell(cell)
		if s == "" {
			continue
		}
		if layout.Serial == -1 && serialKeyRe.MatchString(s) {
			layout.Serial = i
		}
		if layout.Name == -1 && nameKeyRe.MatchString(s) && !timeKeyRe.MatchString(s) && !locationKeyRe.MatchString(s) {
			layout.Name = i
		}
		if layout.Time == -1 && timeKeyRe.MatchString(s) {
			layout.Time = i
		}
		if layout.Location == -1 && locationKeyRe.MatchString(s) {
			layout.Location = i
		}
	}

	if layout.Name != -1 {
		if layout.Time == -1 {
			layout.Time = layout.Name + 1
		}
		if layout.Location == -1 {
			layout.Location = layout.Name + 2
		}
		return
	}
	if layout.Serial != -1 {
		layout.Name = layout.Serial + 1
		layout.Time = layout.Serial + 2
		layout.Location = layout.Serial + 3
	}
}

// normalizeCell renders any cell as a trimmed string with all whitespace
// collapsed away, so "活动 名称" still hits the keyword patterns.
func normalizeCell(cell any) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(cellString(cell)), "")
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

func cellNumber(cell any) (float64, bool) {
	switch v := cell.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
