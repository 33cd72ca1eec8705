package sheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is one candidate event pulled out of the grid, before any
// validation has run.
type Record struct {
	SerialNo string `json:"serial_no"`
	Name     string `json:"name"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

// Spreadsheet date serials count days from the 1900 epoch; 25569 days in,
// the epoch lines up with Unix time.
const (
	excelUnixEpochDays = 25569
	dateSerialFloor    = 30000
)

// Extract turns grid rows into records, starting after the header row.
// Rows without a name are skipped; a missing serial defaults to the
// record's 1-based position among the extracted records.
func Extract(rows [][]any, layout Layout) []Record {
	start := layout.HeaderRow + 1

	var records []Record
	for r := start; r < len(rows); r++ {
		row := rows[r]

		name := strings.TrimSpace(cellAt(row, layout.Name))
		if name == "" {
			continue
		}

		serial := strings.TrimSpace(cellAt(row, layout.Serial))
		if serial == "" {
			serial = strconv.Itoa(len(records) + 1)
		}

		records = append(records, Record{
			SerialNo: serial,
			Name:     name,
			Time:     timeCellValue(row, layout.Time),
			Location: strings.TrimSpace(cellAt(row, layout.Location)),
		})
	}
	return records
}

func cellAt(row []any, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return cellString(row[idx])
}

func timeCellValue(row []any, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	if serial, ok := cellNumber(row[idx]); ok && serial > dateSerialFloor {
		return dateSerialToText(serial)
	}
	return strings.TrimSpace(cellString(row[idx]))
}

func dateSerialToText(serial float64) string {
	secs := (serial - excelUnixEpochDays) * 86400
	t := time.Unix(int64(secs), 0).UTC()
	return fmt.Sprintf("%d月%d日", int(t.Month()), t.Day())
}
