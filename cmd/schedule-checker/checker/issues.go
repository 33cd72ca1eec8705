package checker

import (
	"fmt"
	"strconv"
	"strings"

	"schedule-checker-backend/cmd/schedule-checker/model"
)

type Issue struct {
	EventID    string              `json:"event_id"`
	SerialNo   string              `json:"serial_no"`
	Name       string              `json:"name"`
	Category   model.ErrorCategory `json:"category"`
	Detail     string              `json:"detail"`
	Suggestion string              `json:"suggestion,omitempty"`
}

// ExpectedSerial is the serial an event at position i should carry.
func ExpectedSerial(i int) string {
	return strconv.Itoa(i + 1)
}

// PendingIssues lists the problems an operator still has to deal with,
// skipping categories the operator explicitly ignored on an event.
func PendingIssues(events []model.ScheduleEvent, entries []model.Location) []Issue {
	var issues []Issue
	for i, e := range events {
		if !e.IsIgnored(model.SerialError) && strings.TrimSpace(e.SerialNo) != ExpectedSerial(i) {
			issues = append(issues, Issue{
				EventID:  e.ID,
				SerialNo: e.SerialNo,
				Name:     e.Name,
				Category: model.SerialError,
				Detail:   fmt.Sprintf("序号应为 %s，当前为 %s", ExpectedSerial(i), e.SerialNo),
			})
		}
		if !e.IsIgnored(model.TimeError) && !e.IsTimeValid {
			issues = append(issues, Issue{
				EventID:  e.ID,
				SerialNo: e.SerialNo,
				Name:     e.Name,
				Category: model.TimeError,
				Detail:   e.ValidationMessage,
			})
		}
		if !e.IsIgnored(model.LocationError) && !e.IsLocationValid {
			issues = append(issues, Issue{
				EventID:    e.ID,
				SerialNo:   e.SerialNo,
				Name:       e.Name,
				Category:   model.LocationError,
				Detail:     fmt.Sprintf("地点 %q 不在地点库中", e.Location),
				Suggestion: Recommend(e.Location, entries),
			})
		}
	}
	return issues
}
