package checker

import (
	"schedule-checker-backend/cmd/schedule-checker/model"
)

// AnnotateEvent re-derives the validity fields of one event from the
// current libraries. Prior validation state is never consulted.
func AnnotateEvent(event model.ScheduleEvent, rules []model.TimeFormat, entries []model.Location) model.ScheduleEvent {
	res := Validate(event.Time, rules)
	event.IsTimeValid = res.IsValid
	event.ValidationMessage = res.Message
	event.IsLocationValid = LocationValid(event.Location, entries)
	return event
}

// AnnotateEvents recomputes every event against the current libraries.
func AnnotateEvents(events []model.ScheduleEvent, rules []model.TimeFormat, entries []model.Location) []model.ScheduleEvent {
	out := make([]model.ScheduleEvent, len(events))
	for i, e := range events {
		out[i] = AnnotateEvent(e, rules, entries)
	}
	return out
}
