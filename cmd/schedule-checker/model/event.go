package model

import "time"

type ErrorCategory string

var (
	SerialError   ErrorCategory = "serial"
	TimeError     ErrorCategory = "time"
	LocationError ErrorCategory = "location"
)

type ScheduleEvent struct {
	ID                string          `gorm:"column:id" json:"id"`
	Position          int             `gorm:"column:position" json:"position"`
	SerialNo          string          `gorm:"column:serial_no" json:"serial_no"`
	Name              string          `gorm:"column:name" json:"name"`
	Time              string          `gorm:"column:time" json:"time"`
	Location          string          `gorm:"column:location" json:"location"`
	IsTimeValid       bool            `gorm:"column:is_time_valid" json:"is_time_valid"`
	IsLocationValid   bool            `gorm:"column:is_location_valid" json:"is_location_valid"`
	ValidationMessage string          `gorm:"column:validation_message" json:"validation_message,omitempty"`
	IgnoredErrors     []ErrorCategory `gorm:"column:ignored_errors;serializer:json" json:"ignored_errors,omitempty"`
	CreateDate        time.Time       `gorm:"column:create_date" json:"create_date"`
	UpdateDate        time.Time       `gorm:"column:update_date" json:"update_date"`
}

func (m *ScheduleEvent) TableName() string {
	return "schedule_events"
}

func (m *ScheduleEvent) IsIgnored(category ErrorCategory) bool {
	for _, c := range m.IgnoredErrors {
		if c == category {
			return true
		}
	}
	return false
}

func (m *ScheduleEvent) Ignore(category ErrorCategory) {
	if m.IsIgnored(category) {
		return
	}
	m.IgnoredErrors = append(m.IgnoredErrors, category)
}
