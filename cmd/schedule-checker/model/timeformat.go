package model

import "time"

type TimeFormat struct {
	ID         string    `gorm:"column:id" json:"id"`
	Name       string    `gorm:"column:name" json:"name"`
	Pattern    string    `gorm:"column:pattern" json:"pattern"`
	IsSystem   bool      `gorm:"column:is_system" json:"is_system"`
	CreateDate time.Time `gorm:"column:create_date" json:"create_date"`
	UpdateDate time.Time `gorm:"column:update_date" json:"update_date"`
}

func (m *TimeFormat) TableName() string {
	return "time_formats"
}

// SystemTimeFormats returns the built-in rule set seeded at startup.
// IDs are fixed so repeated seeding is idempotent.
func SystemTimeFormats() []TimeFormat {
	return []TimeFormat{
		{ID: "sys-md", Name: "X月X日", Pattern: `\d{1,2}月\d{1,2}日`, IsSystem: true},
		{ID: "sys-md-range", Name: "X月X日-X月X日", Pattern: `\d{1,2}月\d{1,2}日[-至]\d{1,2}月\d{1,2}日`, IsSystem: true},
		{ID: "sys-ymd", Name: "XXXX年X月X日", Pattern: `\d{4}年\d{1,2}月\d{1,2}日`, IsSystem: true},
		{ID: "sys-ymd-range", Name: "XXXX年X月X日-XXXX年X月X日", Pattern: `\d{4}年\d{1,2}月\d{1,2}日[-至]\d{4}年\d{1,2}月\d{1,2}日`, IsSystem: true},
		{ID: "sys-dotted", Name: "X.X", Pattern: `\d{1,2}\.\d{1,2}`, IsSystem: true},
		{ID: "sys-dotted-range", Name: "X.X-X.X", Pattern: `\d{1,2}\.\d{1,2}[-至]\d{1,2}\.\d{1,2}`, IsSystem: true},
		{ID: "sys-month", Name: "X月", Pattern: `\d{1,2}月`, IsSystem: true},
		{ID: "sys-month-range", Name: "X月-X月", Pattern: `\d{1,2}月[-至]\d{1,2}月`, IsSystem: true},
		{ID: "sys-weekly", Name: "每周X", Pattern: `每周[一二三四五六日天](至[一二三四五六日天])?`, IsSystem: true},
		{ID: "sys-all-year", Name: "全年", Pattern: `全年`, IsSystem: true},
	}
}
