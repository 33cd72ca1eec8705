package checker

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"schedule-checker-backend/cmd/schedule-checker/model"
)

type Result struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message,omitempty"`
}

var (
	parenRe    = regexp.MustCompile(`（[^）]*）|\([^)]*\)`)
	datePairRe = regexp.MustCompile(`(\d{1,2})[月./-](\d{1,2})日?`)
	yearRe     = regexp.MustCompile(`\d{4}`)
)

// February is capped at 29 so a leap-day entry with no year in the cell
// is never rejected.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// StripAnnotations removes parenthetical remarks, ASCII and fullwidth,
// so "1月1日(线上)" validates against the bare "1月1日" pattern.
func StripAnnotations(s string) string {
	return parenRe.ReplaceAllString(s, "")
}

// Validate checks a time string against the rule set: first a whole-string
// pattern match against any rule, then calendar sanity on the month/day
// pairs found in the string.
func Validate(timeStr string, rules []model.TimeFormat) Result {
	trimmed := strings.TrimSpace(timeStr)
	if trimmed == "" {
		return Result{Message: "时间不能为空"}
	}

	cleaned := StripAnnotations(trimmed)

	if !matchesAnyRule(cleaned, rules) {
		return Result{Message: "时间格式无法识别，请检查或添加新的时间格式"}
	}

	return checkCalendar(cleaned)
}

func matchesAnyRule(cleaned string, rules []model.TimeFormat) bool {
	for _, rule := range rules {
		re, err := regexp.Compile("^(?:" + rule.Pattern + ")$")
		if err != nil {
			// A broken stored pattern never matches; keep trying the rest.
			continue
		}
		if re.MatchString(cleaned) {
			return true
		}
	}
	return false
}

func checkCalendar(cleaned string) Result {
	pairs := datePairRe.FindAllStringSubmatch(cleaned, -1)
	if len(pairs) == 0 {
		// Textual values like "全年" or "每周三" carry no date to check.
		return Result{IsValid: true}
	}

	type monthDay struct{ month, day int }
	parsed := make([]monthDay, 0, len(pairs))

	for _, p := range pairs {
		month, _ := strconv.Atoi(p[1])
		day, _ := strconv.Atoi(p[2])
		if month < 1 || month > 12 {
			return Result{Message: fmt.Sprintf("不存在的月份：%d月", month)}
		}
		if day < 1 || day > daysInMonth[month] {
			return Result{Message: fmt.Sprintf("%d月没有%d日", month, day)}
		}
		parsed = append(parsed, monthDay{month, day})
	}

	hasRangeSep := strings.Contains(cleaned, "-") || strings.Contains(cleaned, "至")
	if len(parsed) == 2 && hasRangeSep && !yearRe.MatchString(cleaned) {
		start, end := parsed[0], parsed[1]
		crossesNewYear := start.month == 12 && end.month == 1
		if !crossesNewYear && start.month*100+start.day > end.month*100+end.day {
			return Result{Message: "结束时间不能早于开始时间"}
		}
	}

	return Result{IsValid: true}
}
