package checker

import (
	"regexp"
	"strings"
)

var digitRunRe = regexp.MustCompile(`\d+`)

// Synthesize derives an anchored pattern from one sample time string.
// Digit runs generalize to numeric classes (four digits read as a year),
// every other character is kept literally.
func Synthesize(sample string) string {
	cleaned := StripAnnotations(strings.TrimSpace(sample))
	escaped := regexp.QuoteMeta(cleaned)
	pattern := digitRunRe.ReplaceAllStringFunc(escaped, func(run string) string {
		if len(run) == 4 {
			return `\d{4}`
		}
		return `\d{1,2}`
	})
	return "^" + pattern + "$"
}
