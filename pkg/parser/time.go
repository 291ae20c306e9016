package parser

import (
	"regexp"
	"time"

	"github.com/fdtools/balancelog/pkg/format"
)

var (
	utcRE  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	hourRE = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) (\d{1,2}):(\d{2}:\d{2})$`)
)

// ParseUTC parses a normalized "YYYY-MM-DD HH:MM:SS" string as a UTC
// instant. Anything that does not match the layout exactly (wrong
// separators, single-digit hour, trailing text) yields the zero time,
// which every time-ordered operation treats as "filter me out".
func ParseUTC(s string) time.Time {
	if !utcRE.MatchString(s) {
		return time.Time{}
	}
	t, err := time.Parse(format.TimeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// NormalizeTime pads a single-digit hour so "2023-01-01 9:05:06" becomes
// the canonical "2023-01-01 09:05:06". Non-matching input passes through.
func NormalizeTime(s string) string {
	m := hourRE.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	hour := m[2]
	if len(hour) == 1 {
		hour = "0" + hour
	}
	return m[1] + " " + hour + ":" + m[3]
}
