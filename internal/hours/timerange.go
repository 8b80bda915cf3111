package hours

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// Range is one "HH:MM-HH:MM" span of a segment. End may be earlier than
// Start, in which case the range runs past midnight.
type Range struct {
	Start datetime.TimeOfDay
	End   datetime.TimeOfDay
}

var rangePattern = regexp.MustCompile(`^(\d{1,2}:\d{2})\s*[-〜~－]\s*(\d{1,2}:\d{2})$`)

var endOfDay = datetime.NewTimeOfDay(23, 59, 59)

// ParseRange parses a single "HH:MM-HH:MM" range.
func ParseRange(s string) (Range, error) {
	m := rangePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Range{}, fmt.Errorf("malformed time range %q", s)
	}
	start, err := parseTimeOfDay(m[1])
	if err != nil {
		return Range{}, fmt.Errorf("time range %q: %w", s, err)
	}
	end, err := parseTimeOfDay(m[2])
	if err != nil {
		return Range{}, fmt.Errorf("time range %q: %w", s, err)
	}
	return Range{Start: start, End: end}, nil
}

func parseTimeOfDay(s string) (datetime.TimeOfDay, error) {
	if s == "24:00" {
		return endOfDay, nil
	}
	var tod datetime.TimeOfDay
	if err := tod.Parse(s); err != nil {
		return 0, err
	}
	return tod, nil
}

// Overnight reports whether the range crosses midnight.
func (r Range) Overnight() bool {
	return r.Start > r.End
}

// Contains reports whether t falls inside the range. Both bounds are
// inclusive for same-day ranges; an overnight range excludes its end.
func (r Range) Contains(t datetime.TimeOfDay) bool {
	if r.Overnight() {
		return t >= r.Start || t < r.End
	}
	return r.Start <= t && t <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", r.Start.Hour(), r.Start.Minute(), r.End.Hour(), r.End.Minute())
}

func splitRanges(segment string) []string {
	return strings.FieldsFunc(segment, func(r rune) bool { return r == ',' || r == '、' || r == '，' })
}

// InAnyRange reports whether now's time of day falls in one of the
// comma-separated ranges of segment. Ranges that do not parse are skipped.
func InAnyRange(segment string, now time.Time) bool {
	tod := datetime.TimeOfDayFromTime(now)
	for _, raw := range splitRanges(segment) {
		r, err := ParseRange(raw)
		if err != nil {
			continue
		}
		if r.Contains(tod) {
			return true
		}
	}
	return false
}
