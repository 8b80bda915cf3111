package hours

import (
	"fmt"
	"strings"
)

// Issue is a problem found in an opening-hours text. Issues never change
// evaluation; they let admins fix data the evaluator silently skips.
type Issue struct {
	Segment string `json:"segment"`
	Reason  string `json:"reason"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Segment, i.Reason)
}

// Lint reports qualifiers that never match, ranges that do not parse, and
// days that can only reach an unparseable fallback segment.
func Lint(openingHours string) []Issue {
	var issues []Issue
	text, ok := present(&openingHours)
	if !ok {
		return nil
	}
	if strings.Contains(text, allDayMarker) || containsAny(text, soldOutMarkers) {
		return nil
	}
	segments := splitSegments(text)
	var covered [7]bool
	for i, seg := range segments {
		if seg == "" {
			if i == 0 && len(segments) > 1 {
				issues = append(issues, Issue{Segment: seg, Reason: "empty first segment; days without a matching qualifier are closed"})
			}
			continue
		}
		ranges := seg
		if qualifier, rest, ok := splitQualifier(seg); ok {
			days, known := qualifierDays(qualifier)
			switch {
			case !known:
				issues = append(issues, Issue{Segment: seg, Reason: fmt.Sprintf("weekday qualifier %q names no day", qualifier)})
			case isDayRange(qualifier):
				issues = append(issues, Issue{Segment: seg, Reason: fmt.Sprintf("day range %q is not expanded; it only matches %s", qualifier, dayLetters(days, true))})
			}
			for d, on := range days {
				covered[d] = covered[d] || on
			}
			ranges = rest
		}
		parts := splitRanges(ranges)
		if len(parts) == 0 {
			issues = append(issues, Issue{Segment: seg, Reason: "no time ranges"})
			continue
		}
		for _, raw := range parts {
			if _, err := ParseRange(raw); err != nil {
				issues = append(issues, Issue{Segment: seg, Reason: err.Error()})
			}
		}
	}
	if _, _, qualified := splitQualifier(segments[0]); qualified {
		if rest := dayLetters(covered, false); rest != "" {
			issues = append(issues, Issue{
				Segment: segments[0],
				Reason:  fmt.Sprintf("%s fall back to this segment, which keeps its qualifier and never parses; those days are always closed", rest),
			})
		}
	}
	return issues
}

// dayLetters lists the one-letter names of the days whose flag equals want,
// e.g. "土・日".
func dayLetters(days [7]bool, want bool) string {
	var letters []string
	for d, on := range days {
		if on == want {
			letters = append(letters, string([]rune(Weekday(d).Word())[0]))
		}
	}
	return strings.Join(letters, "・")
}
