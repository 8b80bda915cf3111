package hours

import (
	"regexp"
	"strings"
)

// SegmentResolver picks the part of an opening-hours text that applies to a
// given weekday.
type SegmentResolver interface {
	Resolve(openingHours string, wd Weekday) (string, bool)
}

// SubstringResolver implements the loose "qualifier: ranges; ..." grammar
// shops write in practice. Matching is substring and regexp based.
type SubstringResolver struct{}

var qualifierPattern = regexp.MustCompile(`(?s)^([^0-9０-９:：]+?)\s*[:：]\s*(.*)$`)

var dayChars = map[rune]Weekday{
	'月': Monday,
	'火': Tuesday,
	'水': Wednesday,
	'木': Thursday,
	'金': Friday,
	'土': Saturday,
	'日': Sunday,
}

// Resolve returns the ranges of the first segment whose qualifier covers wd.
// Without such a segment it falls back to the first segment as written, even
// when that segment is empty.
func (SubstringResolver) Resolve(openingHours string, wd Weekday) (string, bool) {
	segments := splitSegments(openingHours)
	for _, seg := range segments {
		qualifier, rest, ok := splitQualifier(seg)
		if !ok {
			continue
		}
		days, known := qualifierDays(qualifier)
		if known && days[wd] {
			return rest, true
		}
	}
	if segments[0] == "" {
		return "", false
	}
	return segments[0], true
}

// splitSegments splits on ASCII and full-width semicolons and trims each
// part. Empty parts are kept so that the first part stays the fallback.
// The result always has at least one element.
func splitSegments(text string) []string {
	parts := strings.Split(strings.ReplaceAll(text, "；", ";"), ";")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// splitQualifier separates "月火: 19:00-1:00" into "月火" and "19:00-1:00".
func splitQualifier(segment string) (string, string, bool) {
	m := qualifierPattern.FindStringSubmatch(segment)
	if m == nil {
		return "", segment, false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// qualifierDays maps a qualifier to the weekdays it names. 平日 is a keyword
// for Monday to Friday; otherwise every day character counts and anything
// else (祝, 曜, separators) is ignored. Ranges are not expanded: "火-日"
// names Tuesday and Sunday only. known is false when no day is named.
func qualifierDays(qualifier string) (days [7]bool, known bool) {
	if strings.Contains(qualifier, "平日") {
		for d := Monday; d <= Friday; d++ {
			days[d] = true
		}
		known = true
		qualifier = strings.ReplaceAll(qualifier, "平日", "")
	}
	for _, r := range qualifier {
		if d, ok := dayChars[r]; ok {
			days[d] = true
			known = true
		}
	}
	return days, known
}

// isDayRange reports whether a qualifier spells a span such as "月〜金".
func isDayRange(qualifier string) bool {
	return strings.ContainsAny(qualifier, "-－~〜～")
}
