package hours

import (
	"strings"
	"time"

	jpholiday "github.com/rabitt1ove/jp-holidays"
)

// HolidayKind describes what a regular-holiday text says, for display only.
type HolidayKind int

const (
	HolidayUnknown HolidayKind = iota
	HolidayNone
	HolidayIrregular
	HolidayFixed
)

func (k HolidayKind) String() string {
	switch k {
	case HolidayNone:
		return "none"
	case HolidayIrregular:
		return "irregular"
	case HolidayFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

const irregularMarker = "不定休"

var noneMarkers = []string{"なし", "無し"}

// HolidayCalendar reports public holidays.
type HolidayCalendar interface {
	IsHoliday(t time.Time) bool
}

// IsHoliday reports whether the regular-holiday text names wd by its full
// weekday word. The irregular and "none" markers never decide the result.
func IsHoliday(regularHolidays *string, wd Weekday) bool {
	text, ok := present(regularHolidays)
	if !ok {
		return false
	}
	// Checked before なし/不定休 so a weekday word always wins.
	return strings.Contains(text, wd.Word())
}

// ClassifyHolidays tells the presentation layer which marker the text uses.
// A weekday word wins over the other markers, mirroring IsHoliday.
func ClassifyHolidays(regularHolidays *string) HolidayKind {
	text, ok := present(regularHolidays)
	if !ok {
		return HolidayUnknown
	}
	for _, word := range weekdayWords {
		if strings.Contains(text, word) {
			return HolidayFixed
		}
	}
	if closesOnNationalHolidays(text) {
		return HolidayFixed
	}
	for _, marker := range noneMarkers {
		if strings.Contains(text, marker) {
			return HolidayNone
		}
	}
	if strings.Contains(text, irregularMarker) {
		return HolidayIrregular
	}
	return HolidayUnknown
}

// closesOnNationalHolidays reports whether 祝日 is listed as an item of its
// own, e.g. "月曜日、祝日". Qualified phrases such as "祝日の場合は翌日" are
// not items and do not count.
func closesOnNationalHolidays(text string) bool {
	items := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '、', ',', '，', '・', '/', '／', ' ', '　', '\t', '\n':
			return true
		}
		return false
	})
	for _, item := range items {
		if item == "祝日" || item == "祝" {
			return true
		}
	}
	return false
}

// JapaneseCalendar knows the national holidays of Japan, evaluated in JST.
type JapaneseCalendar struct{}

func (JapaneseCalendar) IsHoliday(t time.Time) bool {
	return jpholiday.IsHoliday(t)
}

func present(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	text := strings.TrimSpace(*s)
	return text, text != ""
}
