package hours

import "time"

// Status is the outcome of evaluating a shop's hours at an instant.
type Status int

const (
	StatusClosedNoInfo Status = iota
	StatusOpen
	StatusOpenAllDay
	StatusOpenNeedsConfirmation
	StatusClosedHoliday
	StatusClosedOutsideHours
)

var statusCodes = map[Status]string{
	StatusOpen:                  "open",
	StatusOpenAllDay:            "open_all_day",
	StatusOpenNeedsConfirmation: "open_needs_confirmation",
	StatusClosedHoliday:         "closed_holiday",
	StatusClosedNoInfo:          "closed_no_info",
	StatusClosedOutsideHours:    "closed_outside_hours",
}

var statusLabels = map[Status]string{
	StatusOpen:                  "営業中",
	StatusOpenAllDay:            "営業中（24時間営業）",
	StatusOpenNeedsConfirmation: "要確認（売り切れ次第終了）",
	StatusClosedHoliday:         "定休日",
	StatusClosedNoInfo:          "営業時間情報なし",
	StatusClosedOutsideHours:    "営業時間外",
}

// String returns the stable machine code used in API responses.
func (s Status) String() string {
	if code, ok := statusCodes[s]; ok {
		return code
	}
	return statusCodes[StatusClosedNoInfo]
}

// Label returns the Japanese display text shown to users.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return statusLabels[StatusClosedNoInfo]
}

// MarshalText encodes the status as its machine code.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the evaluation of a Descriptor at an instant.
type Result struct {
	IsOpen bool
	Status Status
}

// Descriptor carries the free-text hours of a shop. A nil field means the
// shop did not publish that information.
type Descriptor struct {
	OpeningHours    *string
	RegularHolidays *string
}

// Weekday counts from Monday (0) to Sunday (6).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayWords = [...]string{"月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日", "日曜日"}

// Word returns the full Japanese name of the day, e.g. "月曜日".
func (w Weekday) Word() string {
	if w < Monday || w > Sunday {
		return ""
	}
	return weekdayWords[w]
}

// WeekdayOf converts the weekday of t, in t's own location.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}
