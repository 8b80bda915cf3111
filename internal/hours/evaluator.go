// Package hours decides whether a shop is open from the free-text opening
// hours and regular holidays that shops publish, e.g.
//
//	opening hours:    "月火: 19:00-1:00; 水木: 10:00-13:30, 19:00-1:00"
//	regular holidays: "日曜日、祝日"
//
// Evaluation never fails: text that cannot be understood degrades to one of
// the closed statuses.
package hours

import (
	"strings"
	"time"
)

const allDayMarker = "24時間"

var soldOutMarkers = []string{"売り切れ次第", "売切れ次第", "売切次第", "なくなり次第"}

// Evaluator combines the holiday check, segment resolution and range test.
// The zero value is not usable; use NewEvaluator.
type Evaluator struct {
	resolver SegmentResolver
	calendar HolidayCalendar
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithResolver replaces the default SubstringResolver.
func WithResolver(r SegmentResolver) Option {
	return func(e *Evaluator) { e.resolver = r }
}

// WithCalendar makes regular holidays that list 祝日 close the shop on the
// calendar's holidays. Without it only the weekday words count.
func WithCalendar(c HolidayCalendar) Option {
	return func(e *Evaluator) { e.calendar = c }
}

// NewEvaluator returns an Evaluator using the substring grammar and no
// holiday calendar unless overridden.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{resolver: SubstringResolver{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// IsShopCurrentlyOpen evaluates the descriptor at now with the default
// Evaluator. now is used as given; callers pick the location.
func IsShopCurrentlyOpen(openingHours, regularHolidays *string, now time.Time) Result {
	return defaultEvaluator.Evaluate(Descriptor{OpeningHours: openingHours, RegularHolidays: regularHolidays}, now)
}

// Evaluate is safe for concurrent use.
func (e *Evaluator) Evaluate(d Descriptor, now time.Time) Result {
	if e.isHoliday(d.RegularHolidays, now) {
		return Result{IsOpen: false, Status: StatusClosedHoliday}
	}
	text, ok := present(d.OpeningHours)
	if !ok {
		return Result{IsOpen: false, Status: StatusClosedNoInfo}
	}
	if strings.Contains(text, allDayMarker) {
		return Result{IsOpen: true, Status: StatusOpenAllDay}
	}
	if containsAny(text, soldOutMarkers) {
		return Result{IsOpen: false, Status: StatusOpenNeedsConfirmation}
	}
	segment, ok := e.resolver.Resolve(text, WeekdayOf(now))
	if ok && InAnyRange(segment, now) {
		return Result{IsOpen: true, Status: StatusOpen}
	}
	return Result{IsOpen: false, Status: StatusClosedOutsideHours}
}

func (e *Evaluator) isHoliday(regularHolidays *string, now time.Time) bool {
	if IsHoliday(regularHolidays, WeekdayOf(now)) {
		return true
	}
	text, ok := present(regularHolidays)
	return ok && e.calendar != nil && closesOnNationalHolidays(text) && e.calendar.IsHoliday(now)
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
