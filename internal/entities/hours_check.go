package entities

import "time"

type HoursCheckRequest struct {
	OpeningHours    *string    `json:"opening_hours"`
	RegularHolidays *string    `json:"regular_holidays"`
	At              *time.Time `json:"at,omitempty"`
}

type HoursIssue struct {
	Segment string `json:"segment"`
	Reason  string `json:"reason"`
}

type HoursCheckResponse struct {
	IsOpen      bool         `json:"is_open"`
	Status      string       `json:"status"`
	StatusLabel string       `json:"status_label"`
	HolidayKind string       `json:"holiday_kind"`
	EvaluatedAt time.Time    `json:"evaluated_at"`
	Issues      []HoursIssue `json:"issues"`
}
