package entities

import "time"

type ShopResponse struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	Lat             float64   `json:"lat"`
	Lng             float64   `json:"lng"`
	Cashless        string    `json:"cashless"`
	OpeningHours    *string   `json:"opening_hours"`
	RegularHolidays *string   `json:"regular_holidays"`
	IsOpen          bool      `json:"is_open"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"status_label"`
	HolidayKind     string    `json:"holiday_kind"`
	HoursFlagged    bool      `json:"hours_flagged"`
	EvaluatedAt     time.Time `json:"evaluated_at"`
}
