package db

import (
	"database/sql"
	"time"
)

type Shop struct {
	ID              int
	Name            string
	Address         string
	Lat             float64
	Lng             float64
	Cashless        string
	OpeningHours    sql.NullString
	RegularHolidays sql.NullString
	HoursFlagged    bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OpeningHoursPtr returns nil when the column is NULL.
func (s Shop) OpeningHoursPtr() *string {
	return nullStringPtr(s.OpeningHours)
}

// RegularHolidaysPtr returns nil when the column is NULL.
func (s Shop) RegularHolidaysPtr() *string {
	return nullStringPtr(s.RegularHolidays)
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

// NullString maps a nil pointer to SQL NULL and keeps "" as an empty value.
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
