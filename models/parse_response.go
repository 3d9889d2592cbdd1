package models

import (
	"errors"
	"fmt"
)

// ErrParseFailed marks a parser response that reported success=false.
var ErrParseFailed = errors.New("parser reported failure")

// ErrInvalidRecord marks a parser response that cannot yield a usable
// week record (no week ending and no dates means no store key).
var ErrInvalidRecord = errors.New("invalid week record")

// ParseResponse is the JSON payload returned by the timesheet parser
// service for an uploaded PDF.
type ParseResponse struct {
	Success    bool               `json:"success"`
	Error      string             `json:"error,omitempty"`
	WeekEnding string             `json:"week_ending,omitempty"`
	Dates      []string           `json:"dates"`
	Days       map[string]DaySlot `json:"days"`
}

// ToWeekRecord validates the parser payload and converts it into a typed
// WeekRecord, filling in the normalized WeekOf date. Nothing reaches the
// store without passing through here.
func (r *ParseResponse) ToWeekRecord() (*WeekRecord, error) {
	if !r.Success {
		msg := r.Error
		if msg == "" {
			msg = "no error message"
		}
		return nil, fmt.Errorf("%w: %s", ErrParseFailed, msg)
	}

	record := WeekRecord{
		WeekEnding: r.WeekEnding,
		Dates:      r.Dates,
		Days:       r.Days,
	}
	if record.Days == nil {
		record.Days = map[string]DaySlot{}
	}
	if record.Key() == "" {
		return nil, fmt.Errorf("%w: no week ending and no dates", ErrInvalidRecord)
	}
	record.WeekOf = normalizeWeekOf(record)
	return &record, nil
}

// normalizeWeekOf picks the record's calendar date: the week-ending date
// when it parses, otherwise the last non-empty day date.
func normalizeWeekOf(record WeekRecord) string {
	if t, ok := ParseDayMonthYear(record.WeekEnding); ok {
		return t.Format("2006-01-02")
	}
	dates := record.NonEmptyDates()
	for i := len(dates) - 1; i >= 0; i-- {
		if t, ok := ParseDayMonthYear(dates[i]); ok {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
