package models

import (
	"strconv"
	"strings"
	"time"
)

// WeekRecord is one parsed timesheet week as produced by the parser
// service. The store treats it as an opaque payload except for Dates,
// which drives overlap eviction, and WeekOf, the normalized sort date.
type WeekRecord struct {
	WeekEnding string             `json:"week_ending,omitempty"`
	Dates      []string           `json:"dates"`
	Days       map[string]DaySlot `json:"days"`

	// WeekOf is the record's calendar week as "YYYY-MM-DD", filled in at
	// ingest time. Records persisted before this field existed leave it
	// empty and are sorted by decoding their key instead.
	WeekOf string `json:"week_of,omitempty"`
}

// WeekStore is the persisted collection, keyed by week key. It is saved
// as a single JSON blob.
type WeekStore map[string]WeekRecord

// Key derives the store key for the record: the week-ending date when
// present, otherwise the literal "/"-join of the non-empty dates.
func (r WeekRecord) Key() string {
	if r.WeekEnding != "" {
		return r.WeekEnding
	}
	return strings.Join(r.NonEmptyDates(), "/")
}

// NonEmptyDates returns the record's dates with empty placeholders removed.
func (r WeekRecord) NonEmptyDates() []string {
	out := make([]string, 0, len(r.Dates))
	for _, d := range r.Dates {
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}

// SortDate returns the calendar date used to order this record among
// weeks, preferring the normalized WeekOf field over key decoding.
func (r WeekRecord) SortDate() time.Time {
	if r.WeekOf != "" {
		if t, err := time.Parse("2006-01-02", r.WeekOf); err == nil {
			return t
		}
	}
	return DecodeKeyDate(r.Key())
}

// DecodeKeyDate derives a sortable date from a week key string. Keys are
// either a week-ending date ("DD/MM/YYYY") or a "/"-join of the week's
// dates; either way the key splits on "/" with the leading components
// read as day, month, year. Keys that do not decode sort as the zero time.
func DecodeKeyDate(key string) time.Time {
	parts := strings.Split(key, "/")
	if len(parts) < 3 {
		return time.Time{}
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParseDayMonthYear parses a "DD<sep>MM<sep>YYYY" date string, where the
// separator is ".", "/" or "-", as seen in parser output.
func ParseDayMonthYear(s string) (time.Time, bool) {
	var parts []string
	for _, sep := range []string{".", "/", "-"} {
		if strings.Contains(s, sep) {
			parts = strings.Split(s, sep)
			break
		}
	}
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
