package models

// DayRow is one weekday row of a rendered week schedule.
type DayRow struct {
	Weekday   string  `json:"weekday"`
	Date      string  `json:"date,omitempty"`
	TimeText  string  `json:"time_text"`
	NotesText string  `json:"notes_text,omitempty"`
	Hours     float64 `json:"hours"`
}

// WeekDisplay is the aggregated view of one stored week: a row per
// weekday plus the total hours summary.
type WeekDisplay struct {
	WeekKey    string   `json:"week_key"`
	WeekEnding string   `json:"week_ending,omitempty"`
	Rows       []DayRow `json:"rows"`
	TotalHours float64  `json:"total_hours"`
}
