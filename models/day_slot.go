package models

// DaySlot represents one calendar day's entry within a WeekRecord.
// A day with neither a start nor an end time is an off day.
type DaySlot struct {
	Date  string `json:"date,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	Area  string `json:"area,omitempty"`
	Note  string `json:"note,omitempty"`
}

// Off reports whether the slot has no working times at all.
func (d DaySlot) Off() bool {
	return d.Start == "" && d.End == ""
}
