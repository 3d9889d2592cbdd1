package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roster-server/models"
)

func TestListWeeks_DescendingDateOrder(t *testing.T) {
	// Arrange: insertion order is irrelevant, only the encoded date counts
	store := models.WeekStore{
		"01/01/2024": {WeekEnding: "01/01/2024"},
		"15/06/2024": {WeekEnding: "15/06/2024"},
	}

	// Act
	keys := ListWeeks(store)

	// Assert
	assert.Equal(t, []string{"15/06/2024", "01/01/2024"}, keys, "Weeks should be sorted most recent first")
}

func TestListWeeks_JoinedDatesKeySortsByNormalizedDate(t *testing.T) {
	// Arrange: one record keyed by week ending, one by its joined dates.
	// The joined key does not decode on its own; WeekOf carries the date.
	joined := models.WeekRecord{
		Dates:  []string{"16.06.2024", "17.06.2024"},
		WeekOf: "2024-06-17",
	}
	store := models.WeekStore{
		"01/01/2024": {WeekEnding: "01/01/2024", WeekOf: "2024-01-01"},
		joined.Key(): joined,
	}

	// Act
	keys := ListWeeks(store)

	// Assert
	assert.Equal(t, []string{"16.06.2024/17.06.2024", "01/01/2024"}, keys)
}

func TestSelectWeek_TotalHoursAndTimeText(t *testing.T) {
	// Arrange: Monday worked, all other days off
	store := models.WeekStore{
		"21/06/2024": {
			WeekEnding: "21/06/2024",
			Days: map[string]models.DaySlot{
				"Monday": {Date: "17.06.2024", Start: "9:00", End: "17:30"},
			},
		},
	}

	// Act
	display, ok := SelectWeek(store, "21/06/2024")

	// Assert
	if !ok {
		t.Fatalf("Expected week to be found")
	}
	assert.Equal(t, 8.5, display.TotalHours)
	assert.Len(t, display.Rows, 5)

	monday := display.Rows[0]
	assert.Equal(t, "Monday", monday.Weekday)
	assert.Equal(t, "9:00 - 17:30", monday.TimeText)
	assert.Equal(t, 8.5, monday.Hours)

	tuesday := display.Rows[1]
	assert.Equal(t, "Off", tuesday.TimeText)
	assert.Equal(t, 0.0, tuesday.Hours)
}

func TestSelectWeek_NotesTextJoining(t *testing.T) {
	// Arrange
	store := models.WeekStore{
		"21/06/2024": {
			WeekEnding: "21/06/2024",
			Days: map[string]models.DaySlot{
				"Monday":    {Area: "Downtown", Note: "Training"},
				"Tuesday":   {Area: "Downtown"},
				"Wednesday": {Note: "Training"},
			},
		},
	}

	// Act
	display, _ := SelectWeek(store, "21/06/2024")

	// Assert: no stray separators in any combination
	assert.Equal(t, "Downtown, Training", display.Rows[0].NotesText)
	assert.Equal(t, "Off", display.Rows[0].TimeText)
	assert.Equal(t, "Downtown", display.Rows[1].NotesText)
	assert.Equal(t, "Training", display.Rows[2].NotesText)
	assert.Equal(t, "", display.Rows[3].NotesText)
}

func TestSelectWeek_StartOnlyAndNegativeSpan(t *testing.T) {
	// Arrange
	store := models.WeekStore{
		"21/06/2024": {
			WeekEnding: "21/06/2024",
			Days: map[string]models.DaySlot{
				// Start with no end renders the bare start time
				"Monday": {Start: "13:00"},
				// End before start counts negative, by the source arithmetic
				"Tuesday": {Start: "17:00", End: "9:00"},
			},
		},
	}

	// Act
	display, _ := SelectWeek(store, "21/06/2024")

	// Assert
	assert.Equal(t, "13:00", display.Rows[0].TimeText)
	assert.Equal(t, 0.0, display.Rows[0].Hours)
	assert.Equal(t, -8.0, display.Rows[1].Hours)
	assert.Equal(t, -8.0, display.TotalHours)
}

func TestSelectWeek_AbsentKey(t *testing.T) {
	// Act
	display, ok := SelectWeek(models.WeekStore{}, "15/06/2024")

	// Assert
	if ok {
		t.Errorf("Expected ok=false for an absent key")
	}
	if display != nil {
		t.Errorf("Expected nil display for an absent key, got %+v", display)
	}
}

func TestSelectWeek_UnaffectedByUnrelatedRecords(t *testing.T) {
	// Arrange
	record := models.WeekRecord{
		WeekEnding: "21/06/2024",
		Dates:      []string{"17.06.2024"},
		Days: map[string]models.DaySlot{
			"Monday": {Start: "9:00", End: "17:30"},
		},
	}

	empty := Insert(models.WeekStore{}, record)
	populated := Insert(models.WeekStore{
		"01/01/2024": {WeekEnding: "01/01/2024", Dates: []string{"28.12.2023"}},
	}, record)

	// Act
	fromEmpty, ok1 := SelectWeek(empty, record.Key())
	fromPopulated, ok2 := SelectWeek(populated, record.Key())

	// Assert: the display only depends on the selected record
	if !ok1 || !ok2 {
		t.Fatalf("Expected the record to be selectable in both stores")
	}
	assert.Equal(t, fromEmpty, fromPopulated)
}

func TestHoursOf(t *testing.T) {
	tests := []struct {
		in    string
		hours float64
		ok    bool
	}{
		{"9:00", 9.0, true},
		{"17:30", 17.5, true},
		{"0:45", 0.75, true},
		{"nine", 0, false},
		{"900", 0, false},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			hours, ok := hoursOf(test.in)
			if ok != test.ok {
				t.Fatalf("Expected ok=%v for %q, got %v", test.ok, test.in, ok)
			}
			if ok && hours != test.hours {
				t.Errorf("Expected %v hours for %q, got %v", test.hours, test.in, hours)
			}
		})
	}
}
