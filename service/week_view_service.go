package services

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"roster-server/config"
	"roster-server/dao/redis"
	"roster-server/models"
)

// WeekViewService derives the displayable week list and per-week
// schedule from the persisted store.
type WeekViewService struct {
	recordStoreDao *redis.RecordStoreDAO
}

// NewWeekViewService constructs a new WeekViewService with the store DAO.
func NewWeekViewService(recordStoreDao *redis.RecordStoreDAO) *WeekViewService {
	return &WeekViewService{recordStoreDao: recordStoreDao}
}

// ListWeeks returns the persisted week keys, most recent week first.
func (s *WeekViewService) ListWeeks() []string {
	return ListWeeks(s.recordStoreDao.Load())
}

// SelectWeek returns the display view for the persisted week under key.
func (s *WeekViewService) SelectWeek(key string) (*models.WeekDisplay, bool) {
	return SelectWeek(s.recordStoreDao.Load(), key)
}

// ListWeeks returns all keys of the store sorted descending by the
// calendar date each record encodes.
func ListWeeks(store models.WeekStore) []string {
	keys := make([]string, 0, len(store))
	for key := range store {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return store[keys[i]].SortDate().After(store[keys[j]].SortDate())
	})
	return keys
}

// SelectWeek builds the per-weekday schedule and total hours for the
// record under key. The second return is false when the key is absent.
func SelectWeek(store models.WeekStore, key string) (*models.WeekDisplay, bool) {
	record, ok := store[key]
	if !ok {
		return nil, false
	}

	rows := make([]models.DayRow, 0, len(config.WEEKDAYS))
	total := 0.0
	for _, weekday := range config.WEEKDAYS {
		slot := record.Days[weekday]
		hours := 0.0
		if slot.Start != "" && slot.End != "" {
			start, okStart := hoursOf(slot.Start)
			end, okEnd := hoursOf(slot.End)
			if okStart && okEnd {
				// End before start is added as computed, not clamped.
				hours = end - start
				total += hours
			}
		}
		rows = append(rows, models.DayRow{
			Weekday:   weekday,
			Date:      slot.Date,
			TimeText:  timeText(slot),
			NotesText: notesText(slot),
			Hours:     round2(hours),
		})
	}

	return &models.WeekDisplay{
		WeekKey:    key,
		WeekEnding: record.WeekEnding,
		Rows:       rows,
		TotalHours: round2(total),
	}, true
}

func timeText(slot models.DaySlot) string {
	if slot.Start != "" && slot.End != "" {
		return slot.Start + " - " + slot.End
	}
	if slot.Start != "" {
		return slot.Start
	}
	return "Off"
}

func notesText(slot models.DaySlot) string {
	parts := make([]string, 0, 2)
	if slot.Area != "" {
		parts = append(parts, slot.Area)
	}
	if slot.Note != "" {
		parts = append(parts, slot.Note)
	}
	return strings.Join(parts, ", ")
}

// hoursOf converts an "H:MM" time string to fractional hours.
func hoursOf(t string) (float64, bool) {
	hh, mm, found := strings.Cut(t, ":")
	if !found {
		return 0, false
	}
	h, err1 := strconv.Atoi(hh)
	m, err2 := strconv.Atoi(mm)
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return float64(h) + float64(m)/60, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
