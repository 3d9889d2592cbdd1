package services

import (
	"log"

	"roster-server/dao/redis"
	"roster-server/models"
)

// ScheduleService owns ingestion of parsed weeks into the record store.
type ScheduleService struct {
	recordStoreDao *redis.RecordStoreDAO
}

// NewScheduleService constructs a new ScheduleService with the store DAO.
func NewScheduleService(recordStoreDao *redis.RecordStoreDAO) *ScheduleService {
	return &ScheduleService{recordStoreDao: recordStoreDao}
}

// Insert merges a record into the store, keeping at most one record per
// calendar date: any existing record under a different key whose dates
// intersect the incoming ones is evicted, while a record under the same
// key is overwritten in place. The input store is not mutated.
func Insert(store models.WeekStore, record models.WeekRecord) models.WeekStore {
	key := record.Key()
	incoming := record.NonEmptyDates()

	result := make(models.WeekStore, len(store)+1)
	for existingKey, existingRecord := range store {
		if existingKey != key && datesIntersect(incoming, existingRecord.Dates) {
			log.Printf("[ScheduleService] Evicting overlapping week %q in favour of %q", existingKey, key)
			continue
		}
		result[existingKey] = existingRecord
	}
	result[key] = record
	return result
}

// IngestWeek validates a parser response, merges the resulting record
// into the persisted store and saves it. On any error the persisted
// state is left as it was.
func (s *ScheduleService) IngestWeek(resp *models.ParseResponse) (*models.WeekRecord, error) {
	record, err := resp.ToWeekRecord()
	if err != nil {
		return nil, err
	}

	store := s.recordStoreDao.Load()
	updated := Insert(store, *record)
	if err := s.recordStoreDao.Save(updated); err != nil {
		return nil, err
	}

	log.Printf("[ScheduleService] Stored week %q (%d weeks total)", record.Key(), len(updated))
	return record, nil
}

func datesIntersect(incoming []string, existing []string) bool {
	if len(incoming) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(incoming))
	for _, d := range incoming {
		seen[d] = struct{}{}
	}
	for _, d := range existing {
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			return true
		}
	}
	return false
}
