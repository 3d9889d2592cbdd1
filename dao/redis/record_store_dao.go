package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"roster-server/db"
	"roster-server/models"
)

const SCHEDULE_STORE_KEY_V1 = "schedule_store_v1"

// ErrPersistenceWrite marks a failed save of the week store. The
// previously persisted blob is untouched when this is returned.
var ErrPersistenceWrite = errors.New("failed to persist week store")

// RecordStoreDAO persists the whole week store as one JSON blob in Redis.
type RecordStoreDAO struct {
	client db.RedisClient
}

// NewRecordStoreDAO initializes a RecordStoreDAO with the Redis client.
func NewRecordStoreDAO(client db.RedisClient) *RecordStoreDAO {
	return &RecordStoreDAO{client: client}
}

// Load deserializes the persisted week store. Missing or unreadable data
// is treated as an empty store, never as an error.
func (dao *RecordStoreDAO) Load() models.WeekStore {
	str, err := dao.client.Get(SCHEDULE_STORE_KEY_V1)
	if err != nil {
		// Missing key on first run, or Redis unavailable: start empty.
		return models.WeekStore{}
	}

	var store models.WeekStore
	if err := json.Unmarshal([]byte(str), &store); err != nil {
		log.Printf("[RecordStoreDAO] Corrupt store blob, starting empty: %v", err)
		return models.WeekStore{}
	}
	if store == nil {
		store = models.WeekStore{}
	}
	return store
}

// Save serializes the week store and writes it under the store key in a
// single SET, so readers only ever observe a whole blob.
func (dao *RecordStoreDAO) Save(store models.WeekStore) error {
	data, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to marshal week store: %w", err)
	}
	if err := dao.client.Set(SCHEDULE_STORE_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceWrite, err)
	}
	return nil
}
