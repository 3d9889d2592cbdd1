package db

import "context"

// RedisClient defines the persistence operations the application needs.
// The store DAO only ever reads and writes whole values by key.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	GetContext() context.Context
	Ping() error
}
