package db

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// StoreRedisClient struct holds the Redis client and context
type StoreRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewStoreRedisClient initializes a new Redis client with default options
func NewStoreRedisClient(ctx context.Context, client *redis.Client) *StoreRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &StoreRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *StoreRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *StoreRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// GetContext returns the client's context.
func (r *StoreRedisClient) GetContext() context.Context {
	return r.ctx
}

// Ping checks the Redis connection.
func (r *StoreRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}
