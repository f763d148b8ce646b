package cache

import (
	"context"
	"encoding/json"
	"time"

	"workshop-service/internal/domain/inventory"
	"workshop-service/internal/domain/job"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	recordsKey   = "workshop:records"
	inventoryKey = "workshop:inventory"
)

// Collections is a redis read-through cache for the two persisted
// collections. Every failure is non-fatal: the record store stays
// authoritative and a cold cache only costs one extra scan.
type Collections struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCollections(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Collections {
	return &Collections{client: client, ttl: ttl, logger: logger}
}

// GetRecords returns the cached record list, reporting a miss on any error.
func (c *Collections) GetRecords(ctx context.Context) ([]job.VehicleRecord, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, recordsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("record cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var records []job.VehicleRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		c.logger.Warn("record cache entry did not parse", zap.Error(err))
		return nil, false
	}
	return records, true
}

func (c *Collections) SetRecords(ctx context.Context, records []job.VehicleRecord) {
	c.set(ctx, recordsKey, records)
}

func (c *Collections) InvalidateRecords(ctx context.Context) {
	c.invalidate(ctx, recordsKey)
}

// GetInventory returns the cached parts list, reporting a miss on any error.
func (c *Collections) GetInventory(ctx context.Context) ([]inventory.Part, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, inventoryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("inventory cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var parts []inventory.Part
	if err := json.Unmarshal(raw, &parts); err != nil {
		c.logger.Warn("inventory cache entry did not parse", zap.Error(err))
		return nil, false
	}
	return parts, true
}

func (c *Collections) SetInventory(ctx context.Context, parts []inventory.Part) {
	c.set(ctx, inventoryKey, parts)
}

func (c *Collections) InvalidateInventory(ctx context.Context) {
	c.invalidate(ctx, inventoryKey)
}

func (c *Collections) set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Collections) invalidate(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
