package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BellaSalonPL/salon-scheduler/internal/dto"
)

const dayScheduleTTL = 5 * time.Minute

// DayCache keeps computed day layouts warm between reads. Every appointment
// write invalidates the affected owner/date, so readers recompute instead of
// relying on any reload side effect.
type DayCache struct {
	rdb *redis.Client
}

func NewDayCache(rdb *redis.Client) *DayCache {
	return &DayCache{rdb: rdb}
}

func dayKey(ownerID uint, date string) string {
	return fmt.Sprintf("day-schedule:%d:%s", ownerID, date)
}

// Get returns (nil, nil) on a miss.
func (c *DayCache) Get(ctx context.Context, ownerID uint, date string) (*dto.DaySchedule, error) {
	raw, err := c.rdb.Get(ctx, dayKey(ownerID, date)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var schedule dto.DaySchedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (c *DayCache) Set(ctx context.Context, ownerID uint, date string, schedule *dto.DaySchedule) error {
	raw, err := json.Marshal(schedule)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, dayKey(ownerID, date), raw, dayScheduleTTL).Err()
}

func (c *DayCache) Invalidate(ctx context.Context, ownerID uint, date string) error {
	return c.rdb.Del(ctx, dayKey(ownerID, date)).Err()
}
