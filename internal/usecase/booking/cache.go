package booking

import (
	"context"

	"github.com/BellaSalonPL/salon-scheduler/internal/dto"
)

// DayCache is the warm-layout store consumed by the day view and invalidated
// by every appointment write. Cache failures are soft: the database remains
// the source of truth.
type DayCache interface {
	Get(ctx context.Context, ownerID uint, date string) (*dto.DaySchedule, error)
	Set(ctx context.Context, ownerID uint, date string, schedule *dto.DaySchedule) error
	Invalidate(ctx context.Context, ownerID uint, date string) error
}
