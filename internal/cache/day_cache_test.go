package cache

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	"github.com/BellaSalonPL/salon-scheduler/internal/dto"
)

func newTestCache(t *testing.T) (*DayCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewDayCache(rdb), mr
}

func TestDayCacheMissReturnsNil(t *testing.T) {
	c, _ := newTestCache(t)

	schedule, err := c.Get(context.Background(), 1, "2025-03-10")
	require.NoError(t, err)
	require.Nil(t, schedule)
}

func TestDayCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	in := &dto.DaySchedule{
		Date:         "2025-03-10",
		DayStartHour: 8,
		DayEndHour:   22,
		Items: []dto.DayViewItem{
			{ID: 4, ClientName: "Anna", StartTime: "10:00", EndTime: "11:00", ColumnIndex: 0, TotalColumns: 1},
		},
	}

	require.NoError(t, c.Set(ctx, 1, in.Date, in))

	out, err := c.Get(ctx, 1, in.Date)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestDayCacheInvalidateRemovesOnlyThatDay(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	monday := &dto.DaySchedule{Date: "2025-03-10"}
	tuesday := &dto.DaySchedule{Date: "2025-03-11"}
	require.NoError(t, c.Set(ctx, 1, monday.Date, monday))
	require.NoError(t, c.Set(ctx, 1, tuesday.Date, tuesday))

	require.NoError(t, c.Invalidate(ctx, 1, monday.Date))

	gone, err := c.Get(ctx, 1, monday.Date)
	require.NoError(t, err)
	require.Nil(t, gone)

	kept, err := c.Get(ctx, 1, tuesday.Date)
	require.NoError(t, err)
	require.NotNil(t, kept)
}

func TestDayCacheIsScopedPerOwner(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 1, "2025-03-10", &dto.DaySchedule{Date: "2025-03-10"}))

	other, err := c.Get(ctx, 2, "2025-03-10")
	require.NoError(t, err)
	require.Nil(t, other)
}
