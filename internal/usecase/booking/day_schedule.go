package booking

import (
	"context"
	"log"
	"time"

	domain "github.com/BellaSalonPL/salon-scheduler/internal/domain/booking"
	"github.com/BellaSalonPL/salon-scheduler/internal/dto"
	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/models"
	"github.com/BellaSalonPL/salon-scheduler/internal/schedule"
)

type GetDaySchedule struct {
	repo domain.Repository
	days DayCache
}

func NewGetDaySchedule(repo domain.Repository, days DayCache) *GetDaySchedule {
	return &GetDaySchedule{repo: repo, days: days}
}

// Execute builds the calendar layout for one owner/date: fetch, sort (the
// repository orders by start time then primary key), pack into columns,
// cache. Records with unusable time data are reported in Skipped rather than
// failing the day.
func (uc *GetDaySchedule) Execute(
	ctx context.Context,
	ownerID uint,
	salonID uint,
	date string,
) (*dto.DaySchedule, error) {

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if cached, err := uc.days.Get(ctx, ownerID, date); err != nil {
		log.Println("day cache read failed:", err)
	} else if cached != nil {
		return cached, nil
	}

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}

	entries := make([]schedule.Entry, 0, len(appointments))
	byID := make(map[uint]*models.Appointment, len(appointments))
	for i := range appointments {
		ap := &appointments[i]
		byID[ap.ID] = ap
		entries = append(entries, schedule.Entry{
			ID:    ap.ID,
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}

	placements, skipped := schedule.PackColumns(entries)

	out := &dto.DaySchedule{
		Date:         date,
		DayStartHour: salon.DayStartHour,
		DayEndHour:   salon.DayEndHour,
		Items:        make([]dto.DayViewItem, 0, len(placements)),
	}

	for _, p := range placements {
		ap := byID[p.ID]
		out.Items = append(out.Items, dto.DayViewItem{
			ID:             ap.ID,
			ClientName:     clientDisplayName(&ap.Client),
			ServiceType:    ap.ServiceType,
			ServiceDetails: ap.ServiceDetails,
			StartTime:      ap.StartTime,
			EndTime:        ap.EndTime,
			DurationMin:    p.Interval.Duration(),
			Price:          ap.Price,
			DepositPaid:    ap.DepositPaid,
			PaymentStatus:  ap.PaymentStatus,
			Notes:          ap.Notes,
			ColumnIndex:    p.Column,
			TotalColumns:   p.Columns,
		})
	}

	for _, s := range skipped {
		out.Skipped = append(out.Skipped, dto.SkippedItem{
			ID:     s.ID,
			Reason: s.Err.Error(),
		})
	}

	if err := uc.days.Set(ctx, ownerID, date, out); err != nil {
		log.Println("day cache write failed:", err)
	}

	return out, nil
}

func clientDisplayName(client *models.Client) string {
	if client.Name != "" {
		return client.Name
	}
	if client.InstagramName != "" {
		return client.InstagramName
	}
	return "Klient bez nazwy"
}
