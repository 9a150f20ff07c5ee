package booking

import (
	"context"
	"time"

	domain "github.com/BellaSalonPL/salon-scheduler/internal/domain/booking"
	"github.com/BellaSalonPL/salon-scheduler/internal/dto"
)

type GetOverview struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetOverview(repo domain.Repository, now func() time.Time) *GetOverview {
	if now == nil {
		now = time.Now
	}
	return &GetOverview{repo: repo, now: now}
}

// Execute computes the dashboard stats from the start of the current month
// through three months out (enough to cover the upcoming list). Weeks start
// on Monday.
func (uc *GetOverview) Execute(
	ctx context.Context,
	ownerID uint,
) (*dto.Overview, error) {

	now := uc.now()
	today := now.Format("2006-01-02")

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	weekStart := now.AddDate(0, 0, -int((now.Weekday()+6)%7))
	horizon := now.AddDate(0, 3, 0)

	appointments, err := uc.repo.ListAppointmentsForRange(
		ctx,
		ownerID,
		monthStart.Format("2006-01-02"),
		horizon.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	out := &dto.Overview{
		Today:    []dto.AppointmentListDTO{},
		Upcoming: []dto.AppointmentListDTO{},
	}

	monthEndStr := monthEnd.Format("2006-01-02")
	weekStartStr := weekStart.Format("2006-01-02")

	clientIDs := make(map[uint]struct{})

	for i := range appointments {
		ap := &appointments[i]

		if ap.ClientID != 0 {
			clientIDs[ap.ClientID] = struct{}{}
		}

		inMonth := ap.Date <= monthEndStr

		if inMonth {
			out.Stats.MonthRevenue += ap.Price
			if ap.PaymentStatus == "unpaid" {
				out.Stats.UnpaidCount++
			}
		}

		if ap.Date == today {
			out.Stats.TodayAppointments++
			out.Stats.TodayRevenue += ap.Price
		}

		if ap.Date >= weekStartStr && ap.Date <= today {
			out.Stats.WeekAppointments++
		}
	}

	out.Stats.TotalClients = len(clientIDs)

	// The repository returns date+start ascending, so both lists are
	// already in display order.
	for i := range appointments {
		ap := &appointments[i]
		switch {
		case ap.Date == today:
			out.Today = append(out.Today, toListDTOs(appointments[i:i+1])...)
		case ap.Date > today && len(out.Upcoming) < 5:
			out.Upcoming = append(out.Upcoming, toListDTOs(appointments[i:i+1])...)
		}
	}

	return out, nil
}
