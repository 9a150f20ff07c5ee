package booking

import (
	"context"
	"log"

	"github.com/BellaSalonPL/salon-scheduler/internal/audit"
	domain "github.com/BellaSalonPL/salon-scheduler/internal/domain/booking"
	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit Auditor
	days  DayCache
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit Auditor,
	days DayCache,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
		days:  days,
	}
}

// Execute removes the record permanently; the handler is responsible for
// requiring explicit confirmation before calling this.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	salonID uint,
	ownerID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentForOwner(ctx, appointmentID, ownerID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &ownerID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
		Metadata: map[string]any{
			"date":  ap.Date,
			"start": ap.StartTime,
			"end":   ap.EndTime,
		},
	})

	if err := uc.days.Invalidate(ctx, ownerID, ap.Date); err != nil {
		log.Println("day cache invalidate failed:", err)
	}

	return nil
}
