package booking

import (
	"context"
	"log"

	"github.com/BellaSalonPL/salon-scheduler/internal/audit"
	domain "github.com/BellaSalonPL/salon-scheduler/internal/domain/booking"
	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/models"
)

type UpdatePaymentInput struct {
	SalonID       uint
	OwnerID       uint
	AppointmentID uint

	Price         *float64
	DepositPaid   *bool
	PaymentStatus *string
}

type UpdateAppointmentPayment struct {
	repo  domain.Repository
	audit Auditor
	days  DayCache
}

func NewUpdateAppointmentPayment(
	repo domain.Repository,
	audit Auditor,
	days DayCache,
) *UpdateAppointmentPayment {
	return &UpdateAppointmentPayment{
		repo:  repo,
		audit: audit,
		days:  days,
	}
}

// Execute edits the payment fields only; date, times and owner never change
// through this path.
func (uc *UpdateAppointmentPayment) Execute(
	ctx context.Context,
	in UpdatePaymentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForOwner(ctx, in.AppointmentID, in.OwnerID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.ApplyPaymentEdit(ap, in.Price, in.DepositPaid, in.PaymentStatus); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.OwnerID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	if err := uc.days.Invalidate(ctx, in.OwnerID, ap.Date); err != nil {
		log.Println("day cache invalidate failed:", err)
	}

	return ap, nil
}
