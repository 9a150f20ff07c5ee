package booking

import (
	"context"
	"log"
	"time"

	"github.com/BellaSalonPL/salon-scheduler/internal/audit"
	domain "github.com/BellaSalonPL/salon-scheduler/internal/domain/booking"
	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/models"
	"github.com/BellaSalonPL/salon-scheduler/internal/schedule"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID uint
	OwnerID uint

	ClientInstagram string
	ClientName      string
	ClientEmail     string
	ClientPhone     string

	ServiceType    string
	ServiceDetails string

	Date      string
	StartTime string
	EndTime   string

	Price         float64
	DepositPaid   bool
	PaymentStatus string
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit Auditor
	days  DayCache
}

func NewCreateAppointment(
	repo domain.Repository,
	audit Auditor,
	days DayCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		days:  days,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the booking flow: validate, fetch the owner's day, check for
// overlap, persist, audit, invalidate the cached day. The conflict check and
// the insert are intentionally not serialized in one transaction; a race
// between two concurrent writers is an accepted gap for a single-owner salon.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	candidate, err := schedule.NewInterval(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	if in.ClientInstagram == "" && in.ClientName == "" && in.ClientEmail == "" {
		return nil, httperr.ErrBusiness("missing_client_identifier")
	}

	if in.ServiceDetails == "" {
		return nil, httperr.ErrBusiness("missing_service_details")
	}

	if in.Price <= 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	status := in.PaymentStatus
	if status == "" {
		status = models.PaymentUnpaid
	}
	if !domain.IsValidPaymentStatus(status) {
		return nil, httperr.ErrBusiness("invalid_payment_status")
	}

	// --------------------------------------------------
	// Conflict check against the owner's day
	// --------------------------------------------------
	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.OwnerID, in.Date)
	if err != nil {
		// A failed fetch means availability is UNKNOWN, never "free".
		return nil, &domain.AvailabilityUnknownError{Cause: err}
	}

	intervals := make([]schedule.Interval, 0, len(existing))
	for _, ap := range existing {
		iv, err := schedule.NewInterval(ap.StartTime, ap.EndTime)
		if err != nil {
			// A stored record we cannot read makes the whole day
			// undecidable for booking purposes.
			return nil, &domain.AvailabilityUnknownError{Cause: err}
		}
		intervals = append(intervals, iv)
	}

	if idx, conflict := schedule.FindConflict(candidate, intervals); conflict {
		uc.audit.Dispatch(audit.Event{
			SalonID: in.SalonID,
			UserID:  &in.OwnerID,
			Action:  "appointment_conflict",
			Entity:  "appointment",
			Metadata: map[string]any{
				"date":  in.Date,
				"start": in.StartTime,
				"end":   in.EndTime,
			},
		})

		return nil, &domain.ConflictError{
			Date:  existing[idx].Date,
			Start: existing[idx].StartTime,
			End:   existing[idx].EndTime,
		}
	}

	// --------------------------------------------------
	// Client (find by strongest identifier, else create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(ctx, in.SalonID, domain.ClientContact{
		InstagramName: in.ClientInstagram,
		Name:          in.ClientName,
		Email:         in.ClientEmail,
		Phone:         in.ClientPhone,
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	ap := &models.Appointment{
		SalonID:        in.SalonID,
		OwnerID:        in.OwnerID,
		ClientID:       client.ID,
		ServiceType:    in.ServiceType,
		ServiceDetails: in.ServiceDetails,
		Date:           in.Date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		DurationMin:    candidate.Duration(),
		Price:          in.Price,
		DepositPaid:    in.DepositPaid,
		PaymentStatus:  status,
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}
	ap.Client = *client

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.OwnerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	if err := uc.days.Invalidate(ctx, in.OwnerID, in.Date); err != nil {
		log.Println("day cache invalidate failed:", err)
	}

	return ap, nil
}
