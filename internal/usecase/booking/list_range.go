package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BellaSalonPL/salon-scheduler/internal/domain/booking"
	"github.com/BellaSalonPL/salon-scheduler/internal/dto"
	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/models"
)

type ListAppointmentsByRange struct {
	repo domain.Repository
}

func NewListAppointmentsByRange(repo domain.Repository) *ListAppointmentsByRange {
	return &ListAppointmentsByRange{repo: repo}
}

// Execute lists one owner's appointments for [from, to] inclusive — the week
// strip and any custom range share this path.
func (uc *ListAppointmentsByRange) Execute(
	ctx context.Context,
	ownerID uint,
	from string,
	to string,
) ([]dto.AppointmentListDTO, error) {

	if _, err := time.Parse("2006-01-02", from); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if to < from {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	appointments, err := uc.repo.ListAppointmentsForRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(repo domain.Repository) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{repo: repo}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	ownerID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if year < 2000 || year > 2100 {
		return nil, httperr.ErrBusiness("invalid_year")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	from := fmt.Sprintf("%04d-%02d-01", year, month)
	to := last.Format("2006-01-02")

	appointments, err := uc.repo.ListAppointmentsForRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		ap := &appointments[i]
		out = append(out, dto.AppointmentListDTO{
			ID:             ap.ID,
			Date:           ap.Date,
			StartTime:      ap.StartTime,
			EndTime:        ap.EndTime,
			ClientName:     clientDisplayName(&ap.Client),
			ServiceType:    ap.ServiceType,
			ServiceDetails: ap.ServiceDetails,
			Price:          ap.Price,
			PaymentStatus:  ap.PaymentStatus,
			DepositPaid:    ap.DepositPaid,
		})
	}
	return out
}
