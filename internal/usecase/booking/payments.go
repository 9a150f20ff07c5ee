package booking

import (
	"context"
	"strings"

	domain "github.com/BellaSalonPL/salon-scheduler/internal/domain/booking"
	"github.com/BellaSalonPL/salon-scheduler/internal/dto"
	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
)

type ListPayments struct {
	repo domain.Repository
}

func NewListPayments(repo domain.Repository) *ListPayments {
	return &ListPayments{repo: repo}
}

// Execute returns the payments table newest-date first, optionally filtered
// by payment status and a free-text match on client or service.
func (uc *ListPayments) Execute(
	ctx context.Context,
	ownerID uint,
	status string,
	search string,
) ([]dto.PaymentRow, error) {

	if status != "" && !domain.IsValidPaymentStatus(status) {
		return nil, httperr.ErrBusiness("invalid_payment_status")
	}

	appointments, err := uc.repo.ListPayments(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))

	rows := make([]dto.PaymentRow, 0, len(appointments))
	for i := range appointments {
		ap := &appointments[i]

		if status != "" && ap.PaymentStatus != status {
			continue
		}

		name := clientDisplayName(&ap.Client)
		if search != "" &&
			!strings.Contains(strings.ToLower(name), search) &&
			!strings.Contains(strings.ToLower(ap.ServiceDetails), search) {
			continue
		}

		rows = append(rows, dto.PaymentRow{
			ID:             ap.ID,
			ClientName:     name,
			ServiceType:    ap.ServiceType,
			ServiceDetails: ap.ServiceDetails,
			Date:           ap.Date,
			Price:          ap.Price,
			DepositPaid:    ap.DepositPaid,
			PaymentStatus:  ap.PaymentStatus,
		})
	}

	return rows, nil
}

// Summarize folds a filtered payment list into the header totals.
func Summarize(rows []dto.PaymentRow) dto.PaymentsSummary {
	var s dto.PaymentsSummary
	for _, r := range rows {
		s.TotalRevenue += r.Price
		if r.PaymentStatus == "unpaid" {
			s.UnpaidCount++
		} else {
			s.PaidCount++
		}
	}
	return s
}
