package booking

import (
	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/models"
)

func IsValidPaymentStatus(status string) bool {
	switch status {
	case models.PaymentUnpaid, models.PaymentCash, models.PaymentTransfer:
		return true
	}
	return false
}

// ApplyPaymentEdit mutates the editable fields only. Date, times and owner
// are fixed for the life of the record.
func ApplyPaymentEdit(ap *models.Appointment, price *float64, depositPaid *bool, paymentStatus *string) error {
	if price != nil {
		if *price <= 0 {
			return httperr.ErrBusiness("invalid_price")
		}
		ap.Price = *price
	}
	if depositPaid != nil {
		ap.DepositPaid = *depositPaid
	}
	if paymentStatus != nil {
		if !IsValidPaymentStatus(*paymentStatus) {
			return httperr.ErrBusiness("invalid_payment_status")
		}
		ap.PaymentStatus = *paymentStatus
	}
	return nil
}
