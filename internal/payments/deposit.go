package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BellaSalonPL/salon-scheduler/internal/dto"
	"github.com/BellaSalonPL/salon-scheduler/internal/models"
)

// DepositLinker creates a Mercado Pago checkout preference so a client can
// pay the booking deposit up front.
type DepositLinker struct {
	prefs preference.Client
}

func NewDepositLinker(accessToken string) (*DepositLinker, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payments: mercadopago config: %w", err)
	}
	return &DepositLinker{prefs: preference.NewClient(cfg)}, nil
}

// CreateForAppointment builds a single-item preference for the given amount.
// The appointment ID travels as the external reference so a webhook or manual
// reconciliation can tie the payment back to the booking.
func (d *DepositLinker) CreateForAppointment(
	ctx context.Context,
	ap *models.Appointment,
	amount float64,
) (*dto.DepositLink, error) {

	if amount <= 0 {
		return nil, fmt.Errorf("payments: deposit amount must be positive, got %.2f", amount)
	}

	title := ap.ServiceDetails
	if title == "" {
		title = ap.ServiceType
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     fmt.Sprintf("Zadatek: %s (%s %s)", title, ap.Date, ap.StartTime),
				Quantity:  1,
				UnitPrice: amount,
			},
		},
		ExternalReference: fmt.Sprintf("appointment-%d", ap.ID),
	}

	resource, err := d.prefs.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("payments: create preference: %w", err)
	}

	return &dto.DepositLink{
		PreferenceID:  resource.ID,
		CheckoutURL:   resource.InitPoint,
		Amount:        amount,
		AppointmentID: ap.ID,
	}, nil
}
