package dto

type PaymentRow struct {
	ID             uint    `json:"id"`
	ClientName     string  `json:"client_name"`
	ServiceType    string  `json:"service_type"`
	ServiceDetails string  `json:"service_details"`
	Date           string  `json:"date"`
	Price          float64 `json:"price"`
	DepositPaid    bool    `json:"deposit_paid"`
	PaymentStatus  string  `json:"payment_status"`
}

type PaymentsSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	PaidCount    int     `json:"paid_count"`
	UnpaidCount  int     `json:"unpaid_count"`
}

type DepositLink struct {
	PreferenceID  string  `json:"preference_id"`
	CheckoutURL   string  `json:"checkout_url"`
	Amount        float64 `json:"amount"`
	AppointmentID uint    `json:"appointment_id"`
}
