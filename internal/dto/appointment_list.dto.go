package dto

type AppointmentListDTO struct {
	ID             uint    `json:"id"`
	Date           string  `json:"date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	ClientName     string  `json:"client_name"`
	ServiceType    string  `json:"service_type"`
	ServiceDetails string  `json:"service_details"`
	Price          float64 `json:"price"`
	PaymentStatus  string  `json:"payment_status"`
	DepositPaid    bool    `json:"deposit_paid"`
}
