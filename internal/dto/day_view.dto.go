package dto

// DayViewItem is one rendered calendar block. ColumnIndex/TotalColumns are
// rendering geometry only; they are never persisted.
type DayViewItem struct {
	ID             uint    `json:"id"`
	ClientName     string  `json:"client_name"`
	ServiceType    string  `json:"service_type"`
	ServiceDetails string  `json:"service_details"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	DurationMin    int     `json:"duration_min"`
	Price          float64 `json:"price"`
	DepositPaid    bool    `json:"deposit_paid"`
	PaymentStatus  string  `json:"payment_status"`
	Notes          string  `json:"notes"`
	ColumnIndex    int     `json:"column_index"`
	TotalColumns   int     `json:"total_columns"`
}

// SkippedItem reports a record excluded from the layout because its stored
// time data is unusable.
type SkippedItem struct {
	ID     uint   `json:"id"`
	Reason string `json:"reason"`
}

type DaySchedule struct {
	Date         string        `json:"date"`
	DayStartHour int           `json:"day_start_hour"`
	DayEndHour   int           `json:"day_end_hour"`
	Items        []DayViewItem `json:"items"`
	Skipped      []SkippedItem `json:"skipped,omitempty"`
}
