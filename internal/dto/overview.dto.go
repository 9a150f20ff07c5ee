package dto

type OverviewStats struct {
	TodayAppointments int     `json:"today_appointments"`
	WeekAppointments  int     `json:"week_appointments"`
	TotalClients      int     `json:"total_clients"`
	MonthRevenue      float64 `json:"month_revenue"`
	TodayRevenue      float64 `json:"today_revenue"`
	UnpaidCount       int     `json:"unpaid_count"`
}

type Overview struct {
	Stats    OverviewStats        `json:"stats"`
	Today    []AppointmentListDTO `json:"today"`
	Upcoming []AppointmentListDTO `json:"upcoming"`
}
