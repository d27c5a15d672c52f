package models

// DashboardStats are the headline counters on the staff dashboard.
type DashboardStats struct {
	TodayCount   int    `json:"today_count"`
	PendingCount int    `json:"pending_count"`
	VIPPax       int    `json:"vip_pax"`
	Revenue      string `json:"revenue"`
}

// ChartPoint is one day of the 7-day bookings chart.
type ChartPoint struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
}

// Dashboard is the aggregate payload from the upstream dashboard endpoint.
type Dashboard struct {
	Stats          DashboardStats `json:"stats"`
	ChartData      []ChartPoint   `json:"chart_data"`
	RecentBookings []Reservation  `json:"recent_bookings"`
}
