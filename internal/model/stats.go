package model

// DashboardStats is the admin dashboard rollup. TotalRevenue sums the
// captured price of every membership record ever created, including
// expired and cancelled ones.
type DashboardStats struct {
	TotalUsers     int `json:"totalUsers"`
	TotalBookings  int `json:"totalBookings"`
	TotalRevenue   int `json:"totalRevenue"`
	ActiveMembers  int `json:"activeMembers"`
	UnreadMessages int `json:"unreadMessages"`
}
