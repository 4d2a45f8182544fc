package models

// DashboardStats is the payload of GET /dashboard/stats.
type DashboardStats struct {
	TotalApplications  int     `json:"total_applications"`
	Applied            int     `json:"applied"`
	Interviews         int     `json:"interviews"`
	Offers             int     `json:"offers"`
	Accepted           int     `json:"accepted"`
	Rejected           int     `json:"rejected"`
	Withdrawn          int     `json:"withdrawn"`
	UpcomingInterviews int     `json:"upcoming_interviews"`
	ResponseRate       float64 `json:"response_rate"`
}
