package model

type DashboardStats struct {
	TotalCars       int64   `json:"total_cars"`
	ActiveCars      int64   `json:"active_cars"`
	TotalQuotes     int64   `json:"total_quotes"`
	DraftQuotes     int64   `json:"draft_quotes"`
	SentQuotes      int64   `json:"sent_quotes"`
	ConfirmedQuotes int64   `json:"confirmed_quotes"`
	RecentQuotes    []Quote `json:"recent_quotes"`
}
