package report

type TodaySummary struct {
	Revenue    int64 `json:"revenue"`
	OrderCount int   `json:"order_count"`
}

type TomorrowSummary struct {
	OrderCount int `json:"order_count"`
}

type WeekSummary struct {
	Revenue int64 `json:"revenue"`
}

type DayRevenue struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
}

type StatusDistribution struct {
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
	Paid      int `json:"paid"`
}

type Alerts struct {
	LateOrders      int `json:"late_orders"`
	SoonOrders      int `json:"soon_orders"`
	NoDepositOrders int `json:"no_deposit_orders"`
}

// Dashboard is the admin overview payload.
type Dashboard struct {
	Today              TodaySummary       `json:"today"`
	Tomorrow           TomorrowSummary    `json:"tomorrow"`
	Week               WeekSummary        `json:"week"`
	Last7DaysRevenue   []DayRevenue       `json:"last_7_days_revenue"`
	StatusDistribution StatusDistribution `json:"status_distribution"`
	Alerts             Alerts             `json:"alerts"`
}

// RangeRevenue answers the arbitrary date-range revenue query.
type RangeRevenue struct {
	From         string `json:"from"`
	To           string `json:"to"`
	TotalRevenue int64  `json:"total_revenue"`
	OrderCount   int    `json:"order_count"`
}

// Summary aggregates a reporting period regardless of status.
type Summary struct {
	TotalOrders    int   `json:"total_orders"`
	TotalRevenue   int64 `json:"total_revenue"`
	TotalDeposit   int64 `json:"total_deposit"`
	TotalRemaining int64 `json:"total_remaining"`
}
