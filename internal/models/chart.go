package models

// ChartData is the precomputed statistics bundle for one calendar year,
// returned by Get-order-chart.
type ChartData struct {
	TotalOrders          int                    `json:"totalOrders"`
	TotalProducts        int                    `json:"totalProducts"`
	TotalRevenue         float64                `json:"totalRevenue"`
	TotalUsers           int                    `json:"totalUsers"`
	RecentOrders         []RecentOrder          `json:"recentOrders"`
	MonthlySales         []MonthlySale          `json:"monthlySales"`
	CategoryDistribution []CategoryDistribution `json:"categoryDistribution"`
}

// RecentOrder is one row of the dashboard's recent-orders slice.
type RecentOrder struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	OrderDate   string  `json:"orderDate"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
}

// MonthlySale is one point of the monthly sales series.
type MonthlySale struct {
	Month int     `json:"month"`
	Sales float64 `json:"sales"`
}

// CategoryDistribution is one slice of the category sales breakdown.
type CategoryDistribution struct {
	CategoryID   int     `json:"categoryID"`
	CategoryName string  `json:"categoryName"`
	Sales        float64 `json:"sales"`
	PercentSales float64 `json:"percentSales"`
}
