package domain

import "github.com/shopspring/decimal"

// DashboardStats is the read-only rollup shown on the dashboard landing view.
type DashboardStats struct {
	TodayRevenue      decimal.Decimal `json:"today_revenue"`
	TodayTransactions int             `json:"today_transactions"`
	MonthRevenue      decimal.Decimal `json:"month_revenue"`
	TotalOutstanding  decimal.Decimal `json:"total_outstanding"`
	TotalCustomers    int             `json:"total_customers"`
	TotalProducts     int             `json:"total_products"`
	MonthSalesCount   int             `json:"month_sales_count"`
}

// ChartPoint is one calendar day of the revenue chart. Revenue and
// transaction counts cover both daily and guest sales.
type ChartPoint struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	Day          string          `json:"day"`  // weekday label, e.g. "Mon"
	Revenue      decimal.Decimal `json:"revenue"`
	Transactions int             `json:"transactions"`
}

// CustomerRanking is one row of the top-customers report for the current
// month. Ties in purchase totals are broken by customer ID.
type CustomerRanking struct {
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	PurchaseCount  int             `json:"purchase_count"`
}

// ProductRanking is one row of the top-products report for the current month,
// aggregated over the items of daily sales. Ties are broken by product ID.
type ProductRanking struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}
