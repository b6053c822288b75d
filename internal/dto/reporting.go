package dto

// SalesChartParams defines query parameters for the N-day revenue chart.
type SalesChartParams struct {
	Days int `form:"days,default=7" binding:"min=0"`
}

// TopListParams defines query parameters for top-N ranking endpoints.
type TopListParams struct {
	Limit int `form:"limit,default=5" binding:"min=0"`
}
