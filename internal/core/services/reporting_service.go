package services

import (
	"context"
	"fmt"
	"time"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	portsrepo "github.com/latadairy/dairy_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// ReportingService serves the dashboard's read-only aggregates. All windows
// use UTC calendar days; "this month" means the current UTC month.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
	now           func() time.Time
}

// ReportingOption configures a ReportingService.
type ReportingOption func(*ReportingService)

// WithClock overrides the service's notion of the current time.
func WithClock(now func() time.Time) ReportingOption {
	return func(s *ReportingService) {
		s.now = now
	}
}

func NewReportingService(reportingRepo portsrepo.ReportingRepository, opts ...ReportingOption) *ReportingService {
	s := &ReportingService{
		reportingRepo: reportingRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ReportingService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	now := s.now()
	today := now.Format(domain.DateLayout)
	monthStart, monthEnd := domain.MonthWindow(int(now.Month()), now.Year())

	stats := &domain.DashboardStats{}

	var err error
	stats.TodayRevenue, stats.TodayTransactions, err = s.reportingRepo.DayTotals(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to compute today's totals: %w", err)
	}

	stats.MonthRevenue, stats.MonthSalesCount, err = s.reportingRepo.WindowTotals(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute month totals: %w", err)
	}

	stats.TotalOutstanding, err = s.reportingRepo.TotalOutstanding(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute total outstanding: %w", err)
	}

	stats.TotalCustomers, err = s.reportingRepo.CountActiveCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	stats.TotalProducts, err = s.reportingRepo.CountActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	return stats, nil
}

// GetSalesChart returns one point per calendar day from today-days through
// today, oldest first. Days without sales appear as zero points, so the
// chart always has days+1 entries.
func (s *ReportingService) GetSalesChart(ctx context.Context, days int) ([]domain.ChartPoint, error) {
	today := s.now().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -days)

	series, err := s.reportingRepo.DailyTotalsSeries(ctx, start.Format(domain.DateLayout), today.Format(domain.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to load sales chart series: %w", err)
	}

	byDate := make(map[string]domain.ChartPoint, len(series))
	for _, point := range series {
		byDate[point.Date] = point
	}

	points := make([]domain.ChartPoint, 0, days+1)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		date := d.Format(domain.DateLayout)
		point, ok := byDate[date]
		if !ok {
			point = domain.ChartPoint{Date: date, Revenue: decimal.Zero}
		}
		point.Day = d.Format("Mon")
		points = append(points, point)
	}

	return points, nil
}

// GetTopCustomers ranks this month's customers by purchase total. A limit of
// zero yields an empty ranking; a limit above the number of ranked customers
// yields them all.
func (s *ReportingService) GetTopCustomers(ctx context.Context, limit int) ([]domain.CustomerRanking, error) {
	if limit <= 0 {
		return []domain.CustomerRanking{}, nil
	}
	now := s.now()
	start, end := domain.MonthWindow(int(now.Month()), now.Year())

	rankings, err := s.reportingRepo.TopCustomers(ctx, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top customers: %w", err)
	}
	return rankings, nil
}

// GetTopProducts ranks this month's products by item revenue over daily sales.
// The limit follows the same contract as GetTopCustomers.
func (s *ReportingService) GetTopProducts(ctx context.Context, limit int) ([]domain.ProductRanking, error) {
	if limit <= 0 {
		return []domain.ProductRanking{}, nil
	}
	now := s.now()
	start, end := domain.MonthWindow(int(now.Month()), now.Year())

	rankings, err := s.reportingRepo.TopProducts(ctx, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top products: %w", err)
	}
	return rankings, nil
}
