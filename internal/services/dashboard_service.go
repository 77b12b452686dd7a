package services

import (
	"nursery_manager/internal/billing"
	"nursery_manager/internal/models"
	"nursery_manager/internal/repository"

	"github.com/shopspring/decimal"
)

const recentBillsOnDashboard = 5

type DashboardStats struct {
	TotalSales          decimal.Decimal `json:"total_sales"`
	FormattedTotalSales string          `json:"formatted_total_sales"`
	TotalPlants         int64           `json:"total_plants"`
	LowStockAlerts      int64           `json:"low_stock_alerts"`
	RecentBills         []models.Bill   `json:"recent_bills"`
}

type DashboardService interface {
	Stats() (*DashboardStats, error)
}

type dashboardService struct {
	billRepo  repository.BillRepository
	plantRepo repository.PlantRepository
	currency  *billing.CurrencyFormatter
}

func NewDashboardService(billRepo repository.BillRepository, plantRepo repository.PlantRepository, currency *billing.CurrencyFormatter) DashboardService {
	return &dashboardService{billRepo: billRepo, plantRepo: plantRepo, currency: currency}
}

// Stats counts sales from every bill that is not waiting for approval.
func (s *dashboardService) Stats() (*DashboardStats, error) {
	total, err := s.billRepo.TotalSales()
	if err != nil {
		return nil, err
	}
	plants, err := s.plantRepo.Count()
	if err != nil {
		return nil, err
	}
	low, err := s.plantRepo.CountLowStock()
	if err != nil {
		return nil, err
	}
	recent, err := s.billRepo.Recent(recentBillsOnDashboard)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalSales:          total,
		FormattedTotalSales: s.currency.Format(total),
		TotalPlants:         plants,
		LowStockAlerts:      low,
		RecentBills:         recent,
	}, nil
}
