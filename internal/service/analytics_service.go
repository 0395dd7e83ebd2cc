package service

import (
	"context"
	"time"

	"datavault360/internal/repository"
)

const (
	// RecentVisitWindow is how far back the dashboard counts visits
	RecentVisitWindow = 30 * 24 * time.Hour
	// FinancialMonths is how many calendar months the ledger overview spans, current month included
	FinancialMonths = 6
	// InventoryAttentionLimit caps the items listed under inventory
	InventoryAttentionLimit = 10
)

// InventoryLevel is an item as the dashboard lists it
type InventoryLevel struct {
	Name              string `json:"name"`
	Category          string `json:"category"`
	Quantity          int    `json:"quantity"`
	Unit              string `json:"unit"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	LowStock          bool   `json:"low_stock"`
}

// Analytics is the admin dashboard summary
type Analytics struct {
	Doctors  int64 `json:"doctors"`
	Patients int64 `json:"patients"`
	Labs     int64 `json:"labs"`
	Rooms    struct {
		Total              int64 `json:"total"`
		Occupied           int64 `json:"occupied"`
		Available          int64 `json:"available"`
		DischargeScheduled int64 `json:"discharge_scheduled"`
	} `json:"rooms"`
	ByRoomType []repository.RoomTypeOccupancy `json:"by_room_type"`
	LabTests   struct {
		Pending   int64 `json:"pending"`
		Completed int64 `json:"completed"`
	} `json:"lab_tests"`
	RecentVisits  int64                     `json:"recent_visits"`
	LowStockItems int64                     `json:"low_stock_items"`
	Financials    []repository.MonthlyTotal `json:"financials"`
	Inventory     []InventoryLevel          `json:"inventory"`
	GeneratedAt   time.Time                 `json:"generated_at"`
}

type AnalyticsService struct {
	analyticsRepo AnalyticsStore
	now           func() time.Time
}

func NewAnalyticsService(analyticsRepo AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo, now: time.Now}
}

// Summary gathers the dashboard counts, the monthly ledger and the stock levels
func (s *AnalyticsService) Summary(ctx context.Context) (*Analytics, error) {
	now := s.now().UTC()
	c, err := s.analyticsRepo.Counts(ctx, now.Add(-RecentVisitWindow))
	if err != nil {
		return nil, err
	}

	a := &Analytics{
		Doctors:       c.Doctors,
		Patients:      c.Patients,
		Labs:          c.Labs,
		ByRoomType:    c.ByRoomType,
		RecentVisits:  c.RecentVisits,
		LowStockItems: c.LowStockItems,
		GeneratedAt:   now,
	}
	a.Rooms.Total = c.Rooms
	a.Rooms.Occupied = c.OccupiedRooms
	a.Rooms.Available = c.Rooms - c.OccupiedRooms
	a.Rooms.DischargeScheduled = c.DischargesPending
	a.LabTests.Pending = c.PendingLabTests
	a.LabTests.Completed = c.CompletedLabTests
	if a.ByRoomType == nil {
		a.ByRoomType = []repository.RoomTypeOccupancy{}
	}

	months := lastMonths(now, FinancialMonths)
	totals, err := s.analyticsRepo.MonthlyFinancials(ctx, months[0])
	if err != nil {
		return nil, err
	}
	a.Financials = fillMonths(months, totals)

	items, err := s.analyticsRepo.InventoryAttention(ctx, InventoryAttentionLimit)
	if err != nil {
		return nil, err
	}
	a.Inventory = make([]InventoryLevel, 0, len(items))
	for _, item := range items {
		a.Inventory = append(a.Inventory, InventoryLevel{
			Name:              item.Name,
			Category:          item.Category,
			Quantity:          item.Quantity,
			Unit:              item.Unit,
			LowStockThreshold: item.LowStockThreshold,
			LowStock:          item.LowStock(),
		})
	}
	return a, nil
}

// lastMonths returns the first instant of each of the n months ending with now's, oldest first
func lastMonths(now time.Time, n int) []time.Time {
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	months := make([]time.Time, n)
	for i := range months {
		months[i] = current.AddDate(0, i-n+1, 0)
	}
	return months
}

// fillMonths lines totals up with months; a month without records reports zero
func fillMonths(months []time.Time, totals []repository.MonthlyTotal) []repository.MonthlyTotal {
	byMonth := make(map[string]repository.MonthlyTotal, len(totals))
	for _, t := range totals {
		byMonth[t.Month] = t
	}
	out := make([]repository.MonthlyTotal, len(months))
	for i, m := range months {
		key := m.Format("2006-01")
		out[i] = repository.MonthlyTotal{Month: key, Income: byMonth[key].Income, Expense: byMonth[key].Expense}
	}
	return out
}
