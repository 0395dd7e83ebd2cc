package repository

import (
	"context"
	"time"

	"datavault360/internal/models"

	"gorm.io/gorm"
)

// RoomTypeOccupancy is one row of the per-type occupancy breakdown
type RoomTypeOccupancy struct {
	RoomType string `json:"room_type"`
	Total    int64  `json:"total"`
	Occupied int64  `json:"occupied"`
}

// MonthlyTotal is the ledger summed over one calendar month, keyed YYYY-MM
type MonthlyTotal struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Counts is the raw material of the admin dashboard
type Counts struct {
	Doctors           int64               `json:"doctors"`
	Patients          int64               `json:"patients"`
	Labs              int64               `json:"labs"`
	Rooms             int64               `json:"rooms"`
	OccupiedRooms     int64               `json:"occupied_rooms"`
	DischargesPending int64               `json:"discharges_pending"`
	PendingLabTests   int64               `json:"pending_lab_tests"`
	CompletedLabTests int64               `json:"completed_lab_tests"`
	RecentVisits      int64               `json:"recent_visits"`
	LowStockItems     int64               `json:"low_stock_items"`
	ByRoomType        []RoomTypeOccupancy `json:"by_room_type"`
}

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Counts gathers totals; visits are counted from since onwards
func (r *AnalyticsRepository) Counts(ctx context.Context, since time.Time) (*Counts, error) {
	db := r.db.WithContext(ctx)
	c := &Counts{}

	counters := []struct {
		model interface{}
		where string
		args  []interface{}
		dest  *int64
	}{
		{&models.DoctorProfile{}, "", nil, &c.Doctors},
		{&models.PatientProfile{}, "", nil, &c.Patients},
		{&models.Lab{}, "", nil, &c.Labs},
		{&models.Room{}, "", nil, &c.Rooms},
		{&models.Room{}, "patient_id IS NOT NULL", nil, &c.OccupiedRooms},
		{&models.Room{}, "patient_id IS NOT NULL AND scheduled_discharge IS NOT NULL", nil, &c.DischargesPending},
		{&models.LabTestRequest{}, "status = ?", []interface{}{models.LabTestPending}, &c.PendingLabTests},
		{&models.LabTestRequest{}, "status = ?", []interface{}{models.LabTestCompleted}, &c.CompletedLabTests},
		{&models.Visit{}, "visit_date >= ?", []interface{}{since}, &c.RecentVisits},
		{&models.InventoryItem{}, "quantity <= low_stock_threshold", nil, &c.LowStockItems},
	}
	for _, counter := range counters {
		q := db.Model(counter.model)
		if counter.where != "" {
			q = q.Where(counter.where, counter.args...)
		}
		if err := q.Count(counter.dest).Error; err != nil {
			return nil, err
		}
	}

	err := db.Model(&models.Room{}).
		Select("room_type, COUNT(*) AS total, SUM(CASE WHEN patient_id IS NOT NULL THEN 1 ELSE 0 END) AS occupied").
		Group("room_type").
		Order("room_type ASC").
		Scan(&c.ByRoomType).Error
	if err != nil {
		return nil, err
	}

	return c, nil
}

// MonthlyFinancials sums income and expense per month for records dated on or after since.
// Months without records are absent.
func (r *AnalyticsRepository) MonthlyFinancials(ctx context.Context, since time.Time) ([]MonthlyTotal, error) {
	var totals []MonthlyTotal
	err := r.db.WithContext(ctx).Model(&models.FinancialRecord{}).
		Select("DATE_FORMAT(date, '%Y-%m') AS month, "+
			"COALESCE(SUM(CASE WHEN transaction_type = ? THEN amount ELSE 0 END), 0) AS income, "+
			"COALESCE(SUM(CASE WHEN transaction_type = ? THEN amount ELSE 0 END), 0) AS expense",
			models.TransactionIncome, models.TransactionExpense).
		Where("date >= ?", since).
		Group("month").
		Order("month ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// InventoryAttention returns up to limit items, closest to running out first
func (r *AnalyticsRepository) InventoryAttention(ctx context.Context, limit int) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).
		Order("quantity - low_stock_threshold ASC, name ASC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
