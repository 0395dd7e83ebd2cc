package models

import "time"

// Financial record directions
const (
	TransactionIncome  = "INCOME"
	TransactionExpense = "EXPENSE"
)

// FinancialRecord is one income or expense entry in the ledger
type FinancialRecord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TransactionType string    `gorm:"type:enum('INCOME','EXPENSE');not null;index" json:"transaction_type"`
	Amount          float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category        string    `gorm:"size:100" json:"category"`
	Date            time.Time `gorm:"type:date;not null;index" json:"date"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (FinancialRecord) TableName() string {
	return "financial_records"
}

// InventoryItem is a stocked supply
type InventoryItem struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"size:200;not null" json:"name"`
	Category          string    `gorm:"size:100" json:"category"`
	Quantity          int       `gorm:"not null;default:0" json:"quantity"`
	Unit              string    `gorm:"size:50" json:"unit"`
	LowStockThreshold int       `gorm:"not null;default:10" json:"low_stock_threshold"`
	CostPerUnit       float64   `gorm:"type:decimal(10,2);default:0" json:"cost_per_unit"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// LowStock reports whether the item is at or under its threshold
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}
