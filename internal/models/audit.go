package models

import "time"

// AuditLog represents the audit_logs table
// Records logins, provisioning and room/lab state changes
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"created_at"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}

// All lists every model managed by AutoMigrate, parents first
func All() []interface{} {
	return []interface{}{
		&User{},
		&RefreshToken{},
		&DoctorProfile{},
		&PatientProfile{},
		&Lab{},
		&Room{},
		&Visit{},
		&LabTestRequest{},
		&Invitation{},
		&AuditLog{},
		&FinancialRecord{},
		&InventoryItem{},
	}
}
