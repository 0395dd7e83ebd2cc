package repository

import (
	"context"

	"datavault360/internal/models"

	"gorm.io/gorm"
)

const maxAuditAction = 100

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog records who did what; it is written even after ctx is cancelled
func (r *AuditRepository) CreateAuditLog(ctx context.Context, userID *uint, action string, details string) error {
	if len(action) > maxAuditAction {
		action = action[:maxAuditAction]
	}
	entry := &models.AuditLog{UserID: userID, Action: action, Details: details}
	return r.db.WithContext(context.WithoutCancel(ctx)).Create(entry).Error
}
