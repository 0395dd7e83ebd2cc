package repository

import (
	"context"
	"time"

	"datavault360/internal/models"

	"gorm.io/gorm"
)

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepo(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// CreateInvitation stores a freshly issued invitation
func (r *InvitationRepository) CreateInvitation(ctx context.Context, inv *models.Invitation) error {
	return translate(r.db.WithContext(ctx).Create(inv).Error)
}

// FindInvitationByToken retrieves an invitation regardless of its state
func (r *InvitationRepository) FindInvitationByToken(ctx context.Context, token string) (*models.Invitation, error) {
	var inv models.Invitation
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&inv).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

// HasPendingInvitation reports whether email holds an unused, unexpired invitation
func (r *InvitationRepository) HasPendingInvitation(ctx context.Context, email string, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Invitation{}).
		Where("email = ? AND is_used = ? AND expires_at > ?", email, false, now).
		Count(&count).Error
	return count > 0, err
}
