package repository

import (
	"context"
	"time"

	"datavault360/internal/models"

	"gorm.io/gorm"
)

// AccountRepository creates and removes a user together with its role profile.
// When an invitation is passed it is consumed in the same transaction.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateDoctor inserts the user and doctor profile
func (r *AccountRepository) CreateDoctor(ctx context.Context, user *models.User, doctor *models.DoctorProfile, inv *models.Invitation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := consumeInvitation(tx, inv); err != nil {
			return err
		}
		if err := tx.Create(user).Error; err != nil {
			return translate(err)
		}
		doctor.UserID = user.ID
		if err := tx.Omit("User").Create(doctor).Error; err != nil {
			return translate(err)
		}
		doctor.User = *user
		return nil
	})
}

// CreatePatient inserts the user, patient profile and doctor assignments
func (r *AccountRepository) CreatePatient(ctx context.Context, user *models.User, patient *models.PatientProfile, doctorIDs []uint, inv *models.Invitation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := consumeInvitation(tx, inv); err != nil {
			return err
		}
		if err := tx.Create(user).Error; err != nil {
			return translate(err)
		}
		patient.UserID = user.ID
		if err := tx.Omit("User", "AssignedDoctors").Create(patient).Error; err != nil {
			return translate(err)
		}
		if len(doctorIDs) > 0 {
			var doctors []models.DoctorProfile
			if err := tx.Where("id IN ?", doctorIDs).Find(&doctors).Error; err != nil {
				return err
			}
			if len(doctors) != len(doctorIDs) {
				return ErrNotFound
			}
			if err := tx.Model(patient).Association("AssignedDoctors").Replace(doctors); err != nil {
				return err
			}
			patient.AssignedDoctors = doctors
		}
		patient.User = *user
		return nil
	})
}

// CreateLab inserts the user and lab
func (r *AccountRepository) CreateLab(ctx context.Context, user *models.User, lab *models.Lab) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return translate(err)
		}
		lab.UserID = user.ID
		if err := tx.Omit("User").Create(lab).Error; err != nil {
			return translate(err)
		}
		lab.User = *user
		return nil
	})
}

// DeleteUser removes the account; profiles, rooms and requests follow the FK rules
func (r *AccountRepository) DeleteUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// consumeInvitation flips is_used only if nobody else did first
func consumeInvitation(tx *gorm.DB, inv *models.Invitation) error {
	if inv == nil {
		return nil
	}
	now := time.Now().UTC()
	res := tx.Model(&models.Invitation{}).
		Where("id = ? AND is_used = ? AND expires_at > ?", inv.ID, false, now).
		Updates(map[string]interface{}{"is_used": true, "used_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStale
	}
	inv.IsUsed = true
	inv.UsedAt = &now
	return nil
}
