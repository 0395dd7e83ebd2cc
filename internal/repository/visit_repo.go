package repository

import (
	"context"

	"datavault360/internal/models"

	"gorm.io/gorm"
)

// RecordScope restricts visits and lab test listings; zero fields are ignored
type RecordScope struct {
	PatientID uint
	DoctorID  uint
	LabID     uint
}

func (s RecordScope) apply(q *gorm.DB) *gorm.DB {
	if s.PatientID != 0 {
		q = q.Where("patient_id = ?", s.PatientID)
	}
	if s.DoctorID != 0 {
		q = q.Where("doctor_id = ?", s.DoctorID)
	}
	if s.LabID != 0 {
		q = q.Where("lab_id = ?", s.LabID)
	}
	return q
}

type VisitRepository struct {
	db *gorm.DB
}

func NewVisitRepo(db *gorm.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

// ListVisits returns visits newest first with patient and doctor names
func (r *VisitRepository) ListVisits(ctx context.Context, scope RecordScope) ([]models.Visit, error) {
	var visits []models.Visit
	q := r.db.WithContext(ctx).
		Preload("Patient.User").
		Preload("Doctor.User").
		Order("visit_date DESC, id DESC")
	if err := scope.apply(q).Find(&visits).Error; err != nil {
		return nil, err
	}
	for i := range visits {
		visits[i].FillNames()
	}
	return visits, nil
}

// CreateVisit stores a new visit
func (r *VisitRepository) CreateVisit(ctx context.Context, visit *models.Visit) error {
	return r.db.WithContext(ctx).Omit("Patient", "Doctor").Create(visit).Error
}
