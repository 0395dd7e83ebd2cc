package repository

import (
	"context"
	"time"

	"datavault360/internal/models"

	"gorm.io/gorm"
)

type LabTestRepository struct {
	db *gorm.DB
}

func NewLabTestRepo(db *gorm.DB) *LabTestRepository {
	return &LabTestRepository{db: db}
}

// ListLabTests returns requests newest first, pending and completed alike
func (r *LabTestRepository) ListLabTests(ctx context.Context, scope RecordScope) ([]models.LabTestRequest, error) {
	var requests []models.LabTestRequest
	q := r.db.WithContext(ctx).
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Lab").
		Order("created_at DESC, id DESC")
	if err := scope.apply(q).Find(&requests).Error; err != nil {
		return nil, err
	}
	for i := range requests {
		requests[i].FillNames()
	}
	return requests, nil
}

// FindLabTestByID retrieves a single request
func (r *LabTestRepository) FindLabTestByID(ctx context.Context, id uint) (*models.LabTestRequest, error) {
	var request models.LabTestRequest
	err := r.db.WithContext(ctx).
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Lab").
		First(&request, id).Error
	if err != nil {
		return nil, translate(err)
	}
	request.FillNames()
	return &request, nil
}

// CreateLabTest stores a new PENDING request
func (r *LabTestRepository) CreateLabTest(ctx context.Context, request *models.LabTestRequest) error {
	request.Status = models.LabTestPending
	return r.db.WithContext(ctx).Omit("Patient", "Doctor", "Lab").Create(request).Error
}

// CompleteLabTest attaches the report and flips PENDING to COMPLETED in one statement
func (r *LabTestRepository) CompleteLabTest(ctx context.Context, id uint, reportFile string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.LabTestRequest{}).
		Where("id = ? AND status = ?", id, models.LabTestPending).
		Updates(map[string]interface{}{
			"status":       models.LabTestCompleted,
			"report_file":  reportFile,
			"completed_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStale
	}
	return nil
}
