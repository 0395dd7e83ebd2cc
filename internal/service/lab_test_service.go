package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"datavault360/internal/models"
	"datavault360/internal/repository"

	"go.uber.org/zap"
)

// LabTestService handles test orders from doctors and their completion by labs
type LabTestService struct {
	labTestRepo LabTestStore
	reports     ReportStore
	auditRepo   AuditStore
	scoper
	now func() time.Time
	log *zap.Logger
}

func NewLabTestService(
	labTestRepo LabTestStore,
	doctorRepo DoctorStore,
	patientRepo PatientStore,
	labRepo LabStore,
	reports ReportStore,
	auditRepo AuditStore,
	log *zap.Logger,
) *LabTestService {
	return &LabTestService{
		labTestRepo: labTestRepo,
		reports:     reports,
		auditRepo:   auditRepo,
		scoper:      scoper{doctorRepo: doctorRepo, patientRepo: patientRepo, labRepo: labRepo},
		now:         time.Now,
		log:         log,
	}
}

// ListLabTests returns the requests caller may read
func (s *LabTestService) ListLabTests(ctx context.Context, caller Caller) ([]models.LabTestRequest, error) {
	scope, err := s.recordScope(ctx, caller)
	if err != nil {
		return nil, err
	}
	return s.labTestRepo.ListLabTests(ctx, scope)
}

// CreateLabTest orders tests for a patient from one lab; the doctor is the caller
func (s *LabTestService) CreateLabTest(ctx context.Context, caller Caller, patientID, labID uint, testNames string) (*models.LabTestRequest, error) {
	if !caller.IsDoctor() {
		return nil, ErrForbidden
	}
	testNames = strings.TrimSpace(testNames)
	if testNames == "" {
		return nil, FieldErrors{"test_names": "This field may not be blank."}
	}

	doctor, err := s.doctorRepo.FindDoctorByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, profileError(err)
	}
	if _, err := s.patientRepo.FindPatientByID(ctx, patientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownPatient
		}
		return nil, err
	}
	if _, err := s.labRepo.FindLabByID(ctx, labID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownLab
		}
		return nil, err
	}

	request := &models.LabTestRequest{
		PatientID: patientID,
		DoctorID:  doctor.ID,
		LabID:     labID,
		TestNames: testNames,
	}
	if err := s.labTestRepo.CreateLabTest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create lab test: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "lab_test_create",
		fmt.Sprintf("Lab test %d ordered from lab %d for patient %d", request.ID, labID, patientID))
	return request, nil
}

// CompleteLabTest stores the report and marks the request completed.
// Only the assigned lab (or an admin) may complete it, and only once.
func (s *LabTestService) CompleteLabTest(ctx context.Context, caller Caller, id uint, filename string, report io.Reader) (*models.LabTestRequest, error) {
	if !caller.IsLab() && !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	if report == nil || filename == "" {
		return nil, FieldErrors{"report_file": "No file was submitted."}
	}

	request, err := s.visibleRequest(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if request.Status == models.LabTestCompleted {
		return nil, ErrLabTestCompleted
	}

	stored, err := s.reports.Save(ctx, path.Base(filename), report)
	if err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}

	if err := s.labTestRepo.CompleteLabTest(ctx, id, stored, s.now().UTC()); err != nil {
		if rmErr := s.reports.Remove(stored); rmErr != nil {
			s.log.Warn("Failed to remove orphaned report", zap.String("file", stored), zap.Error(rmErr))
		}
		if errors.Is(err, repository.ErrStale) {
			return nil, ErrLabTestCompleted
		}
		return nil, fmt.Errorf("failed to complete lab test: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "lab_test_complete",
		fmt.Sprintf("Lab test %d completed with report %s", id, stored))
	return s.labTestRepo.FindLabTestByID(ctx, id)
}

// OpenReport opens the report of a completed request the caller may read
func (s *LabTestService) OpenReport(ctx context.Context, caller Caller, id uint) (io.ReadCloser, string, error) {
	request, err := s.visibleRequest(ctx, caller, id)
	if err != nil {
		return nil, "", err
	}
	if request.Status != models.LabTestCompleted || request.ReportFile == "" {
		return nil, "", ErrNotFound
	}

	rc, err := s.reports.Open(request.ReportFile)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open report: %w", err)
	}
	return rc, request.ReportFile, nil
}

// visibleRequest loads a request and hides it from callers outside its scope
func (s *LabTestService) visibleRequest(ctx context.Context, caller Caller, id uint) (*models.LabTestRequest, error) {
	scope, err := s.recordScope(ctx, caller)
	if err != nil {
		return nil, err
	}
	request, err := s.labTestRepo.FindLabTestByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !allows(scope, request.PatientID, request.DoctorID, request.LabID) {
		return nil, ErrNotFound
	}
	return request, nil
}
