package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"datavault360/internal/models"
	"datavault360/internal/repository"
)

type VisitService struct {
	visitRepo VisitStore
	auditRepo AuditStore
	scoper
}

func NewVisitService(visitRepo VisitStore, doctorRepo DoctorStore, patientRepo PatientStore, labRepo LabStore, auditRepo AuditStore) *VisitService {
	return &VisitService{
		visitRepo: visitRepo,
		auditRepo: auditRepo,
		scoper:    scoper{doctorRepo: doctorRepo, patientRepo: patientRepo, labRepo: labRepo},
	}
}

// ListVisits returns the visits caller may read; labs have none
func (s *VisitService) ListVisits(ctx context.Context, caller Caller) ([]models.Visit, error) {
	if caller.IsLab() {
		return nil, ErrForbidden
	}
	scope, err := s.recordScope(ctx, caller)
	if err != nil {
		return nil, err
	}
	return s.visitRepo.ListVisits(ctx, scope)
}

// CreateVisit records a visit authored by the calling doctor
func (s *VisitService) CreateVisit(ctx context.Context, caller Caller, visit *models.Visit) error {
	if !caller.IsDoctor() {
		return ErrForbidden
	}
	doctor, err := s.doctorRepo.FindDoctorByUserID(ctx, caller.UserID)
	if err != nil {
		return profileError(err)
	}

	if _, err := s.patientRepo.FindPatientByID(ctx, visit.PatientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownPatient
		}
		return err
	}

	visit.DoctorID = doctor.ID
	if visit.VisitDate.IsZero() {
		visit.VisitDate = time.Now().UTC()
	}
	if err := s.visitRepo.CreateVisit(ctx, visit); err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "visit_create",
		fmt.Sprintf("Visit %d recorded for patient %d", visit.ID, visit.PatientID))
	return nil
}
