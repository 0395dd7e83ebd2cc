package service

import (
	"context"

	"datavault360/internal/models"
	"datavault360/internal/repository"
)

// scoper resolves a caller to the profile rows it may read records of
type scoper struct {
	doctorRepo  DoctorStore
	patientRepo PatientStore
	labRepo     LabStore
}

func (s scoper) recordScope(ctx context.Context, caller Caller) (repository.RecordScope, error) {
	var scope repository.RecordScope
	switch caller.Role {
	case models.RoleAdmin:
	case models.RoleDoctor:
		doctor, err := s.doctorRepo.FindDoctorByUserID(ctx, caller.UserID)
		if err != nil {
			return scope, profileError(err)
		}
		scope.DoctorID = doctor.ID
	case models.RolePatient:
		patient, err := s.patientRepo.FindPatientByUserID(ctx, caller.UserID)
		if err != nil {
			return scope, profileError(err)
		}
		scope.PatientID = patient.ID
	case models.RoleLab:
		lab, err := s.labRepo.FindLabByUserID(ctx, caller.UserID)
		if err != nil {
			return scope, profileError(err)
		}
		scope.LabID = lab.ID
	default:
		return scope, ErrForbidden
	}
	return scope, nil
}

// allows reports whether a record with the given owners falls inside scope
func allows(scope repository.RecordScope, patientID, doctorID, labID uint) bool {
	if scope.PatientID != 0 && scope.PatientID != patientID {
		return false
	}
	if scope.DoctorID != 0 && scope.DoctorID != doctorID {
		return false
	}
	if scope.LabID != 0 && scope.LabID != labID {
		return false
	}
	return true
}
