package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"datavault360/internal/models"
	"datavault360/internal/repository"
	"datavault360/pkg/utils"
)

// AccountService manages doctor, patient and lab accounts created directly
// with admin-supplied credentials, and the role-scoped listings of them.
type AccountService struct {
	userRepo    UserStore
	accountRepo AccountStore
	doctorRepo  DoctorStore
	patientRepo PatientStore
	labRepo     LabStore
	auditRepo   AuditStore
}

func NewAccountService(
	userRepo UserStore,
	accountRepo AccountStore,
	doctorRepo DoctorStore,
	patientRepo PatientStore,
	labRepo LabStore,
	auditRepo AuditStore,
) *AccountService {
	return &AccountService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		labRepo:     labRepo,
		auditRepo:   auditRepo,
	}
}

// Credentials are the login details an admin picks for a direct account
type Credentials struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// PatientDetails are the demographic fields of a patient profile
type PatientDetails struct {
	Gender      string
	DateOfBirth *time.Time
	PhoneNumber string
	AddressLine string
	City        string
	State       string
	PostalCode  string
	Country     string
}

func (d PatientDetails) apply(p *models.PatientProfile) {
	p.Gender = d.Gender
	p.DateOfBirth = d.DateOfBirth
	p.PhoneNumber = d.PhoneNumber
	p.AddressLine = d.AddressLine
	p.City = d.City
	p.State = d.State
	p.PostalCode = d.PostalCode
	p.Country = d.Country
}

// newUser validates credentials and builds an unsaved user with a hashed password
func newUser(ctx context.Context, users UserStore, cred Credentials, role string) (*models.User, error) {
	if utils.PasswordTooShort(cred.Password) {
		return nil, ErrPasswordTooShort
	}

	taken, err := users.UsernameTaken(ctx, cred.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := utils.HashPassword(cred.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &models.User{
		Username:     cred.Username,
		Email:        cred.Email,
		PasswordHash: hash,
		FirstName:    cred.FirstName,
		LastName:     cred.LastName,
		Role:         role,
	}, nil
}

// accountError maps repository failures of an account transaction
func accountError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return ErrUsernameTaken
	case errors.Is(err, repository.ErrNotFound):
		return ErrUnknownDoctor
	}
	return err
}

// ListDoctors returns the doctors visible to caller.
// Admins and labs see all, doctors see themselves, patients see their assigned doctors.
func (s *AccountService) ListDoctors(ctx context.Context, caller Caller) ([]models.DoctorProfile, error) {
	scope := repository.ProfileScope{}
	switch caller.Role {
	case models.RoleDoctor:
		scope.UserID = caller.UserID
	case models.RolePatient:
		scope.PatientUserID = caller.UserID
	}
	return s.doctorRepo.ListDoctors(ctx, scope)
}

// CreateDoctor creates a doctor account with admin-supplied credentials
func (s *AccountService) CreateDoctor(ctx context.Context, caller Caller, cred Credentials, specialization string) (*models.DoctorProfile, error) {
	user, err := newUser(ctx, s.userRepo, cred, models.RoleDoctor)
	if err != nil {
		return nil, err
	}

	doctor := &models.DoctorProfile{Specialization: specialization}
	if err := s.accountRepo.CreateDoctor(ctx, user, doctor, nil); err != nil {
		return nil, accountError(err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "doctor_create",
		fmt.Sprintf("Created doctor %s (ID: %d)", user.Username, doctor.ID))
	return doctor, nil
}

// DeleteDoctor removes a doctor and the login behind it
func (s *AccountService) DeleteDoctor(ctx context.Context, caller Caller, id uint) error {
	doctor, err := s.doctorRepo.FindDoctorByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownDoctor
		}
		return err
	}
	if err := s.accountRepo.DeleteUser(ctx, doctor.UserID); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "doctor_delete",
		fmt.Sprintf("Deleted doctor %s (ID: %d)", doctor.User.Username, id))
	return nil
}

// ListPatients returns the patients visible to caller.
// Admins see all, doctors see assigned patients, patients see themselves.
func (s *AccountService) ListPatients(ctx context.Context, caller Caller) ([]models.PatientProfile, error) {
	scope := repository.ProfileScope{}
	switch caller.Role {
	case models.RoleAdmin:
	case models.RoleDoctor:
		doctor, err := s.doctorRepo.FindDoctorByUserID(ctx, caller.UserID)
		if err != nil {
			return nil, profileError(err)
		}
		scope.DoctorID = doctor.ID
	case models.RolePatient:
		scope.UserID = caller.UserID
	default:
		return nil, ErrForbidden
	}
	return s.patientRepo.ListPatients(ctx, scope)
}

// CreatePatient creates a patient account with admin-supplied credentials.
// A doctor creating a patient is assigned to it in place of doctorIDs.
func (s *AccountService) CreatePatient(ctx context.Context, caller Caller, cred Credentials, details PatientDetails, doctorIDs []uint) (*models.PatientProfile, error) {
	if caller.IsDoctor() {
		doctor, err := s.doctorRepo.FindDoctorByUserID(ctx, caller.UserID)
		if err != nil {
			return nil, profileError(err)
		}
		doctorIDs = []uint{doctor.ID}
	}

	user, err := newUser(ctx, s.userRepo, cred, models.RolePatient)
	if err != nil {
		return nil, err
	}

	patient := &models.PatientProfile{}
	details.apply(patient)
	if err := s.accountRepo.CreatePatient(ctx, user, patient, uniqueIDs(doctorIDs), nil); err != nil {
		return nil, accountError(err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "patient_create",
		fmt.Sprintf("Created patient %s (ID: %d)", user.Username, patient.ID))
	return patient, nil
}

// AssignDoctors replaces the set of doctors assigned to a patient
func (s *AccountService) AssignDoctors(ctx context.Context, caller Caller, patientID uint, doctorIDs []uint) (*models.PatientProfile, error) {
	if _, err := s.patientRepo.FindPatientByID(ctx, patientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownPatient
		}
		return nil, err
	}

	if err := s.patientRepo.ReplaceDoctors(ctx, patientID, uniqueIDs(doctorIDs)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownDoctor
		}
		return nil, fmt.Errorf("failed to assign doctors: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "patient_assign_doctors",
		fmt.Sprintf("Patient %d assigned doctors %v", patientID, doctorIDs))
	return s.patientRepo.FindPatientByID(ctx, patientID)
}

// DeletePatient removes a patient and the login behind it; an occupied room is freed by the FK
func (s *AccountService) DeletePatient(ctx context.Context, caller Caller, id uint) error {
	patient, err := s.patientRepo.FindPatientByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownPatient
		}
		return err
	}
	if err := s.accountRepo.DeleteUser(ctx, patient.UserID); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "patient_delete",
		fmt.Sprintf("Deleted patient %s (ID: %d)", patient.User.Username, id))
	return nil
}

// ListLabs returns every lab
func (s *AccountService) ListLabs(ctx context.Context) ([]models.Lab, error) {
	return s.labRepo.ListLabs(ctx)
}

// CreateLab creates a lab account; labs are never invited
func (s *AccountService) CreateLab(ctx context.Context, caller Caller, cred Credentials, name, address string) (*models.Lab, error) {
	user, err := newUser(ctx, s.userRepo, cred, models.RoleLab)
	if err != nil {
		return nil, err
	}

	lab := &models.Lab{Name: name, Address: address}
	if err := s.accountRepo.CreateLab(ctx, user, lab); err != nil {
		return nil, accountError(err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "lab_create",
		fmt.Sprintf("Created lab %s (user: %s)", name, user.Username))
	return lab, nil
}

// DeleteLab removes a lab and its login
func (s *AccountService) DeleteLab(ctx context.Context, caller Caller, id uint) error {
	lab, err := s.labRepo.FindLabByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownLab
		}
		return err
	}
	if err := s.accountRepo.DeleteUser(ctx, lab.UserID); err != nil {
		return fmt.Errorf("failed to delete lab: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "lab_delete",
		fmt.Sprintf("Deleted lab %s (ID: %d)", lab.Name, id))
	return nil
}

// profileError reports a caller whose role profile is missing as forbidden
func profileError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrForbidden
	}
	return err
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
