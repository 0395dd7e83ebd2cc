package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_stores.go -package=mocks

import (
	"context"
	"io"
	"time"

	"datavault360/internal/models"
	"datavault360/internal/repository"
)

// UserStore is implemented by repository.UserRepository
type UserStore interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	FindRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	RevokeRefreshTokenByHash(ctx context.Context, hash string) error
}

// AccountStore is implemented by repository.AccountRepository
type AccountStore interface {
	CreateDoctor(ctx context.Context, user *models.User, doctor *models.DoctorProfile, inv *models.Invitation) error
	CreatePatient(ctx context.Context, user *models.User, patient *models.PatientProfile, doctorIDs []uint, inv *models.Invitation) error
	CreateLab(ctx context.Context, user *models.User, lab *models.Lab) error
	DeleteUser(ctx context.Context, userID uint) error
}

// DoctorStore is implemented by repository.DoctorRepository
type DoctorStore interface {
	ListDoctors(ctx context.Context, scope repository.ProfileScope) ([]models.DoctorProfile, error)
	FindDoctorByID(ctx context.Context, id uint) (*models.DoctorProfile, error)
	FindDoctorByUserID(ctx context.Context, userID uint) (*models.DoctorProfile, error)
}

// PatientStore is implemented by repository.PatientRepository
type PatientStore interface {
	ListPatients(ctx context.Context, scope repository.ProfileScope) ([]models.PatientProfile, error)
	FindPatientByID(ctx context.Context, id uint) (*models.PatientProfile, error)
	FindPatientByUserID(ctx context.Context, userID uint) (*models.PatientProfile, error)
	ReplaceDoctors(ctx context.Context, patientID uint, doctorIDs []uint) error
}

// LabStore is implemented by repository.LabRepository
type LabStore interface {
	ListLabs(ctx context.Context) ([]models.Lab, error)
	FindLabByID(ctx context.Context, id uint) (*models.Lab, error)
	FindLabByUserID(ctx context.Context, userID uint) (*models.Lab, error)
}

// RoomStore is implemented by repository.RoomRepository
type RoomStore interface {
	GetAllRooms(ctx context.Context) ([]models.Room, error)
	GetRoomByID(ctx context.Context, id uint) (*models.Room, error)
	GetRoomByPatientID(ctx context.Context, patientID uint) (*models.Room, error)
	CreateRoom(ctx context.Context, room *models.Room) error
	DeleteRoom(ctx context.Context, id uint) error
	AdmitPatient(ctx context.Context, roomID, patientID uint) error
	ScheduleDischarge(ctx context.Context, roomID uint, at time.Time) error
	GetDueDischarges(ctx context.Context, now time.Time) ([]models.Room, error)
	VacateRoom(ctx context.Context, room models.Room) error
}

// VisitStore is implemented by repository.VisitRepository
type VisitStore interface {
	ListVisits(ctx context.Context, scope repository.RecordScope) ([]models.Visit, error)
	CreateVisit(ctx context.Context, visit *models.Visit) error
}

// LabTestStore is implemented by repository.LabTestRepository
type LabTestStore interface {
	ListLabTests(ctx context.Context, scope repository.RecordScope) ([]models.LabTestRequest, error)
	FindLabTestByID(ctx context.Context, id uint) (*models.LabTestRequest, error)
	CreateLabTest(ctx context.Context, request *models.LabTestRequest) error
	CompleteLabTest(ctx context.Context, id uint, reportFile string, at time.Time) error
}

// InvitationStore is implemented by repository.InvitationRepository
type InvitationStore interface {
	CreateInvitation(ctx context.Context, inv *models.Invitation) error
	FindInvitationByToken(ctx context.Context, token string) (*models.Invitation, error)
	HasPendingInvitation(ctx context.Context, email string, now time.Time) (bool, error)
}

// AuditStore is implemented by repository.AuditRepository
type AuditStore interface {
	CreateAuditLog(ctx context.Context, userID *uint, action string, details string) error
}

// AnalyticsStore is implemented by repository.AnalyticsRepository
type AnalyticsStore interface {
	Counts(ctx context.Context, since time.Time) (*repository.Counts, error)
	MonthlyFinancials(ctx context.Context, since time.Time) ([]repository.MonthlyTotal, error)
	InventoryAttention(ctx context.Context, limit int) ([]models.InventoryItem, error)
}

// ReportStore keeps uploaded lab report files; implemented by storage.LocalStore
type ReportStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Open(name string) (io.ReadCloser, error)
	Remove(name string) error
}
