package repository

import (
	"context"

	"datavault360/internal/models"

	"gorm.io/gorm"
)

// ProfileScope narrows a listing to what one caller may see.
// Zero values mean no restriction.
type ProfileScope struct {
	UserID        uint // the profile owned by this user
	DoctorID      uint // patients assigned to this doctor
	PatientUserID uint // doctors assigned to the patient owned by this user
}

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// ListDoctors returns doctor profiles with their users in creation order
func (r *DoctorRepository) ListDoctors(ctx context.Context, scope ProfileScope) ([]models.DoctorProfile, error) {
	q := r.db.WithContext(ctx).Preload("User").Order("doctor_profiles.id ASC")
	if scope.UserID != 0 {
		q = q.Where("doctor_profiles.user_id = ?", scope.UserID)
	}
	if scope.PatientUserID != 0 {
		q = q.Joins("INNER JOIN patient_doctors ON patient_doctors.doctor_profile_id = doctor_profiles.id").
			Joins("INNER JOIN patient_profiles ON patient_profiles.id = patient_doctors.patient_profile_id").
			Where("patient_profiles.user_id = ?", scope.PatientUserID)
	}
	var doctors []models.DoctorProfile
	err := q.Find(&doctors).Error
	return doctors, err
}

// FindDoctorByID retrieves a doctor profile by ID
func (r *DoctorRepository) FindDoctorByID(ctx context.Context, id uint) (*models.DoctorProfile, error) {
	var doctor models.DoctorProfile
	if err := r.db.WithContext(ctx).Preload("User").First(&doctor, id).Error; err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

// FindDoctorByUserID retrieves the doctor profile owned by a user
func (r *DoctorRepository) FindDoctorByUserID(ctx context.Context, userID uint) (*models.DoctorProfile, error) {
	var doctor models.DoctorProfile
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// ListPatients returns patients with users, assigned doctors and current room
func (r *PatientRepository) ListPatients(ctx context.Context, scope ProfileScope) ([]models.PatientProfile, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("AssignedDoctors.User").
		Order("patient_profiles.id ASC")
	if scope.UserID != 0 {
		q = q.Where("patient_profiles.user_id = ?", scope.UserID)
	}
	if scope.DoctorID != 0 {
		q = q.Joins("INNER JOIN patient_doctors ON patient_doctors.patient_profile_id = patient_profiles.id").
			Where("patient_doctors.doctor_profile_id = ?", scope.DoctorID)
	}
	var patients []models.PatientProfile
	if err := q.Find(&patients).Error; err != nil {
		return nil, err
	}
	if err := r.attachRooms(ctx, patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// FindPatientByID retrieves a patient profile by ID
func (r *PatientRepository) FindPatientByID(ctx context.Context, id uint) (*models.PatientProfile, error) {
	var patient models.PatientProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("AssignedDoctors.User").
		First(&patient, id).Error
	if err != nil {
		return nil, translate(err)
	}
	patients := []models.PatientProfile{patient}
	if err := r.attachRooms(ctx, patients); err != nil {
		return nil, err
	}
	return &patients[0], nil
}

// FindPatientByUserID retrieves the patient profile owned by a user
func (r *PatientRepository) FindPatientByUserID(ctx context.Context, userID uint) (*models.PatientProfile, error) {
	var patient models.PatientProfile
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		return nil, translate(err)
	}
	return &patient, nil
}

// ReplaceDoctors sets the patient's assigned doctors to exactly doctorIDs
func (r *PatientRepository) ReplaceDoctors(ctx context.Context, patientID uint, doctorIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patient := models.PatientProfile{ID: patientID}
		var doctors []models.DoctorProfile
		if len(doctorIDs) > 0 {
			if err := tx.Where("id IN ?", doctorIDs).Find(&doctors).Error; err != nil {
				return err
			}
			if len(doctors) != len(doctorIDs) {
				return ErrNotFound
			}
		}
		return tx.Model(&patient).Association("AssignedDoctors").Replace(doctors)
	})
}

// attachRooms fills AssignedRoom from the rooms table in one query
func (r *PatientRepository) attachRooms(ctx context.Context, patients []models.PatientProfile) error {
	if len(patients) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(patients))
	for _, p := range patients {
		ids = append(ids, p.ID)
	}
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Select("id", "room_number", "room_type", "patient_id").
		Where("patient_id IN ?", ids).
		Find(&rooms).Error
	if err != nil {
		return err
	}
	byPatient := make(map[uint]*models.RoomRef, len(rooms))
	for _, room := range rooms {
		byPatient[*room.PatientID] = &models.RoomRef{ID: room.ID, RoomNumber: room.RoomNumber, RoomType: room.RoomType}
	}
	for i := range patients {
		patients[i].AssignedRoom = byPatient[patients[i].ID]
	}
	return nil
}

type LabRepository struct {
	db *gorm.DB
}

func NewLabRepo(db *gorm.DB) *LabRepository {
	return &LabRepository{db: db}
}

// ListLabs returns every lab ordered by name
func (r *LabRepository) ListLabs(ctx context.Context) ([]models.Lab, error) {
	var labs []models.Lab
	err := r.db.WithContext(ctx).Preload("User").Order("name ASC").Find(&labs).Error
	return labs, err
}

// FindLabByID retrieves a lab by ID
func (r *LabRepository) FindLabByID(ctx context.Context, id uint) (*models.Lab, error) {
	var lab models.Lab
	if err := r.db.WithContext(ctx).Preload("User").First(&lab, id).Error; err != nil {
		return nil, translate(err)
	}
	return &lab, nil
}

// FindLabByUserID retrieves the lab owned by a user
func (r *LabRepository) FindLabByUserID(ctx context.Context, userID uint) (*models.Lab, error) {
	var lab models.Lab
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&lab).Error
	if err != nil {
		return nil, translate(err)
	}
	return &lab, nil
}
