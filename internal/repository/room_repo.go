package repository

import (
	"context"
	"time"

	"datavault360/internal/models"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetAllRooms retrieves every room with its current patient
func (r *RoomRepository) GetAllRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Preload("Patient.User").
		Order("room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

// GetRoomByID retrieves a room by ID
func (r *RoomRepository) GetRoomByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Preload("Patient.User").First(&room, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

// GetRoomByPatientID retrieves the room a patient currently occupies
func (r *RoomRepository) GetRoomByPatientID(ctx context.Context, patientID uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).First(&room).Error
	if err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

// CreateRoom creates a new room; a taken room_number yields ErrDuplicate
func (r *RoomRepository) CreateRoom(ctx context.Context, room *models.Room) error {
	return translate(r.db.WithContext(ctx).Omit("Patient").Create(room).Error)
}

// DeleteRoom removes a room permanently
func (r *RoomRepository) DeleteRoom(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AdmitPatient sets the room's patient only while the room is empty.
// ErrStale means another admission won; ErrDuplicate means the patient holds another room.
func (r *RoomRepository) AdmitPatient(ctx context.Context, roomID, patientID uint) error {
	res := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ? AND patient_id IS NULL", roomID).
		Updates(map[string]interface{}{
			"patient_id":          patientID,
			"scheduled_discharge": nil,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStale
	}
	return nil
}

// ScheduleDischarge overwrites the discharge time of an occupied room
func (r *RoomRepository) ScheduleDischarge(ctx context.Context, roomID uint, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ? AND patient_id IS NOT NULL", roomID).
		Update("scheduled_discharge", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStale
	}
	return nil
}

// GetDueDischarges lists occupied rooms whose discharge time is not after now
func (r *RoomRepository) GetDueDischarges(ctx context.Context, now time.Time) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Where("patient_id IS NOT NULL AND scheduled_discharge IS NOT NULL AND scheduled_discharge <= ?", now).
		Order("scheduled_discharge ASC").
		Find(&rooms).Error
	return rooms, err
}

// VacateRoom frees a room if its discharge is still the one that fell due.
// A reschedule or readmission in between makes this a no-op returning ErrStale.
func (r *RoomRepository) VacateRoom(ctx context.Context, room models.Room) error {
	res := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ? AND patient_id = ? AND scheduled_discharge = ?", room.ID, room.PatientID, room.ScheduledDischarge).
		Updates(map[string]interface{}{
			"patient_id":          nil,
			"scheduled_discharge": nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStale
	}
	return nil
}
