package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"datavault360/internal/models"
	"datavault360/internal/repository"
)

type RoomService struct {
	roomRepo    RoomStore
	patientRepo PatientStore
	auditRepo   AuditStore
	now         func() time.Time
}

func NewRoomService(roomRepo RoomStore, patientRepo PatientStore, auditRepo AuditStore) *RoomService {
	return &RoomService{
		roomRepo:    roomRepo,
		patientRepo: patientRepo,
		auditRepo:   auditRepo,
		now:         time.Now,
	}
}

// GetAllRooms retrieves every room ordered by number
func (s *RoomService) GetAllRooms(ctx context.Context) ([]models.Room, error) {
	return s.roomRepo.GetAllRooms(ctx)
}

// GetRoomByID retrieves a room by ID
func (s *RoomService) GetRoomByID(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.roomRepo.GetRoomByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

// CreateRoom creates an empty room (admin only)
func (s *RoomService) CreateRoom(ctx context.Context, caller Caller, room *models.Room) error {
	if room.RoomType == "" {
		room.RoomType = models.RoomTypeGeneral
	}
	if !validRoomType(room.RoomType) {
		return FieldErrors{"room_type": fmt.Sprintf("%q is not a valid choice.", room.RoomType)}
	}
	room.PatientID = nil
	room.ScheduledDischarge = nil

	if err := s.roomRepo.CreateRoom(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrRoomNumberTaken
		}
		return fmt.Errorf("failed to create room: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "room_create",
		fmt.Sprintf("Created room: %s (type: %s)", room.RoomNumber, room.RoomType))
	return nil
}

// AdmitPatient places a patient in an empty room.
// Of two concurrent admissions to one room exactly one succeeds.
func (s *RoomService) AdmitPatient(ctx context.Context, caller Caller, roomID, patientID uint) (*models.Room, error) {
	room, err := s.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.IsOccupied() {
		return nil, ErrRoomOccupied
	}

	if _, err := s.patientRepo.FindPatientByID(ctx, patientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownPatient
		}
		return nil, err
	}

	if err := s.roomRepo.AdmitPatient(ctx, roomID, patientID); err != nil {
		switch {
		case errors.Is(err, repository.ErrStale):
			return nil, ErrRoomOccupied
		case errors.Is(err, repository.ErrDuplicate):
			return nil, s.alreadyAdmitted(ctx, patientID)
		}
		return nil, fmt.Errorf("failed to admit patient: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "room_admit",
		fmt.Sprintf("Admitted patient %d to room %s", patientID, room.RoomNumber))
	return s.GetRoomByID(ctx, roomID)
}

// alreadyAdmitted names the room the patient holds when it can be found
func (s *RoomService) alreadyAdmitted(ctx context.Context, patientID uint) error {
	held, err := s.roomRepo.GetRoomByPatientID(ctx, patientID)
	if err != nil {
		return ErrPatientAlreadyAdmitted
	}
	return fmt.Errorf("%w to room %s", ErrPatientAlreadyAdmitted, held.RoomNumber)
}

// ScheduleDischarge sets or overwrites the discharge time of an occupied room
func (s *RoomService) ScheduleDischarge(ctx context.Context, caller Caller, roomID uint, at time.Time) (*models.Room, error) {
	if !at.After(s.now()) {
		return nil, ErrDischargeInPast
	}

	room, err := s.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.IsOccupied() {
		return nil, ErrRoomNotOccupied
	}

	if err := s.roomRepo.ScheduleDischarge(ctx, roomID, at.UTC()); err != nil {
		if errors.Is(err, repository.ErrStale) {
			return nil, ErrRoomNotOccupied
		}
		return nil, fmt.Errorf("failed to schedule discharge: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "room_schedule_discharge",
		fmt.Sprintf("Room %s discharge scheduled for %s", room.RoomNumber, at.UTC().Format(time.RFC3339)))
	return s.GetRoomByID(ctx, roomID)
}

// DeleteRoom removes a room permanently (admin only)
func (s *RoomService) DeleteRoom(ctx context.Context, caller Caller, id uint) error {
	room, err := s.GetRoomByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.roomRepo.DeleteRoom(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete room: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "room_delete",
		fmt.Sprintf("Deleted room: %s (ID: %d)", room.RoomNumber, id))
	return nil
}

func validRoomType(t string) bool {
	for _, rt := range models.RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}
