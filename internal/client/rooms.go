package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"datavault360/internal/models"

	"go.uber.org/zap"
)

type (
	Room    = models.Room
	Patient = models.PatientProfile
)

// RoomState is either Available or Occupied
type RoomState interface {
	roomState()
}

type Available struct{}

// Occupied carries the admitted patient and, once scheduled, the discharge time
type Occupied struct {
	PatientID   uint
	DischargeAt *time.Time
}

func (Available) roomState() {}
func (Occupied) roomState()  {}

// StateOf derives the occupancy state from a room as the backend returned it
func StateOf(r Room) RoomState {
	if r.PatientID == nil {
		return Available{}
	}
	return Occupied{PatientID: *r.PatientID, DischargeAt: r.ScheduledDischarge}
}

// Admittable filters out patients that already hold a room
func Admittable(patients []Patient) []Patient {
	out := make([]Patient, 0, len(patients))
	for _, p := range patients {
		if p.AssignedRoom == nil {
			out = append(out, p)
		}
	}
	return out
}

// ErrNotConfirmed is returned when a destructive action was declined
var ErrNotConfirmed = errors.New("action was not confirmed")

// Confirm is asked before a room is deleted
type Confirm func(roomID uint) bool

// NewRoom describes a room to create
type NewRoom struct {
	RoomNumber string `json:"room_number" validate:"required,max=20"`
	RoomType   string `json:"room_type,omitempty" validate:"omitempty,oneof=GENERAL ICU PRIVATE SEMI"`
	Speciality string `json:"speciality,omitempty" validate:"max=100"`
}

// Rooms runs room lifecycle transitions; failures come back as *RoomOpError
type Rooms struct {
	api *API
}

func NewRooms(api *API) *Rooms {
	return &Rooms{api: api}
}

func (r *Rooms) List(ctx context.Context) ([]Room, error) {
	var rooms []Room
	if err := r.api.get(ctx, "rooms/", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *Rooms) Get(ctx context.Context, id uint) (*Room, error) {
	var room Room
	if err := r.api.get(ctx, fmt.Sprintf("rooms/%d/", id), &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *Rooms) Create(ctx context.Context, spec NewRoom) (*Room, error) {
	spec.RoomNumber = strings.TrimSpace(spec.RoomNumber)
	if err := checkForm(spec); err != nil {
		return nil, &RoomOpError{Op: "create", Err: err}
	}
	var room Room
	if err := r.api.post(ctx, "rooms/", spec, &room); err != nil {
		return nil, &RoomOpError{Op: "create", Err: err}
	}
	return &room, nil
}

// Admit places patientID in the room. The backend decides races; the loser gets a conflict.
func (r *Rooms) Admit(ctx context.Context, roomID, patientID uint) (*Room, error) {
	var room Room
	err := r.api.post(ctx, fmt.Sprintf("rooms/%d/admit/", roomID), map[string]uint{"patient_id": patientID}, &room)
	if err != nil {
		return nil, &RoomOpError{Op: "admit", RoomID: roomID, Err: err}
	}
	return &room, nil
}

// ScheduleDischarge sets or replaces the room's discharge time. The room stays occupied until then.
func (r *Rooms) ScheduleDischarge(ctx context.Context, roomID uint, at time.Time) (*Room, error) {
	var room Room
	err := r.api.post(ctx, fmt.Sprintf("rooms/%d/discharge/", roomID), map[string]time.Time{"discharge_time": at}, &room)
	if err != nil {
		return nil, &RoomOpError{Op: "discharge", RoomID: roomID, Err: err}
	}
	return &room, nil
}

// Delete removes the room once confirm agrees
func (r *Rooms) Delete(ctx context.Context, roomID uint, confirm Confirm) error {
	if confirm == nil || !confirm(roomID) {
		return &RoomOpError{Op: "delete", RoomID: roomID, Err: ErrNotConfirmed}
	}
	if err := r.api.delete(ctx, fmt.Sprintf("rooms/%d/", roomID)); err != nil {
		return &RoomOpError{Op: "delete", RoomID: roomID, Err: err}
	}
	return nil
}

var (
	ErrBoardClosed       = errors.New("room board is closed")
	ErrRefreshSuperseded = errors.New("refresh superseded by a newer one")
)

// RoomBoard is the room listing a dashboard shows.
// Every write is followed by a refetch, and a newer refetch cancels the one in flight,
// so the snapshot always comes from the latest request.
type RoomBoard struct {
	rooms RoomService
	log   *zap.Logger

	base context.Context
	stop context.CancelFunc

	mu       sync.Mutex
	snapshot []Room
	seq      uint64
	inflight context.CancelFunc
}

func NewRoomBoard(rooms RoomService, log *zap.Logger) *RoomBoard {
	if log == nil {
		log = zap.NewNop()
	}
	base, stop := context.WithCancel(context.Background())
	return &RoomBoard{rooms: rooms, log: log, base: base, stop: stop}
}

// Refresh reloads the listing. A failed or superseded refresh leaves the snapshot unchanged.
func (b *RoomBoard) Refresh(ctx context.Context) error {
	b.mu.Lock()
	if b.base.Err() != nil {
		b.mu.Unlock()
		return ErrBoardClosed
	}
	if b.inflight != nil {
		b.inflight()
	}
	b.seq++
	seq := b.seq
	rctx, cancel := context.WithCancel(ctx)
	unlink := context.AfterFunc(b.base, cancel)
	b.inflight = cancel
	b.mu.Unlock()

	rooms, err := b.rooms.List(rctx)
	unlink()
	cancel()

	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.seq {
		return ErrRefreshSuperseded
	}
	b.inflight = nil
	if b.base.Err() != nil {
		return ErrBoardClosed
	}
	if err != nil {
		b.log.Debug("Room refresh failed", zap.Error(err))
		return err
	}
	b.snapshot = rooms
	return nil
}

// Rooms returns a copy of the last loaded listing
func (b *RoomBoard) Rooms() []Room {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Room, len(b.snapshot))
	copy(out, b.snapshot)
	return out
}

// State looks a room up in the snapshot
func (b *RoomBoard) State(roomID uint) (RoomState, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.snapshot {
		if r.ID == roomID {
			return StateOf(r), true
		}
	}
	return nil, false
}

func (b *RoomBoard) Create(ctx context.Context, spec NewRoom) error {
	if _, err := b.rooms.Create(ctx, spec); err != nil {
		return err
	}
	return b.settle(ctx)
}

func (b *RoomBoard) Admit(ctx context.Context, roomID, patientID uint) error {
	if _, err := b.rooms.Admit(ctx, roomID, patientID); err != nil {
		return err
	}
	return b.settle(ctx)
}

func (b *RoomBoard) ScheduleDischarge(ctx context.Context, roomID uint, at time.Time) error {
	if _, err := b.rooms.ScheduleDischarge(ctx, roomID, at); err != nil {
		return err
	}
	return b.settle(ctx)
}

func (b *RoomBoard) Delete(ctx context.Context, roomID uint, confirm Confirm) error {
	if err := b.rooms.Delete(ctx, roomID, confirm); err != nil {
		return err
	}
	return b.settle(ctx)
}

// settle reloads after an accepted write. A newer refresh already carries the write.
func (b *RoomBoard) settle(ctx context.Context) error {
	if err := b.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshSuperseded) {
		return err
	}
	return nil
}

// Close cancels any refresh in flight; later calls return ErrBoardClosed
func (b *RoomBoard) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stop()
	b.inflight = nil
}
