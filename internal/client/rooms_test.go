package client

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"datavault360/internal/models"
	"datavault360/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withRooms serves the room endpoints over one in-memory ward, enforcing occupancy the way the backend does
func (b *fakeBackend) withRooms(rooms ...Room) {
	var mu sync.Mutex
	ward := map[uint]*Room{}
	for i := range rooms {
		r := rooms[i]
		ward[r.ID] = &r
	}
	find := func(c *gin.Context) (*Room, bool) {
		id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
		r, ok := ward[uint(id)]
		if !ok {
			utils.ErrorResponse(c, http.StatusNotFound, "Not found")
		}
		return r, ok
	}

	b.api.GET("/rooms/", func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		out := make([]Room, 0, len(ward))
		for id := uint(1); id <= uint(len(ward)+10); id++ {
			if r, ok := ward[id]; ok {
				out = append(out, *r)
			}
		}
		utils.SuccessResponse(c, out)
	})
	b.api.POST("/rooms/", func(c *gin.Context) {
		var req NewRoom
		_ = c.ShouldBindJSON(&req)
		mu.Lock()
		defer mu.Unlock()
		for _, r := range ward {
			if r.RoomNumber == req.RoomNumber {
				fields := map[string]string{"room_number": "Room number already exists"}
				utils.ValidationErrorResponse(c, "Room number already exists", fields)
				return
			}
		}
		r := &Room{ID: uint(len(ward) + 1), RoomNumber: req.RoomNumber, RoomType: req.RoomType}
		ward[r.ID] = r
		utils.CreatedResponse(c, r)
	})
	b.api.POST("/rooms/:id/admit/", func(c *gin.Context) {
		var req struct {
			PatientID uint `json:"patient_id"`
		}
		_ = c.ShouldBindJSON(&req)
		mu.Lock()
		defer mu.Unlock()
		r, ok := find(c)
		if !ok {
			return
		}
		if r.PatientID != nil {
			utils.ErrorResponse(c, http.StatusConflict, "Room is already occupied")
			return
		}
		for _, other := range ward {
			if other.PatientID != nil && *other.PatientID == req.PatientID {
				utils.ErrorResponse(c, http.StatusConflict, "Patient is already admitted to room "+other.RoomNumber)
				return
			}
		}
		pid := req.PatientID
		r.PatientID = &pid
		utils.SuccessResponse(c, r)
	})
	b.api.POST("/rooms/:id/discharge/", func(c *gin.Context) {
		var req struct {
			DischargeTime time.Time `json:"discharge_time"`
		}
		_ = c.ShouldBindJSON(&req)
		mu.Lock()
		defer mu.Unlock()
		r, ok := find(c)
		if !ok {
			return
		}
		if r.PatientID == nil {
			utils.ErrorResponse(c, http.StatusConflict, "Room is not occupied")
			return
		}
		at := req.DischargeTime.UTC()
		r.ScheduledDischarge = &at
		utils.SuccessResponse(c, r)
	})
	b.api.DELETE("/rooms/:id/", func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		r, ok := find(c)
		if !ok {
			return
		}
		delete(ward, r.ID)
		utils.MessageResponse(c, "Room deleted successfully")
	})
}

func TestAdmitIsMutuallyExclusive(t *testing.T) {
	b := newFakeBackend(t)
	b.withRooms(Room{ID: 1, RoomNumber: "101", RoomType: "GENERAL"})
	c := b.client()
	board := NewRoomBoard(c.Rooms, nil)
	defer board.Close()

	require.NoError(t, board.Admit(ctx, 1, 7))

	err := board.Admit(ctx, 1, 8)
	var opErr *RoomOpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "admit", opErr.Op)
	assert.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "admit room 1: Room is already occupied")

	state, ok := board.State(1)
	require.True(t, ok)
	assert.Equal(t, Occupied{PatientID: 7}, state)
}

func TestConcurrentAdmitsHaveOneWinner(t *testing.T) {
	b := newFakeBackend(t)
	b.withRooms(Room{ID: 1, RoomNumber: "101"})
	c := b.client()

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Rooms.Admit(ctx, 1, uint(10+i))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, ErrConflict)
	}
	assert.Equal(t, 1, wins)
}

func TestAdmitPatientHeldElsewhere(t *testing.T) {
	p := uint(7)
	b := newFakeBackend(t)
	b.withRooms(Room{ID: 1, RoomNumber: "101", PatientID: &p}, Room{ID: 2, RoomNumber: "102"})

	_, err := b.client().Rooms.Admit(ctx, 2, 7)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Patient is already admitted to room 101")
}

func TestRescheduleDischargeKeepsLatest(t *testing.T) {
	p := uint(7)
	b := newFakeBackend(t)
	b.withRooms(Room{ID: 1, RoomNumber: "101", PatientID: &p})
	board := NewRoomBoard(b.client().Rooms, nil)
	defer board.Close()

	t1 := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(26 * time.Hour)
	require.NoError(t, board.ScheduleDischarge(ctx, 1, t1))
	require.NoError(t, board.ScheduleDischarge(ctx, 1, t2))

	state, ok := board.State(1)
	require.True(t, ok)
	occupied, isOccupied := state.(Occupied)
	require.True(t, isOccupied, "scheduling a discharge does not vacate the room")
	require.NotNil(t, occupied.DischargeAt)
	assert.True(t, occupied.DischargeAt.Equal(t2))
	assert.Equal(t, uint(7), occupied.PatientID)
}

func TestDischargeRequiresOccupiedRoom(t *testing.T) {
	b := newFakeBackend(t)
	b.withRooms(Room{ID: 1, RoomNumber: "101"})

	_, err := b.client().Rooms.ScheduleDischarge(ctx, 1, time.Now().Add(time.Hour))
	var opErr *RoomOpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "discharge", opErr.Op)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateRoom(t *testing.T) {
	b := newFakeBackend(t)
	b.withRooms(Room{ID: 1, RoomNumber: "101"})
	board := NewRoomBoard(b.client().Rooms, nil)
	defer board.Close()

	err := board.Create(ctx, NewRoom{RoomNumber: "102", RoomType: "SUITE"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, b.count(http.MethodPost, "/api/rooms/"))

	err = board.Create(ctx, NewRoom{RoomNumber: "101"})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Room number already exists", verr.Fields["room_number"])

	require.NoError(t, board.Create(ctx, NewRoom{RoomNumber: " 102 ", RoomType: "ICU"}))
	rooms := board.Rooms()
	require.Len(t, rooms, 2)
	assert.Equal(t, "102", rooms[1].RoomNumber)
	assert.Equal(t, Available{}, StateOf(rooms[1]))
}

func TestDeleteRoomNeedsConfirmation(t *testing.T) {
	b := newFakeBackend(t)
	b.withRooms(Room{ID: 1, RoomNumber: "101"})
	board := NewRoomBoard(b.client().Rooms, nil)
	defer board.Close()

	err := board.Delete(ctx, 1, func(uint) bool { return false })
	assert.True(t, errors.Is(err, ErrNotConfirmed))
	assert.Zero(t, b.count(http.MethodDelete, "/api/rooms/1/"))

	err = board.Delete(ctx, 1, nil)
	assert.ErrorIs(t, err, ErrNotConfirmed)

	var asked uint
	require.NoError(t, board.Delete(ctx, 1, func(id uint) bool { asked = id; return true }))
	assert.Equal(t, uint(1), asked)
	assert.Empty(t, board.Rooms())

	err = board.Delete(ctx, 1, func(uint) bool { return true })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdmittable(t *testing.T) {
	patients := []Patient{{ID: 1}, {ID: 2}, {ID: 3}}
	patients[1].AssignedRoom = &models.RoomRef{ID: 1, RoomNumber: "101"}

	got := Admittable(patients)
	ids := make([]uint, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	assert.Equal(t, []uint{1, 3}, ids)
}
