package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"datavault360/internal/models"
	"datavault360/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRoomService(s *stores) *RoomService {
	svc := NewRoomService(s.rooms, s.patients, s.audit)
	svc.now = func() time.Time { return fixed }
	return svc
}

func TestCreateRoom(t *testing.T) {
	t.Run("defaults to general", func(t *testing.T) {
		s := newStores(t)
		s.rooms.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).Return(nil)

		room := &models.Room{RoomNumber: "101", PatientID: uintPtr(3)}
		require.NoError(t, newRoomService(s).CreateRoom(ctx, admin, room))
		assert.Equal(t, models.RoomTypeGeneral, room.RoomType)
		assert.Nil(t, room.PatientID)
	})

	t.Run("duplicate number", func(t *testing.T) {
		s := newStores(t)
		s.rooms.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)

		err := newRoomService(s).CreateRoom(ctx, admin, &models.Room{RoomNumber: "101", RoomType: models.RoomTypeICU})
		assert.ErrorIs(t, err, ErrRoomNumberTaken)
	})

	t.Run("unknown type", func(t *testing.T) {
		s := newStores(t)
		err := newRoomService(s).CreateRoom(ctx, admin, &models.Room{RoomNumber: "101", RoomType: "SUITE"})
		var fields FieldErrors
		require.ErrorAs(t, err, &fields)
		assert.Contains(t, fields, "room_type")
	})
}

func TestAdmitPatient(t *testing.T) {
	empty := &models.Room{ID: 1, RoomNumber: "101"}

	t.Run("admits into an empty room", func(t *testing.T) {
		s := newStores(t)
		gomock.InOrder(
			s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(1)).Return(empty, nil),
			s.patients.EXPECT().FindPatientByID(gomock.Any(), uint(5)).Return(&models.PatientProfile{ID: 5}, nil),
			s.rooms.EXPECT().AdmitPatient(gomock.Any(), uint(1), uint(5)).Return(nil),
			s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(1)).Return(&models.Room{ID: 1, RoomNumber: "101", PatientID: uintPtr(5)}, nil),
		)

		room, err := newRoomService(s).AdmitPatient(ctx, admin, 1, 5)
		require.NoError(t, err)
		assert.True(t, room.IsOccupied())
	})

	t.Run("room already occupied", func(t *testing.T) {
		s := newStores(t)
		s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(1)).Return(&models.Room{ID: 1, PatientID: uintPtr(2)}, nil)

		_, err := newRoomService(s).AdmitPatient(ctx, admin, 1, 5)
		assert.ErrorIs(t, err, ErrRoomOccupied)
	})

	t.Run("losing a concurrent admission", func(t *testing.T) {
		s := newStores(t)
		s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(1)).Return(empty, nil)
		s.patients.EXPECT().FindPatientByID(gomock.Any(), uint(5)).Return(&models.PatientProfile{ID: 5}, nil)
		s.rooms.EXPECT().AdmitPatient(gomock.Any(), uint(1), uint(5)).Return(repository.ErrStale)

		_, err := newRoomService(s).AdmitPatient(ctx, admin, 1, 5)
		assert.ErrorIs(t, err, ErrRoomOccupied)
	})

	t.Run("patient already in another room", func(t *testing.T) {
		s := newStores(t)
		s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(1)).Return(empty, nil)
		s.patients.EXPECT().FindPatientByID(gomock.Any(), uint(5)).Return(&models.PatientProfile{ID: 5}, nil)
		s.rooms.EXPECT().AdmitPatient(gomock.Any(), uint(1), uint(5)).Return(repository.ErrDuplicate)
		s.rooms.EXPECT().GetRoomByPatientID(gomock.Any(), uint(5)).Return(&models.Room{ID: 2, RoomNumber: "204"}, nil)

		_, err := newRoomService(s).AdmitPatient(ctx, admin, 1, 5)
		assert.ErrorIs(t, err, ErrPatientAlreadyAdmitted)
		assert.Equal(t, "patient is already admitted to room 204", err.Error())
	})

	t.Run("unknown patient", func(t *testing.T) {
		s := newStores(t)
		s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(1)).Return(empty, nil)
		s.patients.EXPECT().FindPatientByID(gomock.Any(), uint(5)).Return(nil, repository.ErrNotFound)

		_, err := newRoomService(s).AdmitPatient(ctx, admin, 1, 5)
		assert.ErrorIs(t, err, ErrUnknownPatient)
	})

	t.Run("unknown room", func(t *testing.T) {
		s := newStores(t)
		s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(9)).Return(nil, repository.ErrNotFound)

		_, err := newRoomService(s).AdmitPatient(ctx, admin, 9, 5)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestScheduleDischarge(t *testing.T) {
	occupied := &models.Room{ID: 1, RoomNumber: "101", PatientID: uintPtr(5)}

	t.Run("past time rejected", func(t *testing.T) {
		s := newStores(t)
		_, err := newRoomService(s).ScheduleDischarge(ctx, admin, 1, fixed.Add(-time.Minute))
		assert.ErrorIs(t, err, ErrDischargeInPast)
	})

	t.Run("empty room", func(t *testing.T) {
		s := newStores(t)
		s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(1)).Return(&models.Room{ID: 1}, nil)

		_, err := newRoomService(s).ScheduleDischarge(ctx, admin, 1, fixed.Add(time.Hour))
		assert.ErrorIs(t, err, ErrRoomNotOccupied)
	})

	t.Run("patient discharged in between", func(t *testing.T) {
		s := newStores(t)
		s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(1)).Return(occupied, nil)
		s.rooms.EXPECT().ScheduleDischarge(gomock.Any(), uint(1), fixed.Add(time.Hour)).Return(repository.ErrStale)

		_, err := newRoomService(s).ScheduleDischarge(ctx, admin, 1, fixed.Add(time.Hour))
		assert.ErrorIs(t, err, ErrRoomNotOccupied)
	})

	t.Run("overwrites an earlier schedule", func(t *testing.T) {
		s := newStores(t)
		at := fixed.Add(48 * time.Hour)
		scheduled := &models.Room{ID: 1, RoomNumber: "101", PatientID: uintPtr(5), ScheduledDischarge: timePtr(fixed.Add(time.Hour))}
		s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(1)).Return(scheduled, nil)
		s.rooms.EXPECT().ScheduleDischarge(gomock.Any(), uint(1), at).Return(nil)
		s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(1)).Return(&models.Room{ID: 1, PatientID: uintPtr(5), ScheduledDischarge: &at}, nil)

		room, err := newRoomService(s).ScheduleDischarge(ctx, admin, 1, at)
		require.NoError(t, err)
		assert.Equal(t, at, *room.ScheduledDischarge)
	})
}

func TestDeleteRoom(t *testing.T) {
	s := newStores(t)
	s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(1)).Return(&models.Room{ID: 1, RoomNumber: "101"}, nil)
	s.rooms.EXPECT().DeleteRoom(gomock.Any(), uint(1)).Return(nil)
	s.rooms.EXPECT().GetRoomByID(gomock.Any(), uint(2)).Return(nil, repository.ErrNotFound)

	svc := newRoomService(s)
	assert.NoError(t, svc.DeleteRoom(ctx, admin, 1))
	assert.ErrorIs(t, svc.DeleteRoom(ctx, admin, 2), ErrNotFound)
}

func TestDischargeWorker(t *testing.T) {
	s := newStores(t)
	due := []models.Room{
		{ID: 1, RoomNumber: "101", PatientID: uintPtr(5), ScheduledDischarge: timePtr(fixed.Add(-time.Minute))},
		{ID: 2, RoomNumber: "102", PatientID: uintPtr(6), ScheduledDischarge: timePtr(fixed.Add(-time.Hour))},
		{ID: 3, RoomNumber: "103", PatientID: uintPtr(7), ScheduledDischarge: timePtr(fixed)},
	}
	s.rooms.EXPECT().GetDueDischarges(gomock.Any(), fixed).Return(due, nil)
	s.rooms.EXPECT().VacateRoom(gomock.Any(), due[0]).Return(nil)
	s.rooms.EXPECT().VacateRoom(gomock.Any(), due[1]).Return(repository.ErrStale)
	s.rooms.EXPECT().VacateRoom(gomock.Any(), due[2]).Return(errors.New("connection reset"))

	w := NewDischargeWorker(s.rooms, s.audit, time.Second, nopLogger())
	w.now = func() time.Time { return fixed }
	assert.Equal(t, 1, w.ProcessDueDischarges(ctx))
}

func TestDischargeWorkerStopsOnCancel(t *testing.T) {
	s := newStores(t)
	s.rooms.EXPECT().GetDueDischarges(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	w := NewDischargeWorker(s.rooms, s.audit, time.Millisecond, nopLogger())
	cctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		w.Start(cctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
