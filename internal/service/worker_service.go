package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"datavault360/internal/repository"

	"go.uber.org/zap"
)

// DischargeWorker vacates rooms whose scheduled discharge time has passed
type DischargeWorker struct {
	roomRepo  RoomStore
	auditRepo AuditStore
	interval  time.Duration
	now       func() time.Time
	log       *zap.Logger
}

func NewDischargeWorker(roomRepo RoomStore, auditRepo AuditStore, interval time.Duration, log *zap.Logger) *DischargeWorker {
	return &DischargeWorker{
		roomRepo:  roomRepo,
		auditRepo: auditRepo,
		interval:  interval,
		now:       time.Now,
		log:       log,
	}
}

// Start runs the worker until ctx is cancelled
func (w *DischargeWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("Discharge worker started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Discharge worker stopped")
			return
		case <-ticker.C:
			w.ProcessDueDischarges(ctx)
		}
	}
}

// ProcessDueDischarges vacates every due room once and returns how many were freed.
// A room rescheduled or readmitted after it was listed is left alone.
func (w *DischargeWorker) ProcessDueDischarges(ctx context.Context) int {
	rooms, err := w.roomRepo.GetDueDischarges(ctx, w.now().UTC())
	if err != nil {
		w.log.Error("Error fetching due discharges", zap.Error(err))
		return 0
	}

	vacated := 0
	for _, room := range rooms {
		if err := w.roomRepo.VacateRoom(ctx, room); err != nil {
			if errors.Is(err, repository.ErrStale) {
				w.log.Debug("Discharge changed before vacating", zap.Uint("room_id", room.ID))
				continue
			}
			w.log.Error("Error vacating room", zap.Uint("room_id", room.ID), zap.Error(err))
			continue
		}
		vacated++

		var patientID uint
		if room.PatientID != nil {
			patientID = *room.PatientID
		}
		w.log.Info("Discharged patient",
			zap.String("room_number", room.RoomNumber),
			zap.Uint("patient_id", patientID),
		)
		_ = w.auditRepo.CreateAuditLog(ctx, nil, "room_discharge",
			fmt.Sprintf("Patient %d discharged from room %s", patientID, room.RoomNumber))
	}
	return vacated
}
