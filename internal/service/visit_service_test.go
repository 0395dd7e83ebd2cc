package service

import (
	"testing"

	"datavault360/internal/models"
	"datavault360/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newVisitService(s *stores) *VisitService {
	return NewVisitService(s.visits, s.doctors, s.patients, s.labs, s.audit)
}

func TestCreateVisit(t *testing.T) {
	doctor := Caller{UserID: 20, Role: models.RoleDoctor}

	t.Run("only doctors", func(t *testing.T) {
		s := newStores(t)
		err := newVisitService(s).CreateVisit(ctx, admin, &models.Visit{PatientID: 7})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown patient", func(t *testing.T) {
		s := newStores(t)
		s.doctors.EXPECT().FindDoctorByUserID(gomock.Any(), uint(20)).Return(&models.DoctorProfile{ID: 2}, nil)
		s.patients.EXPECT().FindPatientByID(gomock.Any(), uint(99)).Return(nil, repository.ErrNotFound)

		err := newVisitService(s).CreateVisit(ctx, doctor, &models.Visit{PatientID: 99, Diagnosis: "Flu"})
		assert.ErrorIs(t, err, ErrUnknownPatient)
	})

	t.Run("doctor and date filled in", func(t *testing.T) {
		s := newStores(t)
		s.doctors.EXPECT().FindDoctorByUserID(gomock.Any(), uint(20)).Return(&models.DoctorProfile{ID: 2}, nil)
		s.patients.EXPECT().FindPatientByID(gomock.Any(), uint(7)).Return(&models.PatientProfile{ID: 7}, nil)
		s.visits.EXPECT().CreateVisit(gomock.Any(), gomock.Any()).Return(nil)

		visit := &models.Visit{PatientID: 7, DoctorID: 99, Diagnosis: "Flu"}
		require.NoError(t, newVisitService(s).CreateVisit(ctx, doctor, visit))
		assert.Equal(t, uint(2), visit.DoctorID, "the author is always the caller")
		assert.False(t, visit.VisitDate.IsZero())
	})
}

func TestListVisitsScope(t *testing.T) {
	s := newStores(t)
	s.patients.EXPECT().FindPatientByUserID(gomock.Any(), uint(40)).Return(&models.PatientProfile{ID: 7}, nil)
	s.visits.EXPECT().ListVisits(gomock.Any(), repository.RecordScope{PatientID: 7}).Return([]models.Visit{{ID: 1}}, nil)

	visits, err := newVisitService(s).ListVisits(ctx, Caller{UserID: 40, Role: models.RolePatient})
	require.NoError(t, err)
	assert.Len(t, visits, 1)

	_, err = newVisitService(newStores(t)).ListVisits(ctx, Caller{UserID: 30, Role: models.RoleLab})
	assert.ErrorIs(t, err, ErrForbidden)
}
