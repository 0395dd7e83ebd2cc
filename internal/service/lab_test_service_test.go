package service

import (
	"io"
	"strings"
	"testing"
	"time"

	"datavault360/internal/models"
	"datavault360/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var labCaller = Caller{UserID: 30, Role: models.RoleLab}

func newLabTestService(s *stores) *LabTestService {
	svc := NewLabTestService(s.labTests, s.doctors, s.patients, s.labs, s.reports, s.audit, nopLogger())
	svc.now = func() time.Time { return fixed }
	return svc
}

func TestCreateLabTest(t *testing.T) {
	doctor := Caller{UserID: 10, Role: models.RoleDoctor}

	t.Run("doctor orders from a lab", func(t *testing.T) {
		s := newStores(t)
		s.doctors.EXPECT().FindDoctorByUserID(gomock.Any(), uint(10)).Return(&models.DoctorProfile{ID: 2}, nil)
		s.patients.EXPECT().FindPatientByID(gomock.Any(), uint(5)).Return(&models.PatientProfile{ID: 5}, nil)
		s.labs.EXPECT().FindLabByID(gomock.Any(), uint(3)).Return(&models.Lab{ID: 3}, nil)
		s.labTests.EXPECT().CreateLabTest(gomock.Any(), gomock.Any()).Return(nil)

		req, err := newLabTestService(s).CreateLabTest(ctx, doctor, 5, 3, " CBC, Lipid panel ")
		require.NoError(t, err)
		assert.Equal(t, uint(2), req.DoctorID)
		assert.Equal(t, "CBC, Lipid panel", req.TestNames)
	})

	t.Run("blank test names", func(t *testing.T) {
		s := newStores(t)
		_, err := newLabTestService(s).CreateLabTest(ctx, doctor, 5, 3, "  ")
		var fields FieldErrors
		require.ErrorAs(t, err, &fields)
		assert.Contains(t, fields, "test_names")
	})

	t.Run("unknown lab", func(t *testing.T) {
		s := newStores(t)
		s.doctors.EXPECT().FindDoctorByUserID(gomock.Any(), uint(10)).Return(&models.DoctorProfile{ID: 2}, nil)
		s.patients.EXPECT().FindPatientByID(gomock.Any(), uint(5)).Return(&models.PatientProfile{ID: 5}, nil)
		s.labs.EXPECT().FindLabByID(gomock.Any(), uint(99)).Return(nil, repository.ErrNotFound)

		_, err := newLabTestService(s).CreateLabTest(ctx, doctor, 5, 99, "CBC")
		assert.ErrorIs(t, err, ErrUnknownLab)
	})

	t.Run("only doctors order tests", func(t *testing.T) {
		s := newStores(t)
		_, err := newLabTestService(s).CreateLabTest(ctx, labCaller, 5, 3, "CBC")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestCompleteLabTest(t *testing.T) {
	pending := &models.LabTestRequest{ID: 8, PatientID: 5, DoctorID: 2, LabID: 3, Status: models.LabTestPending}

	t.Run("stores report and completes", func(t *testing.T) {
		s := newStores(t)
		s.labs.EXPECT().FindLabByUserID(gomock.Any(), uint(30)).Return(&models.Lab{ID: 3}, nil)
		s.labTests.EXPECT().FindLabTestByID(gomock.Any(), uint(8)).Return(pending, nil)
		s.reports.EXPECT().Save(gomock.Any(), "report.pdf", gomock.Any()).Return("abc_report.pdf", nil)
		s.labTests.EXPECT().CompleteLabTest(gomock.Any(), uint(8), "abc_report.pdf", fixed).Return(nil)
		s.labTests.EXPECT().FindLabTestByID(gomock.Any(), uint(8)).Return(&models.LabTestRequest{
			ID: 8, Status: models.LabTestCompleted, ReportFile: "abc_report.pdf",
		}, nil)

		req, err := newLabTestService(s).CompleteLabTest(ctx, labCaller, 8, "../../report.pdf", strings.NewReader("%PDF"))
		require.NoError(t, err)
		assert.Equal(t, models.LabTestCompleted, req.Status)
	})

	t.Run("second completion loses and its file is removed", func(t *testing.T) {
		s := newStores(t)
		s.labs.EXPECT().FindLabByUserID(gomock.Any(), uint(30)).Return(&models.Lab{ID: 3}, nil)
		s.labTests.EXPECT().FindLabTestByID(gomock.Any(), uint(8)).Return(pending, nil)
		s.reports.EXPECT().Save(gomock.Any(), "report.pdf", gomock.Any()).Return("def_report.pdf", nil)
		s.labTests.EXPECT().CompleteLabTest(gomock.Any(), uint(8), "def_report.pdf", fixed).Return(repository.ErrStale)
		s.reports.EXPECT().Remove("def_report.pdf").Return(nil)

		_, err := newLabTestService(s).CompleteLabTest(ctx, labCaller, 8, "report.pdf", strings.NewReader("%PDF"))
		assert.ErrorIs(t, err, ErrLabTestCompleted)
	})

	t.Run("already completed", func(t *testing.T) {
		s := newStores(t)
		s.labs.EXPECT().FindLabByUserID(gomock.Any(), uint(30)).Return(&models.Lab{ID: 3}, nil)
		s.labTests.EXPECT().FindLabTestByID(gomock.Any(), uint(8)).Return(&models.LabTestRequest{
			ID: 8, LabID: 3, Status: models.LabTestCompleted,
		}, nil)

		_, err := newLabTestService(s).CompleteLabTest(ctx, labCaller, 8, "report.pdf", strings.NewReader("%PDF"))
		assert.ErrorIs(t, err, ErrLabTestCompleted)
	})

	t.Run("another lab's request is invisible", func(t *testing.T) {
		s := newStores(t)
		s.labs.EXPECT().FindLabByUserID(gomock.Any(), uint(30)).Return(&models.Lab{ID: 4}, nil)
		s.labTests.EXPECT().FindLabTestByID(gomock.Any(), uint(8)).Return(pending, nil)

		_, err := newLabTestService(s).CompleteLabTest(ctx, labCaller, 8, "report.pdf", strings.NewReader("%PDF"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing file", func(t *testing.T) {
		s := newStores(t)
		_, err := newLabTestService(s).CompleteLabTest(ctx, labCaller, 8, "", nil)
		var fields FieldErrors
		require.ErrorAs(t, err, &fields)
	})
}

func TestOpenReport(t *testing.T) {
	patient := Caller{UserID: 40, Role: models.RolePatient}

	s := newStores(t)
	s.patients.EXPECT().FindPatientByUserID(gomock.Any(), uint(40)).Return(&models.PatientProfile{ID: 5}, nil).Times(2)
	s.labTests.EXPECT().FindLabTestByID(gomock.Any(), uint(8)).Return(&models.LabTestRequest{
		ID: 8, PatientID: 5, Status: models.LabTestCompleted, ReportFile: "abc_report.pdf",
	}, nil)
	s.labTests.EXPECT().FindLabTestByID(gomock.Any(), uint(9)).Return(&models.LabTestRequest{
		ID: 9, PatientID: 5, Status: models.LabTestPending,
	}, nil)
	s.reports.EXPECT().Open("abc_report.pdf").Return(io.NopCloser(strings.NewReader("%PDF")), nil)

	svc := newLabTestService(s)
	rc, name, err := svc.OpenReport(ctx, patient, 8)
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "abc_report.pdf", name)

	_, _, err = svc.OpenReport(ctx, patient, 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalyticsSummary(t *testing.T) {
	s := newStores(t)
	s.analytics.EXPECT().Counts(gomock.Any(), fixed.Add(-RecentVisitWindow)).Return(&repository.Counts{
		Rooms: 10, OccupiedRooms: 4, DischargesPending: 1, PendingLabTests: 3, LowStockItems: 1,
	}, nil)
	s.analytics.EXPECT().MonthlyFinancials(gomock.Any(), time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)).
		Return([]repository.MonthlyTotal{
			{Month: "2025-11", Income: 5200, Expense: 1800.5},
			{Month: "2026-03", Income: 900},
		}, nil)
	s.analytics.EXPECT().InventoryAttention(gomock.Any(), InventoryAttentionLimit).Return([]models.InventoryItem{
		{Name: "Gloves", Category: "Supplies", Quantity: 4, Unit: "Box", LowStockThreshold: 10},
		{Name: "Syringes", Category: "Medical", Quantity: 40, Unit: "Unit", LowStockThreshold: 10},
	}, nil)

	svc := NewAnalyticsService(s.analytics)
	svc.now = func() time.Time { return fixed }
	a, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), a.Rooms.Available)
	assert.Equal(t, int64(1), a.Rooms.DischargeScheduled)
	assert.Equal(t, int64(3), a.LabTests.Pending)
	assert.NotNil(t, a.ByRoomType)
	assert.Equal(t, int64(1), a.LowStockItems)

	assert.Equal(t, []repository.MonthlyTotal{
		{Month: "2025-10"},
		{Month: "2025-11", Income: 5200, Expense: 1800.5},
		{Month: "2025-12"},
		{Month: "2026-01"},
		{Month: "2026-02"},
		{Month: "2026-03", Income: 900},
	}, a.Financials)

	require.Len(t, a.Inventory, 2)
	assert.True(t, a.Inventory[0].LowStock)
	assert.False(t, a.Inventory[1].LowStock)
	assert.Equal(t, "Box", a.Inventory[0].Unit)
}

func TestAnalyticsSummaryEmptyLedger(t *testing.T) {
	s := newStores(t)
	s.analytics.EXPECT().Counts(gomock.Any(), gomock.Any()).Return(&repository.Counts{}, nil)
	s.analytics.EXPECT().MonthlyFinancials(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.analytics.EXPECT().InventoryAttention(gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := NewAnalyticsService(s.analytics)
	svc.now = func() time.Time { return time.Date(2026, 1, 31, 23, 0, 0, 0, time.UTC) }
	a, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, a.Financials, FinancialMonths)
	assert.Equal(t, "2025-08", a.Financials[0].Month)
	assert.Equal(t, "2026-01", a.Financials[5].Month)
	assert.NotNil(t, a.Inventory)
	assert.Empty(t, a.Inventory)
}
