package service

import (
	"context"
	"testing"
	"time"

	"datavault360/internal/service/mocks"
	"datavault360/pkg/utils"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	ctx   = context.Background()
	admin = Caller{UserID: 1, Role: "ADMIN"}
	fixed = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func init() {
	utils.InitJWT("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

type stores struct {
	users       *mocks.MockUserStore
	accounts    *mocks.MockAccountStore
	doctors     *mocks.MockDoctorStore
	patients    *mocks.MockPatientStore
	labs        *mocks.MockLabStore
	rooms       *mocks.MockRoomStore
	visits      *mocks.MockVisitStore
	labTests    *mocks.MockLabTestStore
	invitations *mocks.MockInvitationStore
	audit       *mocks.MockAuditStore
	analytics   *mocks.MockAnalyticsStore
	reports     *mocks.MockReportStore
}

// newStores returns mocks whose audit store accepts any log entry
func newStores(t *testing.T) *stores {
	ctrl := gomock.NewController(t)
	s := &stores{
		users:       mocks.NewMockUserStore(ctrl),
		accounts:    mocks.NewMockAccountStore(ctrl),
		doctors:     mocks.NewMockDoctorStore(ctrl),
		patients:    mocks.NewMockPatientStore(ctrl),
		labs:        mocks.NewMockLabStore(ctrl),
		rooms:       mocks.NewMockRoomStore(ctrl),
		visits:      mocks.NewMockVisitStore(ctrl),
		labTests:    mocks.NewMockLabTestStore(ctrl),
		invitations: mocks.NewMockInvitationStore(ctrl),
		audit:       mocks.NewMockAuditStore(ctrl),
		analytics:   mocks.NewMockAnalyticsStore(ctrl),
		reports:     mocks.NewMockReportStore(ctrl),
	}
	s.audit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return s
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}

func uintPtr(v uint) *uint {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}
