package client

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RoomService is what a RoomBoard needs from the backend
type RoomService interface {
	List(ctx context.Context) ([]Room, error)
	Create(ctx context.Context, spec NewRoom) (*Room, error)
	Admit(ctx context.Context, roomID, patientID uint) (*Room, error)
	ScheduleDischarge(ctx context.Context, roomID uint, at time.Time) (*Room, error)
	Delete(ctx context.Context, roomID uint, confirm Confirm) error
}

var _ RoomService = (*Rooms)(nil)

// Client bundles every workflow over one API and session store
type Client struct {
	API         *API
	Gate        *Gate
	Invitations *Invitations
	Rooms       *Rooms
	LabTests    *LabTests
	Directory   *Directory
	Visits      *Visits
}

func New(baseURL string, store SessionStore, log *zap.Logger) *Client {
	api := NewAPI(baseURL, store, log)
	return &Client{
		API:         api,
		Gate:        NewGate(api, log),
		Invitations: NewInvitations(api),
		Rooms:       NewRooms(api),
		LabTests:    NewLabTests(api, DefaultFanOut, log),
		Directory:   NewDirectory(api),
		Visits:      NewVisits(api),
	}
}

// Provisioner picks how an account for role gets created.
// Labs are always created directly; doctors and patients are invited unless direct is set.
func (c *Client) Provisioner(role Role, direct bool) Provisioner {
	if role == RoleLab || direct {
		return NewDirectProvisioner(c.API)
	}
	return NewInvitationProvisioner(c.Invitations)
}
