package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"datavault360/internal/models"
)

// InvitationExtra is the role-specific payload stored with an invitation
type InvitationExtra = models.InvitationExtra

// IssuedInvitation is what the admin gets back; Link is meant to be shared by hand
type IssuedInvitation struct {
	Token     string    `json:"token"`
	Link      string    `json:"link"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Invitations issues invitations and starts completion flows
type Invitations struct {
	api *API
}

func NewInvitations(api *API) *Invitations {
	return &Invitations{api: api}
}

// Create issues an invitation for a doctor or patient (admin only)
func (i *Invitations) Create(ctx context.Context, email string, role Role, extra InvitationExtra) (*IssuedInvitation, error) {
	if role != RoleDoctor && role != RolePatient {
		return nil, validationError(map[string]string{"role": "Must be one of: DOCTOR PATIENT."})
	}
	form := struct {
		Email string `json:"email" validate:"required,email"`
	}{Email: strings.TrimSpace(email)}
	if err := checkForm(form); err != nil {
		return nil, err
	}

	var inv IssuedInvitation
	err := i.api.post(ctx, "invitations/", map[string]interface{}{
		"email":      form.Email,
		"role":       role,
		"extra_data": extra,
	}, &inv)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// InvitationState is where an invitation completion flow stands
type InvitationState int

const (
	InvitationPending InvitationState = iota
	InvitationChecked
	InvitationCompleted
	InvitationInvalid
)

func (s InvitationState) String() string {
	switch s {
	case InvitationChecked:
		return "checked"
	case InvitationCompleted:
		return "completed"
	case InvitationInvalid:
		return "invalid"
	}
	return "pending"
}

// PatientFields are mandatory when the invitation is for a patient
type PatientFields struct {
	Gender      string `json:"gender" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	AddressLine string `json:"address_line" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	PostalCode  string `json:"postal_code" validate:"required"`
	Country     string `json:"country" validate:"required"`
}

// AccountFields is the signup form an invitee fills in
type AccountFields struct {
	Username        string        `json:"username" validate:"required"`
	Password        string        `json:"password"`
	ConfirmPassword string        `json:"-"`
	FirstName       string        `json:"first_name" validate:"required"`
	LastName        string        `json:"last_name" validate:"required"`
	Specialization  string        `json:"specialization,omitempty"`
	Patient         PatientFields `json:"-" validate:"-"`
}

type completeRequest struct {
	Token          string `json:"token"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Specialization string `json:"specialization,omitempty"`
	*PatientFields
}

var (
	errInvitationInvalid   = &Error{Kind: KindInvalidToken, Message: "invalid or expired invitation"}
	errInvitationUnchecked = &Error{Kind: KindValidation, Message: "invitation has not been checked"}
)

// InvitationFlow walks one token from Pending to Completed or Invalid.
// Invalid is terminal; a new token needs a new flow.
type InvitationFlow struct {
	api   *API
	token string

	mu    sync.Mutex
	state InvitationState
	role  Role
	email string
}

// Begin starts a completion flow for token. Any stored session is dropped first.
func (i *Invitations) Begin(token string) (*InvitationFlow, error) {
	if err := i.api.store.Clear(); err != nil {
		return nil, fmt.Errorf("clear session: %w", err)
	}
	f := &InvitationFlow{api: i.api, token: strings.TrimSpace(token)}
	if f.token == "" {
		f.state = InvitationInvalid
	}
	return f, nil
}

func (f *InvitationFlow) State() InvitationState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Invitee returns the role and email learned by Check
func (f *InvitationFlow) Invitee() (Role, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.role, f.email
}

// Check resolves the token. Unknown, used and expired tokens all end the flow as Invalid.
// A cancelled check leaves the flow Pending.
func (f *InvitationFlow) Check(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case InvitationInvalid:
		return errInvitationInvalid
	case InvitationChecked:
		return nil
	case InvitationCompleted:
		return errInvitationInvalid
	}

	var resp struct {
		Role  Role   `json:"role"`
		Email string `json:"email"`
	}
	if err := f.api.get(ctx, "invitations/check/"+f.token+"/", &resp); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		f.state = InvitationInvalid
		if errors.Is(err, ErrNotFound) {
			return errInvitationInvalid
		}
		return err
	}
	f.state = InvitationChecked
	f.role = resp.Role
	f.email = resp.Email
	return nil
}

// Complete validates the form locally, then creates the account.
// Local validation failures never reach the network. On success the flow routes to login.
func (f *InvitationFlow) Complete(ctx context.Context, fields AccountFields) (Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case InvitationPending:
		return "", errInvitationUnchecked
	case InvitationInvalid, InvitationCompleted:
		return "", errInvitationInvalid
	}

	if err := checkPassword(fields.Password, fields.ConfirmPassword); err != nil {
		return "", err
	}
	if err := checkForm(fields); err != nil {
		return "", err
	}

	req := completeRequest{
		Token:          f.token,
		Username:       strings.TrimSpace(fields.Username),
		Password:       fields.Password,
		FirstName:      fields.FirstName,
		LastName:       fields.LastName,
		Specialization: fields.Specialization,
	}
	if f.role == RolePatient {
		if err := checkForm(fields.Patient); err != nil {
			return "", err
		}
		req.PatientFields = &fields.Patient
	}

	if err := f.api.post(ctx, "invitations/complete/", req, nil); err != nil {
		if errors.Is(err, ErrNotFound) {
			f.state = InvitationInvalid
			return "", errInvitationInvalid
		}
		return "", err
	}

	f.state = InvitationCompleted
	if err := f.api.store.Clear(); err != nil {
		return "", fmt.Errorf("clear session: %w", err)
	}
	return RouteLogin, nil
}
