package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"datavault360/internal/models"
	"datavault360/internal/repository"
	"datavault360/pkg/utils"

	"go.uber.org/zap"
)

// InvitationService issues single-use account setup links and redeems them
type InvitationService struct {
	invitationRepo InvitationStore
	userRepo       UserStore
	accountRepo    AccountStore
	doctorRepo     DoctorStore
	auditRepo      AuditStore
	frontendURL    string
	ttl            time.Duration
	now            func() time.Time
	log            *zap.Logger
}

func NewInvitationService(
	invitationRepo InvitationStore,
	userRepo UserStore,
	accountRepo AccountStore,
	doctorRepo DoctorStore,
	auditRepo AuditStore,
	frontendURL string,
	ttl time.Duration,
	log *zap.Logger,
) *InvitationService {
	return &InvitationService{
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		accountRepo:    accountRepo,
		doctorRepo:     doctorRepo,
		auditRepo:      auditRepo,
		frontendURL:    strings.TrimRight(frontendURL, "/"),
		ttl:            ttl,
		now:            time.Now,
		log:            log,
	}
}

// CreatedInvitation is returned to the admin who issued the invitation
type CreatedInvitation struct {
	Token     string    `json:"token"`
	Link      string    `json:"link"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CheckedInvitation is what an invitee learns about a valid token
type CheckedInvitation struct {
	Role  string `json:"role"`
	Email string `json:"email"`
}

// CompleteInvitationRequest carries the account fields the invitee fills in.
// Patient is only read for PATIENT invitations.
type CompleteInvitationRequest struct {
	Username       string
	Password       string
	FirstName      string
	LastName       string
	Specialization string
	Patient        PatientDetails
}

// Create issues an invitation for a doctor or patient and returns its link
func (s *InvitationService) Create(ctx context.Context, caller Caller, email, role string, extra models.InvitationExtra) (*CreatedInvitation, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if role != models.RoleDoctor && role != models.RolePatient {
		return nil, FieldErrors{"role": "must be DOCTOR or PATIENT"}
	}

	now := s.now()
	pending, err := s.invitationRepo.HasPendingInvitation(ctx, email, now)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrInvitationExists
	}

	taken, err := s.userRepo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	if role == models.RolePatient && extra.DoctorID != 0 {
		if _, err := s.doctorRepo.FindDoctorByID(ctx, extra.DoctorID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUnknownDoctor
			}
			return nil, err
		}
	}

	payload, err := json.Marshal(extra)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extra data: %w", err)
	}

	inv := &models.Invitation{
		Token:     utils.GenerateInvitationToken(),
		Email:     email,
		Role:      role,
		ExtraData: string(payload),
		ExpiresAt: now.Add(s.ttl),
		CreatedBy: caller.auditUser(),
	}
	if err := s.invitationRepo.CreateInvitation(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, caller.auditUser(), "invitation_create",
		fmt.Sprintf("Invited %s as %s", email, role))

	return &CreatedInvitation{
		Token:     inv.Token,
		Link:      s.Link(inv.Token),
		Email:     inv.Email,
		Role:      inv.Role,
		ExpiresAt: inv.ExpiresAt,
	}, nil
}

// Link builds the frontend URL an invitee opens
func (s *InvitationService) Link(token string) string {
	return s.frontendURL + "/setup-account/" + token
}

// Check resolves a token to its role and email.
// Unknown, used and expired tokens all yield ErrInvalidInvitation.
func (s *InvitationService) Check(ctx context.Context, token string) (*CheckedInvitation, error) {
	inv, err := s.redeemable(ctx, token)
	if err != nil {
		return nil, err
	}
	return &CheckedInvitation{Role: inv.Role, Email: inv.Email}, nil
}

// Complete creates the invited account and consumes the invitation in one transaction
func (s *InvitationService) Complete(ctx context.Context, token string, req CompleteInvitationRequest) (*models.User, error) {
	inv, err := s.redeemable(ctx, token)
	if err != nil {
		return nil, err
	}

	var extra models.InvitationExtra
	if inv.ExtraData != "" {
		if err := json.Unmarshal([]byte(inv.ExtraData), &extra); err != nil {
			s.log.Warn("Invitation has unreadable extra data", zap.Uint("invitation_id", inv.ID), zap.Error(err))
		}
	}

	fields := missingNames(req)
	if inv.Role == models.RolePatient {
		req.Patient = withIssuedDetails(req.Patient, extra)
		for name, msg := range missingPatientFields(req.Patient) {
			fields[name] = msg
		}
	}
	if len(fields) > 0 {
		return nil, fields
	}

	user, err := newUser(ctx, s.userRepo, Credentials{
		Username:  req.Username,
		Password:  req.Password,
		Email:     inv.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, inv.Role)
	if err != nil {
		return nil, err
	}

	switch inv.Role {
	case models.RoleDoctor:
		specialization := req.Specialization
		if specialization == "" {
			specialization = extra.Specialization
		}
		err = s.accountRepo.CreateDoctor(ctx, user, &models.DoctorProfile{Specialization: specialization}, inv)
	case models.RolePatient:
		patient := &models.PatientProfile{}
		req.Patient.apply(patient)
		var doctorIDs []uint
		if extra.DoctorID != 0 {
			doctorIDs = []uint{extra.DoctorID}
		}
		err = s.accountRepo.CreatePatient(ctx, user, patient, doctorIDs, inv)
	default:
		return nil, ErrInvalidInvitation
	}
	if err != nil {
		if errors.Is(err, repository.ErrStale) {
			return nil, ErrInvalidInvitation
		}
		return nil, accountError(err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, &user.ID, "invitation_complete",
		fmt.Sprintf("User %s completed %s invitation", user.Username, inv.Role))
	return user, nil
}

func (s *InvitationService) redeemable(ctx context.Context, token string) (*models.Invitation, error) {
	if token == "" {
		return nil, ErrInvalidInvitation
	}
	inv, err := s.invitationRepo.FindInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidInvitation
		}
		return nil, err
	}
	if !inv.IsRedeemable(s.now()) {
		return nil, ErrInvalidInvitation
	}
	return inv, nil
}

func missingNames(req CompleteInvitationRequest) FieldErrors {
	fields := FieldErrors{}
	if strings.TrimSpace(req.FirstName) == "" {
		fields["first_name"] = "This field is required."
	}
	if strings.TrimSpace(req.LastName) == "" {
		fields["last_name"] = "This field is required."
	}
	return fields
}

// withIssuedDetails fills blanks the invitee left from what the admin recorded at issuance
func withIssuedDetails(d PatientDetails, extra models.InvitationExtra) PatientDetails {
	if d.DateOfBirth == nil && extra.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", extra.DateOfBirth); err == nil {
			d.DateOfBirth = &dob
		}
	}
	if strings.TrimSpace(d.PhoneNumber) == "" {
		d.PhoneNumber = extra.PhoneNumber
	}
	if strings.TrimSpace(d.AddressLine) == "" {
		d.AddressLine = extra.Address
	}
	return d
}

func missingPatientFields(d PatientDetails) FieldErrors {
	fields := FieldErrors{}
	required := map[string]string{
		"gender":       d.Gender,
		"phone_number": d.PhoneNumber,
		"address_line": d.AddressLine,
		"city":         d.City,
		"state":        d.State,
		"postal_code":  d.PostalCode,
		"country":      d.Country,
	}
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			fields[name] = "This field is required."
		}
	}
	if d.DateOfBirth == nil {
		fields["date_of_birth"] = "This field is required."
	}
	return fields
}
