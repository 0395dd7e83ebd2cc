package client

import (
	"context"
	"strings"
)

// ProvisionRequest describes an account an admin wants to exist.
// Invitation provisioning uses Email and Extra; direct provisioning uses the credentials.
type ProvisionRequest struct {
	Role  Role
	Email string
	Extra InvitationExtra

	Username  string `json:"username" validate:"required,max=150"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	Specialization string
	LabName        string
	LabAddress     string
	Patient        PatientFields `validate:"-"`
	DoctorIDs      []uint
}

// Provisioned is the outcome of ProvisionAccount.
// Invitation is set when the invitee still has to finish signing up.
type Provisioned struct {
	Role       Role
	ProfileID  uint
	Username   string
	Invitation *IssuedInvitation
}

// Provisioner creates accounts one way or another
type Provisioner interface {
	ProvisionAccount(ctx context.Context, req ProvisionRequest) (*Provisioned, error)
}

// InvitationProvisioner issues an invitation; the invitee picks credentials later
type InvitationProvisioner struct {
	invitations *Invitations
}

func NewInvitationProvisioner(invitations *Invitations) *InvitationProvisioner {
	return &InvitationProvisioner{invitations: invitations}
}

func (p *InvitationProvisioner) ProvisionAccount(ctx context.Context, req ProvisionRequest) (*Provisioned, error) {
	extra := req.Extra
	if req.Role == RoleDoctor && extra.Specialization == "" {
		extra.Specialization = req.Specialization
	}
	inv, err := p.invitations.Create(ctx, req.Email, req.Role, extra)
	if err != nil {
		return nil, err
	}
	return &Provisioned{Role: inv.Role, Invitation: inv}, nil
}

// DirectProvisioner creates the account with admin-supplied credentials
type DirectProvisioner struct {
	api *API
}

func NewDirectProvisioner(api *API) *DirectProvisioner {
	return &DirectProvisioner{api: api}
}

type createdProfile struct {
	ID   uint `json:"id"`
	User struct {
		Username string `json:"username"`
	} `json:"user"`
}

func (p *DirectProvisioner) ProvisionAccount(ctx context.Context, req ProvisionRequest) (*Provisioned, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := checkForm(req); err != nil {
		return nil, err
	}
	if err := checkPasswordLength(req.Password); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"username":   req.Username,
		"password":   req.Password,
		"email":      strings.TrimSpace(req.Email),
		"first_name": req.FirstName,
		"last_name":  req.LastName,
	}
	var path string
	switch req.Role {
	case RoleLab:
		if strings.TrimSpace(req.LabName) == "" {
			return nil, validationError(map[string]string{"name": "This field is required."})
		}
		path = "labs/"
		body["name"] = req.LabName
		body["address"] = req.LabAddress
	case RoleDoctor:
		path = "doctors/"
		body["specialization"] = req.Specialization
	case RolePatient:
		path = "patients/"
		body["doctor_ids"] = req.DoctorIDs
		for k, v := range patientBody(req.Patient) {
			body[k] = v
		}
	default:
		return nil, validationError(map[string]string{"role": "Must be one of: LAB DOCTOR PATIENT."})
	}

	var created createdProfile
	if err := p.api.post(ctx, path, body, &created); err != nil {
		return nil, err
	}
	return &Provisioned{Role: req.Role, ProfileID: created.ID, Username: created.User.Username}, nil
}

func patientBody(f PatientFields) map[string]string {
	out := map[string]string{
		"gender":        f.Gender,
		"date_of_birth": f.DateOfBirth,
		"phone_number":  f.PhoneNumber,
		"address_line":  f.AddressLine,
		"city":          f.City,
		"state":         f.State,
		"postal_code":   f.PostalCode,
		"country":       f.Country,
	}
	for k, v := range out {
		if v == "" {
			delete(out, k)
		}
	}
	return out
}
