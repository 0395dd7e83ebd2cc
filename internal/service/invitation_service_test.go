package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"datavault360/internal/models"
	"datavault360/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newInvitationService(s *stores) *InvitationService {
	svc := NewInvitationService(s.invitations, s.users, s.accounts, s.doctors, s.audit,
		"https://vault.example.com/", 72*time.Hour, nopLogger())
	svc.now = func() time.Time { return fixed }
	return svc
}

func TestCreateInvitation(t *testing.T) {
	t.Run("issues link and stores extra data", func(t *testing.T) {
		s := newStores(t)
		s.invitations.EXPECT().HasPendingInvitation(gomock.Any(), "new.doc@example.com", fixed).Return(false, nil)
		s.users.EXPECT().EmailTaken(gomock.Any(), "new.doc@example.com").Return(false, nil)
		s.invitations.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *models.Invitation) error {
				assert.Equal(t, models.RoleDoctor, inv.Role)
				assert.Equal(t, fixed.Add(72*time.Hour), inv.ExpiresAt)
				assert.Contains(t, inv.ExtraData, `"specialization":"Cardiology"`)
				assert.Equal(t, uintPtr(1), inv.CreatedBy)
				return nil
			})

		out, err := newInvitationService(s).Create(ctx, admin, " New.Doc@example.com ", models.RoleDoctor,
			models.InvitationExtra{Specialization: "Cardiology"})
		require.NoError(t, err)
		assert.Len(t, out.Token, 36)
		assert.Equal(t, "https://vault.example.com/setup-account/"+out.Token, out.Link)
	})

	t.Run("pending invitation for the same email", func(t *testing.T) {
		s := newStores(t)
		s.invitations.EXPECT().HasPendingInvitation(gomock.Any(), "a@b.co", fixed).Return(true, nil)

		_, err := newInvitationService(s).Create(ctx, admin, "a@b.co", models.RolePatient, models.InvitationExtra{})
		assert.ErrorIs(t, err, ErrInvitationExists)
	})

	t.Run("existing account with the email", func(t *testing.T) {
		s := newStores(t)
		s.invitations.EXPECT().HasPendingInvitation(gomock.Any(), "a@b.co", fixed).Return(false, nil)
		s.users.EXPECT().EmailTaken(gomock.Any(), "a@b.co").Return(true, nil)

		_, err := newInvitationService(s).Create(ctx, admin, "a@b.co", models.RolePatient, models.InvitationExtra{})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("labs cannot be invited", func(t *testing.T) {
		s := newStores(t)
		_, err := newInvitationService(s).Create(ctx, admin, "lab@b.co", models.RoleLab, models.InvitationExtra{})
		var fields FieldErrors
		require.ErrorAs(t, err, &fields)
		assert.Contains(t, fields, "role")
	})
}

func TestCheckInvitation(t *testing.T) {
	valid := &models.Invitation{ID: 1, Token: "ok", Email: "p@x.co", Role: models.RolePatient, ExpiresAt: fixed.Add(time.Hour)}
	used := &models.Invitation{ID: 2, Token: "used", IsUsed: true, ExpiresAt: fixed.Add(time.Hour)}
	expired := &models.Invitation{ID: 3, Token: "old", ExpiresAt: fixed.Add(-time.Second)}

	s := newStores(t)
	s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "ok").Return(valid, nil)
	s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "used").Return(used, nil)
	s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "old").Return(expired, nil)
	s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "nope").Return(nil, repository.ErrNotFound)
	svc := newInvitationService(s)

	out, err := svc.Check(ctx, "ok")
	require.NoError(t, err)
	assert.Equal(t, &CheckedInvitation{Role: models.RolePatient, Email: "p@x.co"}, out)

	for _, token := range []string{"used", "old", "nope", ""} {
		_, err := svc.Check(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidInvitation, token)
	}
}

func TestCompleteInvitation(t *testing.T) {
	patientInv := func() *models.Invitation {
		return &models.Invitation{
			ID: 9, Token: "tok", Email: "p@x.co", Role: models.RolePatient,
			ExtraData: `{"doctor_id":4}`, ExpiresAt: fixed.Add(time.Hour),
		}
	}
	fullPatient := PatientDetails{
		Gender: "F", DateOfBirth: timePtr(time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)),
		PhoneNumber: "555", AddressLine: "1 Main", City: "Springfield",
		State: "IL", PostalCode: "62701", Country: "US",
	}

	t.Run("patient fields are required", func(t *testing.T) {
		s := newStores(t)
		s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "tok").Return(patientInv(), nil)

		_, err := newInvitationService(s).Complete(ctx, "tok", CompleteInvitationRequest{
			Username: "pat", Password: "pass1", FirstName: "Pat", LastName: "Doe",
			Patient: PatientDetails{Gender: "F", City: "Springfield"},
		})
		var fields FieldErrors
		require.ErrorAs(t, err, &fields)
		assert.Len(t, fields, 6)
		assert.Contains(t, fields, "date_of_birth")
		assert.NotContains(t, fields, "city")
	})

	t.Run("names are required", func(t *testing.T) {
		s := newStores(t)
		s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "tok").Return(patientInv(), nil)

		_, err := newInvitationService(s).Complete(ctx, "tok", CompleteInvitationRequest{
			Username: "pat", Password: "pass1", LastName: "  ", Patient: fullPatient,
		})
		var fields FieldErrors
		require.ErrorAs(t, err, &fields)
		assert.Equal(t, FieldErrors{
			"first_name": "This field is required.",
			"last_name":  "This field is required.",
		}, fields)
	})

	t.Run("only the omitted patient fields are named", func(t *testing.T) {
		s := newStores(t)
		s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "tok").Return(patientInv(), nil)

		partial := fullPatient
		partial.Country = ""
		partial.DateOfBirth = nil
		_, err := newInvitationService(s).Complete(ctx, "tok", CompleteInvitationRequest{
			Username: "pat", Password: "pass1", FirstName: "Pat", LastName: "Doe", Patient: partial,
		})
		var fields FieldErrors
		require.ErrorAs(t, err, &fields)
		assert.ElementsMatch(t, []string{"country", "date_of_birth"}, keys(fields))
	})

	t.Run("blanks fall back to the details set at issuance", func(t *testing.T) {
		s := newStores(t)
		inv := patientInv()
		inv.ExtraData = `{"doctor_id":4,"date_of_birth":"1985-06-30","phone_number":"555-0199","address":"9 Elm St"}`
		s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "tok").Return(inv, nil)
		s.users.EXPECT().UsernameTaken(gomock.Any(), "pat").Return(false, nil)
		s.accounts.EXPECT().CreatePatient(gomock.Any(), gomock.Any(), gomock.Any(), []uint{4}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *models.User, p *models.PatientProfile, _ []uint, _ *models.Invitation) error {
				require.NotNil(t, p.DateOfBirth)
				assert.Equal(t, "1985-06-30", p.DateOfBirth.Format("2006-01-02"))
				assert.Equal(t, "555-0199", p.PhoneNumber)
				assert.Equal(t, "9 Elm St", p.AddressLine)
				assert.Equal(t, "US", p.Country)
				return nil
			})

		blank := fullPatient
		blank.DateOfBirth, blank.PhoneNumber, blank.AddressLine = nil, "", " "
		_, err := newInvitationService(s).Complete(ctx, "tok", CompleteInvitationRequest{
			Username: "pat", Password: "pass1", FirstName: "Pat", LastName: "Doe", Patient: blank,
		})
		require.NoError(t, err)
	})

	t.Run("invitee values win over issued details", func(t *testing.T) {
		d := withIssuedDetails(fullPatient, models.InvitationExtra{PhoneNumber: "000", Address: "elsewhere", DateOfBirth: "1970-01-01"})
		assert.Equal(t, fullPatient, d)
	})

	t.Run("short password", func(t *testing.T) {
		s := newStores(t)
		s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "tok").Return(patientInv(), nil)

		_, err := newInvitationService(s).Complete(ctx, "tok", CompleteInvitationRequest{
			Username: "pat", Password: "abc", FirstName: "Pat", LastName: "Doe", Patient: fullPatient,
		})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("patient is assigned the inviting doctor", func(t *testing.T) {
		s := newStores(t)
		s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "tok").Return(patientInv(), nil)
		s.users.EXPECT().UsernameTaken(gomock.Any(), "pat").Return(false, nil)
		s.accounts.EXPECT().CreatePatient(gomock.Any(), gomock.Any(), gomock.Any(), []uint{4}, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User, p *models.PatientProfile, _ []uint, inv *models.Invitation) error {
				assert.Equal(t, "p@x.co", u.Email)
				assert.Equal(t, models.RolePatient, u.Role)
				assert.Equal(t, "62701", p.PostalCode)
				assert.Equal(t, uint(9), inv.ID)
				u.ID = 20
				return nil
			})

		user, err := newInvitationService(s).Complete(ctx, "tok", CompleteInvitationRequest{
			Username: "pat", Password: "pass1", FirstName: "Pat", LastName: "Doe", Patient: fullPatient,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(20), user.ID)
	})

	t.Run("doctor specialization comes from the invitation", func(t *testing.T) {
		s := newStores(t)
		s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "doc").Return(&models.Invitation{
			ID: 5, Token: "doc", Email: "d@x.co", Role: models.RoleDoctor,
			ExtraData: `{"specialization":"Oncology"}`, ExpiresAt: fixed.Add(time.Hour),
		}, nil)
		s.users.EXPECT().UsernameTaken(gomock.Any(), "doc").Return(false, nil)
		s.accounts.EXPECT().CreateDoctor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *models.User, d *models.DoctorProfile, _ *models.Invitation) error {
				assert.Equal(t, "Oncology", d.Specialization)
				return nil
			})

		_, err := newInvitationService(s).Complete(ctx, "doc", CompleteInvitationRequest{
			Username: "doc", Password: "pass1", FirstName: "Gregory", LastName: "House",
		})
		require.NoError(t, err)
	})

	t.Run("losing a concurrent completion", func(t *testing.T) {
		s := newStores(t)
		s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "tok").Return(patientInv(), nil)
		s.users.EXPECT().UsernameTaken(gomock.Any(), "pat").Return(false, nil)
		s.accounts.EXPECT().CreatePatient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.ErrStale)

		_, err := newInvitationService(s).Complete(ctx, "tok", CompleteInvitationRequest{
			Username: "pat", Password: "pass1", FirstName: "Pat", LastName: "Doe", Patient: fullPatient,
		})
		assert.ErrorIs(t, err, ErrInvalidInvitation)
	})

	t.Run("username taken", func(t *testing.T) {
		s := newStores(t)
		s.invitations.EXPECT().FindInvitationByToken(gomock.Any(), "tok").Return(patientInv(), nil)
		s.users.EXPECT().UsernameTaken(gomock.Any(), "pat").Return(true, nil)

		_, err := newInvitationService(s).Complete(ctx, "tok", CompleteInvitationRequest{
			Username: "pat", Password: "pass1", FirstName: "Pat", LastName: "Doe", Patient: fullPatient,
		})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestMissingPatientFieldsPartial(t *testing.T) {
	d := PatientDetails{
		Gender: "M", DateOfBirth: timePtr(time.Date(1980, 3, 4, 0, 0, 0, 0, time.UTC)),
		PhoneNumber: "555", AddressLine: "1 Main", City: " ", State: "IL", PostalCode: "62701",
	}
	fields := missingPatientFields(d)
	assert.ElementsMatch(t, []string{"city", "country"}, keys(fields))
	assert.Equal(t, "This field is required.", fields["country"])
}

func keys(fields FieldErrors) []string {
	out := make([]string, 0, len(fields))
	for k := range fields {
		out = append(out, k)
	}
	return out
}

func TestFieldErrorsMessageIsSorted(t *testing.T) {
	err := FieldErrors{"zip": "bad", "city": "required"}
	assert.Equal(t, "city: required, zip: bad", err.Error())
	assert.True(t, strings.HasPrefix(err.Error(), "city"))
}
