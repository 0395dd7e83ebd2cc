package client

import (
	"net/http"
	"testing"

	"datavault360/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectProvisionPasswordBoundary(t *testing.T) {
	b := newFakeBackend(t)
	bodies := make(chan map[string]interface{}, 1)
	b.api.POST("/labs/", func(c *gin.Context) {
		var body map[string]interface{}
		_ = c.ShouldBindJSON(&body)
		bodies <- body
		utils.CreatedResponse(c, gin.H{"id": 4, "name": body["name"], "user": gin.H{"username": body["username"]}})
	})
	c := b.client()
	p := c.Provisioner(RoleLab, false)
	require.IsType(t, &DirectProvisioner{}, p)

	req := ProvisionRequest{Role: RoleLab, Username: "central", Password: "abc", LabName: "Central Lab"}
	_, err := p.ProvisionAccount(ctx, req)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "password")
	assert.Zero(t, b.total())

	req.Password = "abcd"
	out, err := p.ProvisionAccount(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, &Provisioned{Role: RoleLab, ProfileID: 4, Username: "central"}, out)
	got := <-bodies
	assert.Equal(t, "Central Lab", got["name"])
	assert.Equal(t, "abcd", got["password"])
}

func TestDirectProvisionDoctorAndPatient(t *testing.T) {
	b := newFakeBackend(t)
	bodies := make(chan map[string]interface{}, 3)
	b.api.POST("/doctors/", func(c *gin.Context) {
		var doctor map[string]interface{}
		_ = c.ShouldBindJSON(&doctor)
		bodies <- doctor
		utils.CreatedResponse(c, gin.H{"id": 2, "user": gin.H{"username": doctor["username"]}})
	})
	b.api.POST("/patients/", func(c *gin.Context) {
		var patient map[string]interface{}
		_ = c.ShouldBindJSON(&patient)
		bodies <- patient
		if patient["username"] == "taken" {
			utils.ValidationErrorResponse(c, "Username already exists", map[string]string{"username": "Username already exists"})
			return
		}
		utils.CreatedResponse(c, gin.H{"id": 6, "user": gin.H{"username": patient["username"]}})
	})
	p := b.client().Provisioner(RoleDoctor, true)

	out, err := p.ProvisionAccount(ctx, ProvisionRequest{
		Role: RoleDoctor, Username: "house", Password: "vicodin", Specialization: "Diagnostics",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), out.ProfileID)
	doctor := <-bodies
	assert.Equal(t, "Diagnostics", doctor["specialization"])

	_, err = p.ProvisionAccount(ctx, ProvisionRequest{
		Role: RolePatient, Username: "pat", Password: "abcd", DoctorIDs: []uint{2},
		Patient: PatientFields{City: "Springfield"},
	})
	require.NoError(t, err)
	patient := <-bodies
	assert.Equal(t, "Springfield", patient["city"])
	assert.NotContains(t, patient, "country")
	assert.Equal(t, []interface{}{float64(2)}, patient["doctor_ids"])

	_, err = p.ProvisionAccount(ctx, ProvisionRequest{Role: RolePatient, Username: "taken", Password: "abcd"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDirectProvisionRejectsUnknownRole(t *testing.T) {
	b := newFakeBackend(t)
	_, err := NewDirectProvisioner(b.client().API).ProvisionAccount(ctx, ProvisionRequest{
		Role: RoleAdmin, Username: "root", Password: "abcd",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, b.total())
}

func TestInvitationProvisionerIssuesLink(t *testing.T) {
	b := newFakeBackend(t)
	type invitationBody struct {
		Email     string          `json:"email"`
		Role      string          `json:"role"`
		ExtraData InvitationExtra `json:"extra_data"`
	}
	bodies := make(chan invitationBody, 2)
	b.api.POST("/invitations/", func(c *gin.Context) {
		var sent invitationBody
		_ = c.ShouldBindJSON(&sent)
		bodies <- sent
		if sent.Email == "dup@example.com" {
			utils.ValidationErrorResponse(c, "An active invitation already exists for this email",
				map[string]string{"email": "An active invitation already exists for this email"})
			return
		}
		utils.CreatedResponse(c, gin.H{"token": "tok", "link": "http://localhost:5173/setup-account/tok", "email": sent.Email, "role": sent.Role})
	})
	p := b.client().Provisioner(RoleDoctor, false)
	require.IsType(t, &InvitationProvisioner{}, p)

	out, err := p.ProvisionAccount(ctx, ProvisionRequest{Role: RoleDoctor, Email: "doc@example.com", Specialization: "Cardiology"})
	require.NoError(t, err)
	require.NotNil(t, out.Invitation)
	assert.Equal(t, "http://localhost:5173/setup-account/tok", out.Invitation.Link)
	assert.Equal(t, RoleDoctor, out.Role)
	assert.Equal(t, "Cardiology", (<-bodies).ExtraData.Specialization)

	_, err = p.ProvisionAccount(ctx, ProvisionRequest{Role: RoleDoctor, Email: "dup@example.com"})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, http.StatusBadRequest, verr.Status)
	assert.Equal(t, "An active invitation already exists for this email", verr.Fields["email"])
}
