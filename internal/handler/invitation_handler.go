package handler

import (
	"datavault360/internal/models"
	"datavault360/internal/service"
	"datavault360/pkg/utils"

	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	invitationService *service.InvitationService
}

func NewInvitationHandler(invitationService *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

type CreateInvitationRequest struct {
	Email     string                 `json:"email" binding:"required,email"`
	Role      string                 `json:"role" binding:"required,oneof=DOCTOR PATIENT"`
	ExtraData models.InvitationExtra `json:"extra_data"`
}

type CompleteInvitationRequest struct {
	Token          string `json:"token" binding:"required"`
	Username       string `json:"username" binding:"required,max=150"`
	Password       string `json:"password" binding:"required"`
	FirstName      string `json:"first_name" binding:"required,max=150"`
	LastName       string `json:"last_name" binding:"required,max=150"`
	Specialization string `json:"specialization" binding:"max=100"`
	PatientDetailsRequest
}

// CreateInvitation issues an invitation link (admin only)
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	var req CreateInvitationRequest
	if !bind(c, &req) {
		return
	}

	inv, err := h.invitationService.Create(c.Request.Context(), caller(c), req.Email, req.Role, req.ExtraData)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, inv)
}

// CheckInvitation resolves a token to its role and email (public)
func (h *InvitationHandler) CheckInvitation(c *gin.Context) {
	inv, err := h.invitationService.Check(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, inv)
}

// CompleteInvitation creates the invited account (public)
func (h *InvitationHandler) CompleteInvitation(c *gin.Context) {
	var req CompleteInvitationRequest
	if !bind(c, &req) {
		return
	}

	user, err := h.invitationService.Complete(c.Request.Context(), req.Token, service.CompleteInvitationRequest{
		Username:       req.Username,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		Patient:        req.details(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}
