package service

import (
	"errors"
	"sort"
	"strings"

	"datavault360/internal/models"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrForbidden           = errors.New("you do not have permission to perform this action")
	ErrNotFound            = errors.New("not found")

	ErrUsernameTaken     = errors.New("username already exists")
	ErrEmailTaken        = errors.New("an account with this email already exists")
	ErrInvitationExists  = errors.New("a pending invitation already exists for this email")
	ErrInvalidInvitation = errors.New("invalid or expired invitation")
	ErrPasswordTooShort  = errors.New("password must be at least 4 characters")
	ErrUnknownDoctor     = errors.New("doctor not found")
	ErrUnknownPatient    = errors.New("patient not found")
	ErrUnknownLab        = errors.New("lab not found")

	ErrRoomNumberTaken        = errors.New("room number already exists")
	ErrRoomOccupied           = errors.New("room is already occupied")
	ErrPatientAlreadyAdmitted = errors.New("patient is already admitted")
	ErrRoomNotOccupied        = errors.New("room is not occupied")
	ErrDischargeInPast        = errors.New("discharge time must be in the future")

	ErrLabTestCompleted = errors.New("lab test is already completed")
)

// FieldErrors reports invalid input per field
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, ", ")
}

// Caller is the authenticated user a request acts for
type Caller struct {
	UserID uint
	Role   string
}

func (c Caller) IsAdmin() bool   { return c.Role == models.RoleAdmin }
func (c Caller) IsDoctor() bool  { return c.Role == models.RoleDoctor }
func (c Caller) IsPatient() bool { return c.Role == models.RolePatient }
func (c Caller) IsLab() bool     { return c.Role == models.RoleLab }

// auditUser returns the pointer form audit logs expect
func (c Caller) auditUser() *uint {
	if c.UserID == 0 {
		return nil
	}
	id := c.UserID
	return &id
}
