package models

import "time"

// Invitation binds an email and a role to a single-use token.
// ExtraData holds the role-specific payload as a JSON object.
type Invitation struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Token     string     `gorm:"size:36;not null;uniqueIndex" json:"token"`
	Email     string     `gorm:"size:254;not null;index" json:"email"`
	Role      string     `gorm:"type:enum('DOCTOR','PATIENT');not null" json:"role"`
	ExtraData string     `gorm:"type:text" json:"-"`
	IsUsed    bool       `gorm:"default:false;index" json:"is_used"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedBy *uint      `gorm:"index" json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName specifies the table name for Invitation model
func (Invitation) TableName() string {
	return "invitations"
}

// IsRedeemable reports whether the invitation can still be checked or completed at now
func (i Invitation) IsRedeemable(now time.Time) bool {
	return !i.IsUsed && now.Before(i.ExpiresAt)
}

// InvitationExtra is the decoded form of Invitation.ExtraData
type InvitationExtra struct {
	Specialization string `json:"specialization,omitempty"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	Address        string `json:"address,omitempty"`
	DoctorID       uint   `json:"doctor_id,omitempty"`
}
