package models

import "time"

// Room types accepted by rooms.room_type
const (
	RoomTypeGeneral = "GENERAL"
	RoomTypeICU     = "ICU"
	RoomTypePrivate = "PRIVATE"
	RoomTypeSemi    = "SEMI"
)

// RoomTypes lists the room types in display order
var RoomTypes = []string{RoomTypeGeneral, RoomTypeICU, RoomTypePrivate, RoomTypeSemi}

// Room represents a ward room that holds at most one patient.
// ScheduledDischarge is only set while PatientID is set.
type Room struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	RoomNumber         string     `gorm:"size:20;not null;uniqueIndex" json:"room_number"`
	RoomType           string     `gorm:"type:enum('GENERAL','ICU','PRIVATE','SEMI');default:'GENERAL'" json:"room_type"`
	Speciality         string     `gorm:"size:100" json:"speciality,omitempty"`
	PatientID          *uint      `gorm:"uniqueIndex" json:"patient_id"`
	ScheduledDischarge *time.Time `json:"scheduled_discharge"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Relationships
	Patient *PatientProfile `gorm:"foreignKey:PatientID;constraint:OnDelete:SET NULL" json:"patient,omitempty"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

// IsOccupied reports whether a patient is currently admitted
func (r Room) IsOccupied() bool {
	return r.PatientID != nil
}

// RoomRef is the short form of a room embedded in patient listings
type RoomRef struct {
	ID         uint   `json:"id"`
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
}
