package models

import "time"

// DoctorProfile represents the doctor_profiles table
type DoctorProfile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex" json:"-"`
	Specialization string    `gorm:"size:100" json:"specialization"`
	CreatedAt      time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
}

// TableName specifies the table name for DoctorProfile model
func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// PatientProfile represents the patient_profiles table
// AssignedRoom is filled from rooms.patient_id by the repository, it has no column of its own
type PatientProfile struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;uniqueIndex" json:"-"`
	Gender      string     `gorm:"size:20" json:"gender,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	PhoneNumber string     `gorm:"size:20" json:"phone_number,omitempty"`
	AddressLine string     `gorm:"size:255" json:"address_line,omitempty"`
	City        string     `gorm:"size:100" json:"city,omitempty"`
	State       string     `gorm:"size:100" json:"state,omitempty"`
	PostalCode  string     `gorm:"size:20" json:"postal_code,omitempty"`
	Country     string     `gorm:"size:100" json:"country,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	User            User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	AssignedDoctors []DoctorProfile `gorm:"many2many:patient_doctors;constraint:OnDelete:CASCADE" json:"doctors"`
	AssignedRoom    *RoomRef        `gorm:"-" json:"assigned_room,omitempty"`
}

// TableName specifies the table name for PatientProfile model
func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Lab represents the labs table; each lab logs in with its own user account
type Lab struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"-"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
}

// TableName specifies the table name for Lab model
func (Lab) TableName() string {
	return "labs"
}
