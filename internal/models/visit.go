package models

import "time"

// Visit is a doctor-authored diagnosis and prescription for one patient
type Visit struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PatientID    uint      `gorm:"not null;index" json:"patient"`
	DoctorID     uint      `gorm:"not null;index" json:"doctor"`
	VisitDate    time.Time `gorm:"not null" json:"visit_date"`
	Diagnosis    string    `gorm:"type:text" json:"diagnosis"`
	Prescription string    `gorm:"type:text" json:"prescription"`
	CreatedAt    time.Time `json:"created_at"`

	Patient PatientProfile `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`

	PatientName string `gorm:"-" json:"patient_name,omitempty"`
	DoctorName  string `gorm:"-" json:"doctor_name,omitempty"`
}

// TableName specifies the table name for Visit model
func (Visit) TableName() string {
	return "visits"
}

// FillNames copies display names from preloaded relations
func (v *Visit) FillNames() {
	if v.Patient.ID != 0 {
		v.PatientName = v.Patient.User.FullName()
	}
	if v.Doctor.ID != 0 {
		v.DoctorName = v.Doctor.User.FullName()
	}
}
