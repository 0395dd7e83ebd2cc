package models

import "time"

// Lab test request statuses
const (
	LabTestPending   = "PENDING"
	LabTestCompleted = "COMPLETED"
)

// LabTestRequest is an order from a doctor to one lab.
// It moves from PENDING to COMPLETED once, together with its report file.
type LabTestRequest struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PatientID   uint       `gorm:"not null;index" json:"patient"`
	DoctorID    uint       `gorm:"not null;index" json:"doctor"`
	LabID       uint       `gorm:"not null;index" json:"lab"`
	TestNames   string     `gorm:"type:text;not null" json:"test_names"`
	Status      string     `gorm:"type:enum('PENDING','COMPLETED');default:'PENDING';index" json:"status"`
	ReportFile  string     `gorm:"size:255" json:"report_file,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	Patient PatientProfile `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
	Lab     Lab            `gorm:"foreignKey:LabID;constraint:OnDelete:CASCADE" json:"-"`

	PatientName string `gorm:"-" json:"patient_name,omitempty"`
	DoctorName  string `gorm:"-" json:"doctor_name,omitempty"`
	LabName     string `gorm:"-" json:"lab_name,omitempty"`
}

// TableName specifies the table name for LabTestRequest model
func (LabTestRequest) TableName() string {
	return "lab_test_requests"
}

// FillNames copies display names from preloaded relations
func (r *LabTestRequest) FillNames() {
	if r.Patient.ID != 0 {
		r.PatientName = r.Patient.User.FullName()
	}
	if r.Doctor.ID != 0 {
		r.DoctorName = r.Doctor.User.FullName()
	}
	if r.Lab.ID != 0 {
		r.LabName = r.Lab.Name
	}
}
