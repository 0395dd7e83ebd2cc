package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"datavault360/internal/models"
)

type (
	Doctor = models.DoctorProfile
	Lab    = models.Lab
	Visit  = models.Visit
)

// Directory lists and removes accounts; creation goes through a Provisioner
type Directory struct {
	api *API
}

func NewDirectory(api *API) *Directory {
	return &Directory{api: api}
}

func (d *Directory) Doctors(ctx context.Context) ([]Doctor, error) {
	var out []Doctor
	if err := d.api.get(ctx, "doctors/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Directory) Patients(ctx context.Context) ([]Patient, error) {
	var out []Patient
	if err := d.api.get(ctx, "patients/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Directory) Labs(ctx context.Context) ([]Lab, error) {
	var out []Lab
	if err := d.api.get(ctx, "labs/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignDoctors replaces the patient's assigned doctors
func (d *Directory) AssignDoctors(ctx context.Context, patientID uint, doctorIDs []uint) (*Patient, error) {
	if doctorIDs == nil {
		doctorIDs = []uint{}
	}
	var p Patient
	if err := d.api.patch(ctx, fmt.Sprintf("patients/%d/", patientID), map[string][]uint{"doctor_ids": doctorIDs}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a doctor, patient or lab profile together with its user
func (d *Directory) Delete(ctx context.Context, role Role, id uint) error {
	var path string
	switch role {
	case RoleDoctor:
		path = "doctors/"
	case RolePatient:
		path = "patients/"
	case RoleLab:
		path = "labs/"
	default:
		return validationError(map[string]string{"role": "Must be one of: DOCTOR PATIENT LAB."})
	}
	return d.api.delete(ctx, fmt.Sprintf("%s%d/", path, id))
}

// NewVisit is a doctor's diagnosis for one patient; VisitDate defaults to now on the server
type NewVisit struct {
	PatientID    uint       `json:"patient" validate:"required"`
	VisitDate    *time.Time `json:"visit_date,omitempty"`
	Diagnosis    string     `json:"diagnosis" validate:"required"`
	Prescription string     `json:"prescription"`
}

type Visits struct {
	api *API
}

func NewVisits(api *API) *Visits {
	return &Visits{api: api}
}

func (v *Visits) List(ctx context.Context) ([]Visit, error) {
	var out []Visit
	if err := v.api.get(ctx, "visits/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (v *Visits) Create(ctx context.Context, visit NewVisit) (*Visit, error) {
	visit.Diagnosis = strings.TrimSpace(visit.Diagnosis)
	if err := checkForm(visit); err != nil {
		return nil, err
	}
	var out Visit
	if err := v.api.post(ctx, "visits/", visit, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type RoomTypeOccupancy struct {
	RoomType string `json:"room_type"`
	Total    int64  `json:"total"`
	Occupied int64  `json:"occupied"`
}

// MonthlyTotal is one month of the ledger; Month is YYYY-MM
type MonthlyTotal struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type InventoryLevel struct {
	Name              string `json:"name"`
	Category          string `json:"category"`
	Quantity          int    `json:"quantity"`
	Unit              string `json:"unit"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	LowStock          bool   `json:"low_stock"`
}

// Analytics is the admin dashboard summary
type Analytics struct {
	Doctors  int64 `json:"doctors"`
	Patients int64 `json:"patients"`
	Labs     int64 `json:"labs"`
	Rooms    struct {
		Total              int64 `json:"total"`
		Occupied           int64 `json:"occupied"`
		Available          int64 `json:"available"`
		DischargeScheduled int64 `json:"discharge_scheduled"`
	} `json:"rooms"`
	ByRoomType []RoomTypeOccupancy `json:"by_room_type"`
	LabTests   struct {
		Pending   int64 `json:"pending"`
		Completed int64 `json:"completed"`
	} `json:"lab_tests"`
	RecentVisits  int64            `json:"recent_visits"`
	LowStockItems int64            `json:"low_stock_items"`
	Financials    []MonthlyTotal   `json:"financials"`
	Inventory     []InventoryLevel `json:"inventory"`
	GeneratedAt   time.Time        `json:"generated_at"`
}

func (d *Directory) Analytics(ctx context.Context) (*Analytics, error) {
	var a Analytics
	if err := d.api.get(ctx, "analytics/", &a); err != nil {
		return nil, err
	}
	return &a, nil
}
