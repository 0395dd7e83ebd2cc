package handler

import (
	"time"

	"datavault360/internal/service"
	"datavault360/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves the doctors, patients and labs collections
type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

type CredentialsRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Password  string `json:"password" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
}

func (r CredentialsRequest) credentials() service.Credentials {
	return service.Credentials{
		Username:  r.Username,
		Password:  r.Password,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

type CreateDoctorRequest struct {
	CredentialsRequest
	Specialization string `json:"specialization" binding:"max=100"`
}

// PatientDetailsRequest is shared by direct creation and invitation completion
type PatientDetailsRequest struct {
	Gender      string `json:"gender" binding:"max=20"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	PhoneNumber string `json:"phone_number" binding:"max=20"`
	AddressLine string `json:"address_line" binding:"max=255"`
	City        string `json:"city" binding:"max=100"`
	State       string `json:"state" binding:"max=100"`
	PostalCode  string `json:"postal_code" binding:"max=20"`
	Country     string `json:"country" binding:"max=100"`
}

func (r PatientDetailsRequest) details() service.PatientDetails {
	d := service.PatientDetails{
		Gender:      r.Gender,
		PhoneNumber: r.PhoneNumber,
		AddressLine: r.AddressLine,
		City:        r.City,
		State:       r.State,
		PostalCode:  r.PostalCode,
		Country:     r.Country,
	}
	if dob, err := time.Parse("2006-01-02", r.DateOfBirth); err == nil {
		d.DateOfBirth = &dob
	}
	return d
}

type CreatePatientRequest struct {
	CredentialsRequest
	PatientDetailsRequest
	DoctorIDs []uint `json:"doctor_ids"`
}

type AssignDoctorsRequest struct {
	DoctorIDs []uint `json:"doctor_ids" binding:"required"`
}

type CreateLabRequest struct {
	CredentialsRequest
	Name    string `json:"name" binding:"required,max=255"`
	Address string `json:"address"`
}

// ListDoctors returns the doctors visible to the caller
func (h *AccountHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.accountService.ListDoctors(c.Request.Context(), caller(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, doctors)
}

// CreateDoctor creates a doctor with admin-supplied credentials
func (h *AccountHandler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if !bind(c, &req) {
		return
	}

	doctor, err := h.accountService.CreateDoctor(c.Request.Context(), caller(c), req.credentials(), req.Specialization)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, doctor)
}

// DeleteDoctor removes a doctor account
func (h *AccountHandler) DeleteDoctor(c *gin.Context) {
	id, ok := parseID(c, "id", "doctor")
	if !ok {
		return
	}
	if err := h.accountService.DeleteDoctor(c.Request.Context(), caller(c), id); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Doctor deleted successfully")
}

// ListPatients returns the patients visible to the caller
func (h *AccountHandler) ListPatients(c *gin.Context) {
	patients, err := h.accountService.ListPatients(c.Request.Context(), caller(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, patients)
}

// CreatePatient creates a patient with admin- or doctor-supplied credentials
func (h *AccountHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !bind(c, &req) {
		return
	}

	patient, err := h.accountService.CreatePatient(c.Request.Context(), caller(c),
		req.credentials(), req.details(), req.DoctorIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, patient)
}

// UpdatePatient replaces the patient's assigned doctors
func (h *AccountHandler) UpdatePatient(c *gin.Context) {
	id, ok := parseID(c, "id", "patient")
	if !ok {
		return
	}
	var req AssignDoctorsRequest
	if !bind(c, &req) {
		return
	}

	patient, err := h.accountService.AssignDoctors(c.Request.Context(), caller(c), id, req.DoctorIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, patient)
}

// DeletePatient removes a patient account
func (h *AccountHandler) DeletePatient(c *gin.Context) {
	id, ok := parseID(c, "id", "patient")
	if !ok {
		return
	}
	if err := h.accountService.DeletePatient(c.Request.Context(), caller(c), id); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Patient deleted successfully")
}

// ListLabs returns every lab
func (h *AccountHandler) ListLabs(c *gin.Context) {
	labs, err := h.accountService.ListLabs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, labs)
}

// CreateLab creates a lab with admin-supplied credentials
func (h *AccountHandler) CreateLab(c *gin.Context) {
	var req CreateLabRequest
	if !bind(c, &req) {
		return
	}

	lab, err := h.accountService.CreateLab(c.Request.Context(), caller(c), req.credentials(), req.Name, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, lab)
}

// DeleteLab removes a lab account
func (h *AccountHandler) DeleteLab(c *gin.Context) {
	id, ok := parseID(c, "id", "lab")
	if !ok {
		return
	}
	if err := h.accountService.DeleteLab(c.Request.Context(), caller(c), id); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Lab deleted successfully")
}
