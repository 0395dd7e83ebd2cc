package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"datavault360/internal/models"
	"datavault360/internal/service"
	"datavault360/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RecordHandler serves visits, lab tests and the analytics dashboard
type RecordHandler struct {
	visitService     *service.VisitService
	labTestService   *service.LabTestService
	analyticsService *service.AnalyticsService
	maxUploadBytes   int64
}

func NewRecordHandler(
	visitService *service.VisitService,
	labTestService *service.LabTestService,
	analyticsService *service.AnalyticsService,
	maxUploadBytes int64,
) *RecordHandler {
	return &RecordHandler{
		visitService:     visitService,
		labTestService:   labTestService,
		analyticsService: analyticsService,
		maxUploadBytes:   maxUploadBytes,
	}
}

type CreateVisitRequest struct {
	PatientID    uint      `json:"patient" binding:"required"`
	VisitDate    time.Time `json:"visit_date"`
	Diagnosis    string    `json:"diagnosis" binding:"required"`
	Prescription string    `json:"prescription"`
}

type CreateLabTestRequest struct {
	PatientID uint   `json:"patient" binding:"required"`
	LabID     uint   `json:"lab" binding:"required"`
	TestNames string `json:"test_names" binding:"required"`
}

type CompleteLabTestRequest struct {
	Status string `form:"status" binding:"required,eq=COMPLETED"`
}

// ListVisits returns the visits visible to the caller
func (h *RecordHandler) ListVisits(c *gin.Context) {
	visits, err := h.visitService.ListVisits(c.Request.Context(), caller(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, visits)
}

// CreateVisit records a visit by the calling doctor
func (h *RecordHandler) CreateVisit(c *gin.Context) {
	var req CreateVisitRequest
	if !bind(c, &req) {
		return
	}

	visit := &models.Visit{
		PatientID:    req.PatientID,
		VisitDate:    req.VisitDate,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
	}
	if err := h.visitService.CreateVisit(c.Request.Context(), caller(c), visit); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, visit)
}

// ListLabTests returns the lab test requests visible to the caller
func (h *RecordHandler) ListLabTests(c *gin.Context) {
	requests, err := h.labTestService.ListLabTests(c.Request.Context(), caller(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, requests)
}

// CreateLabTest orders tests from one lab
func (h *RecordHandler) CreateLabTest(c *gin.Context) {
	var req CreateLabTestRequest
	if !bind(c, &req) {
		return
	}

	request, err := h.labTestService.CreateLabTest(c.Request.Context(), caller(c), req.PatientID, req.LabID, req.TestNames)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, request)
}

// CompleteLabTest accepts the multipart report upload that completes a request
func (h *RecordHandler) CompleteLabTest(c *gin.Context) {
	id, ok := parseID(c, "id", "lab test")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	var req CompleteLabTestRequest
	if !bind(c, &req) {
		return
	}

	header, err := c.FormFile("report_file")
	if err != nil {
		fields := service.FieldErrors{"report_file": "No file was submitted."}
		utils.ValidationErrorResponse(c, fields.Error(), fields)
		return
	}
	file, err := header.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	request, err := h.labTestService.CompleteLabTest(c.Request.Context(), caller(c), id, header.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, request)
}

// DownloadReport streams the report file of a completed request
func (h *RecordHandler) DownloadReport(c *gin.Context) {
	id, ok := parseID(c, "id", "lab test")
	if !ok {
		return
	}

	rc, name, err := h.labTestService.OpenReport(c.Request.Context(), caller(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

// Analytics returns the admin dashboard summary
func (h *RecordHandler) Analytics(c *gin.Context) {
	summary, err := h.analyticsService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, summary)
}
