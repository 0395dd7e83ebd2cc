package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"datavault360/internal/middleware"
	"datavault360/internal/service"
	"datavault360/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures under the JSON or form names clients send
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
	}
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// caller returns the authenticated user set by middleware.AuthMiddleware
func caller(c *gin.Context) service.Caller {
	return service.Caller{
		UserID: c.GetUint(middleware.ContextUserID),
		Role:   c.GetString(middleware.ContextRole),
	}
}

// parseID reads a numeric path parameter, writing a 400 when it is malformed
func parseID(c *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+label+" ID")
		return 0, false
	}
	return uint(id), true
}

// bind decodes the request into req, writing a 400 with per-field messages on failure
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(service.FieldErrors, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = validationMessage(fe)
			}
			utils.ValidationErrorResponse(c, fields.Error(), fields)
			return false
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	}
	return "Invalid value."
}

// errorStatus maps service errors to a status and, for validation failures, the field at fault
var errorStatus = []struct {
	err    error
	status int
	field  string
}{
	{service.ErrInvalidCredentials, http.StatusUnauthorized, ""},
	{service.ErrInvalidRefreshToken, http.StatusUnauthorized, ""},
	{service.ErrForbidden, http.StatusForbidden, ""},
	{service.ErrNotFound, http.StatusNotFound, ""},
	{service.ErrInvalidInvitation, http.StatusNotFound, ""},
	{service.ErrUsernameTaken, http.StatusBadRequest, "username"},
	{service.ErrEmailTaken, http.StatusBadRequest, "email"},
	{service.ErrInvitationExists, http.StatusBadRequest, "email"},
	{service.ErrPasswordTooShort, http.StatusBadRequest, "password"},
	{service.ErrRoomNumberTaken, http.StatusBadRequest, "room_number"},
	{service.ErrDischargeInPast, http.StatusBadRequest, "discharge_time"},
	{service.ErrUnknownDoctor, http.StatusBadRequest, "doctor"},
	{service.ErrUnknownPatient, http.StatusBadRequest, "patient"},
	{service.ErrUnknownLab, http.StatusBadRequest, "lab"},
	{service.ErrRoomOccupied, http.StatusConflict, ""},
	{service.ErrPatientAlreadyAdmitted, http.StatusConflict, ""},
	{service.ErrRoomNotOccupied, http.StatusConflict, ""},
	{service.ErrLabTestCompleted, http.StatusConflict, ""},
}

// respondError writes the envelope for err; unknown errors become a logged 500
func respondError(c *gin.Context, err error) {
	var fields service.FieldErrors
	if errors.As(err, &fields) {
		utils.ValidationErrorResponse(c, fields.Error(), fields)
		return
	}

	for _, e := range errorStatus {
		if !errors.Is(err, e.err) {
			continue
		}
		msg := capitalize(err.Error())
		if e.field != "" {
			utils.ValidationErrorResponse(c, msg, map[string]string{e.field: msg})
			return
		}
		utils.ErrorResponse(c, e.status, msg)
		return
	}

	_ = c.Error(err)
	utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
