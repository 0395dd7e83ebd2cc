package client

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"datavault360/pkg/utils"

	"github.com/go-playground/validator/v10"
)

var forms = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkForm validates s and returns a validation *Error naming every bad field, or nil
func checkForm(s interface{}) error {
	err := forms.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{Kind: KindValidation, Message: err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "This field is required."
		case "datetime":
			fields[fe.Field()] = "Use the format YYYY-MM-DD."
		case "email":
			fields[fe.Field()] = "Enter a valid email address."
		default:
			fields[fe.Field()] = "Invalid value."
		}
	}
	return validationError(fields)
}

// checkPassword applies the rules shared by every account creation path
func checkPassword(password, confirm string) error {
	if password != confirm {
		return validationError(map[string]string{"confirm_password": "Passwords do not match."})
	}
	return checkPasswordLength(password)
}

func checkPasswordLength(password string) error {
	if utils.PasswordTooShort(password) {
		msg := fmt.Sprintf("Password must be at least %d characters.", utils.MinPasswordLength)
		return validationError(map[string]string{"password": msg})
	}
	return nil
}
