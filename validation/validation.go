// Package validation runs the structural checks on incoming participant and
// message payloads and turns validator failures into client facing messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/linesmerrill/chatroom-api/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json name so messages match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Participant checks a registration payload
func Participant(req models.ParticipantRequest) error {
	return check(req)
}

// Message checks a message payload, including the sender taken from the User header
func Message(req models.MessageRequest) error {
	return check(req)
}

func check(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &models.ValidationError{Details: []string{err.Error()}}
	}
	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}
	return &models.ValidationError{Details: details}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%q failed on the %q rule", fe.Field(), fe.Tag())
	}
}
