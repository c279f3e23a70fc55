package util

import (
	"fmt"
	"reflect"
	"strings"

	"leave-tracking/models"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// Report json names so messages match what the client sent.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	Validate.RegisterValidation("notblank", validateNotBlank)
	Validate.RegisterValidation("leavetype", validateLeaveType)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateLeaveType(fl validator.FieldLevel) bool {
	return models.LeaveType(fl.Field().String()).Valid()
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func ValidateStruct(s interface{}) []*ErrorResponse {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []*ErrorResponse{{Msg: err.Error()}}
	}

	var errors []*ErrorResponse
	for _, err := range validationErrors {
		element := ErrorResponse{Field: err.Field(), Tag: err.Tag()}

		switch err.Tag() {
		case "required":
			element.Msg = fmt.Sprintf("field '%s' is required.", element.Field)
		case "notblank":
			element.Msg = fmt.Sprintf("field '%s' must not be blank.", element.Field)
		case "gt":
			element.Msg = fmt.Sprintf("field '%s' must be greater than %s.", element.Field, err.Param())
		case "gte":
			element.Msg = fmt.Sprintf("field '%s' cannot be less than %s.", element.Field, err.Param())
		case "oneof":
			element.Msg = fmt.Sprintf("field '%s' must be one of: %s.", element.Field, err.Param())
		case "max":
			element.Msg = fmt.Sprintf("field '%s' must be at most %s characters.", element.Field, err.Param())
		case "datetime":
			element.Msg = fmt.Sprintf("field '%s' must be a date formatted as YYYY-MM-DD.", element.Field)
		case "leavetype":
			element.Msg = fmt.Sprintf("field '%s' must be one of: EL SL CL.", element.Field)
		case "len", "hexadecimal":
			element.Msg = fmt.Sprintf("field '%s' must be a valid id.", element.Field)
		default:
			element.Msg = fmt.Sprintf("field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
		}
		errors = append(errors, &element)
	}
	return errors
}
