package helpers

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var usPhone = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Error keys use the json names so they line up with the stored field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("usphone", func(fl validator.FieldLevel) bool {
		return usPhone.MatchString(fl.Field().String())
	})
	return v
}

func IsValidPhone(phone string) bool {
	return usPhone.MatchString(phone)
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required", capitalizeFirstLetter(field))
		case "email":
			errorMessages[field] = "Valid email is required"
		case "usphone":
			errorMessages[field] = "Valid phone number is required"
		case "datetime":
			errorMessages[field] = fmt.Sprintf("Valid %s is required", field)
		case "gte", "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s", capitalizeFirstLetter(field), err.Param())
		case "lte", "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s", capitalizeFirstLetter(field), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed %s validation", capitalizeFirstLetter(field), err.Tag())
		}
	}
	return errorMessages
}

func capitalizeFirstLetter(s string) string {
	if len(s) == 0 {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
