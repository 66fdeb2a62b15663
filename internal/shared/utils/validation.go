package utils

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fiberops/subcore/internal/shared/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

func init() {
	// gin's request binding reports json names too
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// FieldErrors returns one message per failed field, or nil when s is valid.
func FieldErrors(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return describe(err)
}

// BindError turns a ShouldBindJSON failure into a validation error whose
// details name every offending field.
func BindError(err error) *errors.AppError {
	return errors.NewValidationError("invalid request body", strings.Join(describe(err), "; "))
}

func describe(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "alphanum":
		return field + " must contain only letters and digits"
	case "ip":
		return field + " must be an IP address"
	case "hostname_port":
		return field + " must be a host:port address"
	default:
		return fmt.Sprintf("%s failed the %q check", field, fe.Tag())
	}
}
