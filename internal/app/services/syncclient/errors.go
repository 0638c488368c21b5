package syncclient

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrSubmitInProgress = errors.New("a submission for this form is already in progress")
	ErrPermissionDenied = errors.New("permission to read images denied")
)

// ValidationError is returned when required form fields are empty. No request
// is sent to the record store in that case.
type ValidationError struct {
	Form   string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing required %s", e.Form, strings.Join(e.Fields, ", "))
}

func newValidationError(form string, err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, strings.ToLower(fieldErr.Field()))
	}
	return &ValidationError{Form: form, Fields: fields}
}
