package core

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrAuthFailure      = errors.New("invalid username or password")
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return err.Fields[0].Field + ": " + err.Fields[0].Error
		}
		return ""
	}
	return err.Err.Error()
}

func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// ConstraintError reports a write rejected by a store constraint (unique key, foreign key).
type ConstraintError struct {
	Field string
	Err   error
}

func NewConstraintError(field string, err error) error {
	return &ConstraintError{Field: field, Err: err}
}

func (err ConstraintError) Error() string {
	if err.Err == nil {
		return "constraint violation: " + err.Field
	}
	return err.Err.Error()
}

func (err ConstraintError) Unwrap() error { return err.Err }

func IsConstraintViolation(err error) bool {
	_, ok := errors.Cause(err).(*ConstraintError)
	return ok
}

// Validation translates go-playground validation errors into a *ValidationError; other errors pass through.
func Validation(err error) error {
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	flds := make([]FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, FieldError{Field: vErr.Field(), Error: vErr.Translate(Translator)})
	}
	return NewValidationError(nil, flds...)
}
