package models

import (
	"errors"
	"fmt"
)

// ErrInvalidEnumValue is returned when a token does not belong to the
// closed set of an enum type.
var ErrInvalidEnumValue = errors.New("invalid enum value")

// InvalidEnumValueError describes a rejected token.
type InvalidEnumValueError struct {
	Enum  string // e.g. "StocktakeStatus"
	Value string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid %s", ErrInvalidEnumValue, e.Value, e.Enum)
}

func (e *InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}

// ValidationError is a single field level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// JoinValidationErrors folds a list of validation errors into one error,
// returning nil for an empty list.
func JoinValidationErrors(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, 0, len(errs))
	for _, e := range errs {
		joined = append(joined, e)
	}
	return errors.Join(joined...)
}
