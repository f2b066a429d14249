package tracker

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"
)

// ValidationError rejects a command whose input is malformed or out of range.
// Nothing is written when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an ID that does not reference an existing item.
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// fromValidation converts ozzo-validation output into a ValidationError,
// reporting the first failing field in name order.
func fromValidation(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Reason: err.Error()}
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	field := fields[0]
	return &ValidationError{Field: field, Reason: fieldErrs[field].Error()}
}

// asNotFound maps gorm.ErrRecordNotFound to a NotFoundError for the given
// item and returns any other error unchanged.
func asNotFound(err error, kind string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Kind: kind, ID: id}
	}
	return err
}

// storageErr wraps storage failures with the attempted action. Typed
// command errors pass through untouched.
func storageErr(err error, action string) error {
	if err == nil || IsNotFound(err) || IsValidation(err) {
		return err
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
