package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrDelivery   = errors.New("email delivery failed")
	ErrBadFile    = errors.New("unreadable upload")
)

// NotFoundError reports an id that does not resolve to a record.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError lists the payload fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, name := range sortedKeys(e.Fields) {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "invalid payload: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// notFound converts the repository's not-found signal into a NotFoundError and
// wraps any other error with op.
func notFound(err error, entity string, id uint, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return fmt.Errorf("%s: %w", op, err)
}
