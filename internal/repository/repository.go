// Package repository implements storage access for every entity. Listing
// composes optional filters as a single accumulating conjunction on the query
// builder, so any subset of filters in any order produces the same predicate.
package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
)

// Filter types are zero-value friendly: empty fields add no clauses.

type InstituteFilter struct {
	ID      uuid.UUID
	Name    string
	Country string
}

type ClientFilter struct {
	ID            uuid.UUID
	Name          string
	Country       string
	InstituteName string
}

type WorkerFilter struct {
	ID            uuid.UUID
	Name          string
	Country       string
	InstituteName string
	Specialties   []string
}

type TaskFilter struct {
	ID           uuid.UUID
	Name         string
	Type         string
	Status       string
	ClientID     uuid.UUID
	WorkerID     uuid.UUID
	DeadlineFrom *time.Time
	DeadlineTo   *time.Time
}

type UserFilter struct {
	Name     string
	Username string
	Role     string
}

// translate maps driver errors to the application taxonomy. Unique-index
// violations become Conflict so concurrent creates racing past the service
// pre-check still surface correctly.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if isDuplicate(err) {
		return apperr.Conflictf("resource already exists")
	}
	return apperr.Internal(err)
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

func containsPattern(v string) string {
	return "%" + strings.ToLower(v) + "%"
}
