package service

import (
	"errors"
	"fmt"
	"strings"

	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/models"
	"pokereview/internal/microservices/http-api/repository"
)

// The repository sentinels are re-exported so handlers depend on one package.
var (
	ErrNotFound             = repository.ErrNotFound
	ErrDuplicateEntry       = repository.ErrDuplicateEntry
	ErrReferentialViolation = repository.ErrReferentialViolation
	ErrPersistence          = repository.ErrNoRowsAffected

	ErrInvalidRating = fmt.Errorf("rating must be between %d and %d", models.MinRating, models.MaxRating)
)

// normalizeName is the comparison key for natural names: trimmed, upper case.
func normalizeName(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// containsName reports whether any row's natural name matches name.
func containsName[T any](rows []T, name string, nameOf func(T) string) bool {
	want := normalizeName(name)
	for _, row := range rows {
		if normalizeName(nameOf(row)) == want {
			return true
		}
	}
	return false
}

// expected errors are answers, not faults, and are not logged.
func expected(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicateEntry) ||
		errors.Is(err, ErrReferentialViolation) ||
		errors.Is(err, ErrInvalidRating)
}

// logFailure logs err when it is a store fault and returns it unchanged.
func logFailure(log *logger.Logger, op string, err error, keysAndValues ...interface{}) error {
	if err == nil || expected(err) {
		return err
	}
	log.Error(op+" failed", append(keysAndValues, "error", err)...)
	return err
}

// requireExists turns a false probe into ErrNotFound.
func requireExists(ok bool, err error, what string, id int64) error {
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}
