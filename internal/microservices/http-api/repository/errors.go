package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the identifier has no matching row. It is an expected
	// outcome, callers branch on it with errors.Is.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEntry means a row with the same normalized name already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrNoRowsAffected means a commit touched zero rows when at least one was expected.
	ErrNoRowsAffected = errors.New("no rows affected")

	// ErrReferentialViolation means a related id does not resolve to an existing
	// row, or removing the row would leave dangling references.
	ErrReferentialViolation = errors.New("referential integrity violation")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate maps store errors onto the package sentinels and adds op context.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicateEntry)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", op, ErrReferentialViolation)
	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		return fmt.Errorf("%s: %w", op, ErrDuplicateEntry)
	case errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation:
		return fmt.Errorf("%s: %w", op, ErrReferentialViolation)
	case strings.Contains(err.Error(), "FOREIGN KEY constraint failed"):
		// sqlite builds that do not report extended codes
		return fmt.Errorf("%s: %w", op, ErrReferentialViolation)
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return fmt.Errorf("%s: %w", op, ErrDuplicateEntry)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// affected turns a gorm result into the save contract: nil only when the
// statement succeeded and changed at least one row.
func affected(op string, result *gorm.DB) error {
	if result.Error != nil {
		return translate(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNoRowsAffected)
	}
	return nil
}
