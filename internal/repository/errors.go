package repository

import (
	"errors"
	"strings"

	"blogly/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgForeignKeyViolation is the SQLSTATE PostgreSQL reports for a broken reference.
const pgForeignKeyViolation = "23503"

// translateError maps driver errors onto AppErrors. Errors that already carry a code pass through.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if isForeignKeyViolation(err) {
		return models.NewIntegrityError("The change conflicts with a user/post reference", err)
	}
	return models.NewInternalError(err)
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
