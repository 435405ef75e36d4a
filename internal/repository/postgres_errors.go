package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

const (
	pgUniqueViolation     pq.ErrorCode = "23505"
	pgForeignKeyViolation pq.ErrorCode = "23503"
)

func pgCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}

// affectedOne returns missing when the statement touched no row.
func affectedOne(res sql.Result, missing error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return missing
	}
	return nil
}

func studentNotFound(id string) error {
	return appErrors.Clonef(appErrors.ErrNotFound, "student with ID %s does not exist", id)
}

func instructorNotFound(id string) error {
	return appErrors.Clonef(appErrors.ErrNotFound, "instructor with ID %s does not exist", id)
}

func courseNotFound(id string) error {
	return appErrors.Clonef(appErrors.ErrNotFound, "course with ID %s does not exist", id)
}
