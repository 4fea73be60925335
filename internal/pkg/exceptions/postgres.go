package exceptions

import (
	"context"
	"doccare-service/internal/pkg/constvars"
	"errors"

	"github.com/lib/pq"
)

// IsPostgresErrorCode reports whether err wraps a *pq.Error with the given SQLSTATE.
func IsPostgresErrorCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}

func postgresStatusCode(err error) int {
	switch {
	case err == nil:
		return constvars.StatusInternalServerError
	case errors.Is(err, context.DeadlineExceeded):
		return constvars.StatusGatewayTimeout
	case IsPostgresErrorCode(err, constvars.PostgresErrCodeUniqueViolation),
		IsPostgresErrorCode(err, constvars.PostgresErrCodeForeignKeyViolation):
		return constvars.StatusConflict
	default:
		return constvars.StatusInternalServerError
	}
}

func postgresClientMessage(err error) string {
	switch postgresStatusCode(err) {
	case constvars.StatusGatewayTimeout:
		return constvars.ErrClientServerLongRespond
	case constvars.StatusConflict:
		return constvars.ErrClientResourceConflict
	default:
		return constvars.ErrClientSomethingWrongWithApplication
	}
}

// FromPostgresError maps a storage error onto the taxonomy. A *CustomError
// passes through unchanged; foreign key violations must be mapped by the
// caller since their meaning depends on the statement.
func FromPostgresError(err error) *CustomError {
	if err == nil {
		return nil
	}

	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrServerDeadlineExceeded(err)
	case IsPostgresErrorCode(err, constvars.PostgresErrCodeUniqueViolation):
		return ErrResourceConflict(err, constvars.ErrClientResourceConflict)
	default:
		return ErrPostgresDBExecQuery(err)
	}
}
