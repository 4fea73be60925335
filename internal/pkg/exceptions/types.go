package exceptions

import (
	"doccare-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientValidationFailed, constvars.ErrDevValidationFailed)
		customErr.FieldErrors = FormatAllValidationErrors(err)
		return customErr
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidJSONBody, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientValidationFailed, constvars.ErrDevCannotParseDate)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrRouteNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAPINotFound, constvars.ErrDevRouteNotFound)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevRateLimited)
	}

	ErrNotAuthorized = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrInvalidAPIKey = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidAPIKey, constvars.ErrDevInvalidAPIKey)
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrInvalidRole = func(err error, role string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidRole, fmt.Sprintf(constvars.ErrDevInvalidRole, role))
	}

	ErrEmailAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevEmailAlreadyExists)
	}
	ErrResourceNotFound = func(err error, clientMessage, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, clientMessage, fmt.Sprintf(constvars.ErrDevNotFound, resource))
	}
	ErrResourceConflict = func(err error, clientMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, clientMessage, constvars.ErrDevPostgresDBUniqueViolation)
	}
	ErrScheduleInUse = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientScheduleInUse, constvars.ErrDevScheduleInUse)
	}
	ErrScheduleAlreadyBooked = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientScheduleAlreadyBooked, constvars.ErrDevScheduleAlreadyBooked)
	}
	ErrNotYourAppointment = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientNotYourAppointment, fmt.Sprintf(constvars.ErrDevNotOwner, "appointment"))
	}
	ErrInvalidStatusTransition = func(err error, from, to string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientInvalidStatusTransition, fmt.Sprintf(constvars.ErrDevInvalidStatusTransition, from, to))
	}
	ErrPaymentAlreadyPaid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientPaymentAlreadyPaid, constvars.ErrDevPaymentAlreadyPaid)
	}

	ErrPostgresDBBeginTx = func(err error) *CustomError {
		return BuildNewCustomError(err, postgresStatusCode(err), postgresClientMessage(err), constvars.ErrDevPostgresDBBeginTx)
	}
	ErrPostgresDBCommitTx = func(err error) *CustomError {
		return BuildNewCustomError(err, postgresStatusCode(err), postgresClientMessage(err), constvars.ErrDevPostgresDBCommitTx)
	}
	ErrPostgresDBExecQuery = func(err error) *CustomError {
		return BuildNewCustomError(err, postgresStatusCode(err), postgresClientMessage(err), constvars.ErrDevPostgresDBExecQuery)
	}
	ErrPostgresDBFindData = func(err error) *CustomError {
		return BuildNewCustomError(err, postgresStatusCode(err), postgresClientMessage(err), constvars.ErrDevPostgresDBFindData)
	}
	ErrPostgresDBScanRow = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPostgresDBScanRow)
	}

	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}
	ErrRedisRefresh = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisRefresh)
	}

	ErrRabbitMQPublish = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queue))
	}
)
