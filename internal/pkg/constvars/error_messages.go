package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s",
	"max":           "must be at most %s",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"lt":            "must be less than %s",
	"lte":           "must be less than or equal to %s",
	"url":           "must be a valid URL",
	"uuid":          "must be a valid UUID",
	"dive":          "contains an invalid value",
	"date_yyyymmdd": "must be a date in YYYY-MM-DD format",
	"time_hhmm":     "must be a time in HH:MM format",
	"rfc3339":       "must be an ISO 8601 date time",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidJSONBody               = "Invalid JSON body"
	ErrClientValidationFailed              = "Validation failed"
	ErrClientNotAuthorized                 = "You are not authorized!"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientEmailAlreadyExists            = "Email already exists"
	ErrClientAPINotFound                   = "API NOT FOUND!"
	ErrClientTooManyRequests               = "Too many requests, you are blocked temporarily."
	ErrClientInvalidAPIKey                 = "Invalid API key"
	ErrClientScheduleNotFound              = "Schedule not found"
	ErrClientScheduleInUse                 = "Schedule is assigned to a doctor and cannot be deleted"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientAdminNotFound                 = "Admin not found"
	ErrClientBookingTargetNotFound         = "Patient, doctor, or available schedule not found"
	ErrClientScheduleAlreadyBooked         = "Schedule has already been booked"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientAppointmentNotCompletedPaid   = "Appointment not found or not completed/paid"
	ErrClientNotYourAppointment            = "This is not your appointment"
	ErrClientReviewTargetNotFound          = "Patient or appointment not found"
	ErrClientReviewAlreadyExists           = "Appointment has already been reviewed"
	ErrClientPrescriptionAlreadyExists     = "Appointment already has a prescription"
	ErrClientInvalidStatusTransition       = "Appointment status cannot be changed to the requested value"
	ErrClientPaymentAlreadyPaid            = "Payment has already been confirmed"
	ErrClientInvalidRole                   = "Invalid user role!"
	ErrClientResourceConflict              = "Resource already exists"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate           = "cannot parse the requested date"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevAuthTokenMissing          = "auth token missing, invalid or role not allowed"
	ErrDevAuthGenerateToken         = "failed to generate auth token"
	ErrDevAuthTokenInvalidOrExpired = "auth token invalid or expired"
	ErrDevInvalidAPIKey             = "invalid superadmin API key"
	ErrDevRouteNotFound             = "route not found"
	ErrDevRateLimited               = "rate limit exceeded"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevNotFound                  = "%s not found"
	ErrDevScheduleInUse             = "schedule is referenced by doctor_schedules or appointments"
	ErrDevScheduleAlreadyBooked     = "guarded update affected zero rows"
	ErrDevNotOwner                  = "caller does not own %s"
	ErrDevInvalidStatusTransition   = "invalid appointment status transition from %s to %s"
	ErrDevPaymentAlreadyPaid        = "payment already in PAID status"
	ErrDevInvalidRole               = "invalid user role %s"

	ErrDevPostgresDBBeginTx          = "failed to begin postgres transaction"
	ErrDevPostgresDBCommitTx         = "failed to commit postgres transaction"
	ErrDevPostgresDBExecQuery        = "failed to execute postgres query"
	ErrDevPostgresDBFindData         = "failed to find data in postgres"
	ErrDevPostgresDBScanRow          = "failed to scan postgres row"
	ErrDevPostgresDBUniqueViolation  = "postgres unique constraint violated"
	ErrDevPostgresDBForeignViolation = "postgres foreign key constraint violated"

	ErrDevRedisSetNX      = "failed to set-if-not-exists data to redis"
	ErrDevRedisUnlock     = "failed to release redis lock"
	ErrDevRedisRefresh    = "failed to refresh redis lock"
	ErrDevRabbitMQPublish = "failed to publish message to rabbitmq queue %s"
)
