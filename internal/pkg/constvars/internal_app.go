package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_AUTH_USER_KEY            ContextKey = "auth_user"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "DOCCARE_SVC_"
)

const (
	RoleAdmin   = "ADMIN"
	RoleDoctor  = "DOCTOR"
	RolePatient = "PATIENT"
)

const (
	UserStatusActive  = "ACTIVE"
	UserStatusDeleted = "DELETED"
)

const (
	AppointmentStatusPending   = "PENDING"
	AppointmentStatusCompleted = "COMPLETED"
	AppointmentStatusCancelled = "CANCELLED"
)

const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
)

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

const (
	ScheduleSlotIntervalInMinutes = 30
	DateLayoutYYYYMMDD            = "2006-01-02"
)

const (
	EventAppointmentBooked = "appointment.booked"
)

const (
	PostgresErrCodeUniqueViolation     = "23505"
	PostgresErrCodeForeignKeyViolation = "23503"
	PostgresErrCodeInvalidTextRepr     = "22P02"
)
