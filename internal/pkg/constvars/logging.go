package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingErrorKey       = "error"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingClientIDKey    = "is_client_request_id"
	LoggingRouteKey       = "route"
	LoggingBytesKey       = "bytes"
	LoggingLocationKey    = "location"
	LoggingRequestKey     = "request"
	LoggingResponseKey    = "response"
	LoggingEmailKey       = "email"
	LoggingRoleKey        = "role"
	LoggingCountKey       = "count"
	LoggingQueueKey       = "queue"
	LoggingRedisKey       = "redis_key"
	LoggingIDKey          = "id"
	LoggingDoctorIDKey    = "doctor_id"
	LoggingPatientIDKey   = "patient_id"
	LoggingScheduleIDKey  = "schedule_id"
	LoggingAppointmentKey = "appointment_id"
	LoggingPaginationKey  = "pagination"

	LoggingLockExpirationTimeKey = "lock_expiration_time"
)
