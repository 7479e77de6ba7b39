package constvars

// Client-facing messages. Kept human-safe; raw upstream detail stays in logs.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientSubmissionDisabled            = "Reservation submission is disabled in this environment"
	ErrClientSlotNoLongerAvailable         = "The selected time is no longer available, please pick another slot"
	ErrClientReservationNotAccepted        = "Your reservation could not be accepted"
	ErrClientUpstreamUnavailable           = "The booking service is temporarily unavailable, please retry"
	ErrClientAvailabilityNotRegistered     = "This staff member has not published a schedule yet"
)

// Developer-facing messages for diagnostics.
const (
	ErrDevValidationFailed          = "VALIDATION_FAILED"
	ErrDevInvalidRequestPayload     = "INVALID_REQUEST_PAYLOAD"
	ErrDevCannotParseJSON           = "CANNOT_PARSE_JSON"
	ErrDevCannotParseTime           = "CANNOT_PARSE_TIME"
	ErrDevCannotMarshalJSON         = "CANNOT_MARSHAL_JSON"
	ErrDevCreateHTTPRequest         = "CANNOT_CREATE_HTTP_REQUEST"
	ErrDevSendHTTPRequest           = "CANNOT_SEND_HTTP_REQUEST"
	ErrDevDecodeUpstreamResponse    = "CANNOT_DECODE_UPSTREAM_RESPONSE"
	ErrDevUpstreamRejectedRequest   = "UPSTREAM_REJECTED_REQUEST"
	ErrDevSlotConflictDetected      = "SLOT_CONFLICT_DETECTED"
	ErrDevSubmissionDisabled        = "SUBMISSION_DISABLED_DEMO_TARGET"
	ErrDevServerDeadlineExceeded    = "SERVER_DEADLINE_EXCEEDED"
	ErrDevServerProcess             = "SERVER_PROCESS_ERROR"
	ErrDevRedisSetData              = "REDIS_FAILED_TO_SET_DATA"
	ErrDevRedisGetData              = "REDIS_FAILED_TO_GET_DATA"
	ErrDevRedisDeleteData           = "REDIS_FAILED_TO_DELETE_DATA"
	ErrDevRedisSetNX                = "REDIS_FAILED_TO_SET_NX"
	ErrDevRedisUnlockNotOwned       = "REDIS_UNLOCK_NOT_OWNED"
	ErrDevMongoDBFindDocument       = "MONGODB_FAILED_TO_FIND_DOCUMENT"
	ErrDevMongoDBUpsertDocument     = "MONGODB_FAILED_TO_UPSERT_DOCUMENT"
	ErrDevRabbitMQPublishMessage    = "RABBITMQ_FAILED_TO_PUBLISH_MESSAGE"
	ErrDevAvailabilityNotRegistered = "AVAILABILITY_NOT_REGISTERED"
)
