package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingStaffIDKey       = "staff_id"
	LoggingWeekStartKey     = "week_start"
	LoggingSlotStartKey     = "slot_start"
	LoggingSlotCountKey     = "slot_count"
	LoggingDayCountKey      = "day_count"
	LoggingReservationIDKey = "reservation_id"
	LoggingReasonCodesKey   = "reason_codes"
	LoggingRedisKey         = "redis_key"
	LoggingLockTTLKey       = "lock_ttl"
	LoggingLockValueKey     = "lock_value"
	LoggingQueueNameKey     = "queue_name"
)
