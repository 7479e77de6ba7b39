package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY contextKey = "request_id"
)

const (
	// ReservationChannelWeb marks submissions coming from the storefront.
	ReservationChannelWeb = "web_storefront"

	// DefaultMaxSelection caps how many candidate slots a customer may pick.
	DefaultMaxSelection = 3

	// DefaultDesiredStartOffsetMinutes is the "a couple of hours from now"
	// fallback when neither a selected slot nor an explicit start is given.
	DefaultDesiredStartOffsetMinutes = 150

	// ConflictNoticeSeconds is how long a conflict banner stays visible.
	ConflictNoticeSeconds = 6
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"max":          "maximum at %s characters long",
	"min":          "must be at least %s characters long",
	"phone_digits": "must contain 10 to 13 digits",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"max": true,
	"min": true,
}
