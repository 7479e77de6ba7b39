package constvars

// Machine-readable rejection reason codes returned by the reservation backing
// service when a submission is accepted at the transport level but rejected as
// a business decision.
const (
	RejectionReasonNoShift               = "no_shift"
	RejectionReasonOnBreak               = "on_break"
	RejectionReasonOverlapExisting       = "overlap_existing_reservation"
	RejectionReasonNoAvailableTherapist  = "no_available_therapist"
	RejectionReasonDeadlineOver          = "deadline_over"
	RejectionReasonInternalError         = "internal_error"
	RejectionReasonUnmappedFallbackLabel = "The reservation was declined, please try a different time"
)

// RejectionReasonMessages maps each reason code to the explanation shown to
// the customer. Unknown codes fall back to RejectionReasonUnmappedFallbackLabel.
var RejectionReasonMessages = map[string]string{
	RejectionReasonNoShift:              "The staff member is not on shift at the selected time",
	RejectionReasonOnBreak:              "The staff member is on a break at the selected time",
	RejectionReasonOverlapExisting:      "The selected time overlaps another reservation",
	RejectionReasonNoAvailableTherapist: "No therapist is available at the selected time",
	RejectionReasonDeadlineOver:         "The selected time is past the reservation deadline",
	RejectionReasonInternalError:        "The booking service hit an internal error, please retry",
}

// ConflictReasonCodes are the rejection reasons that mean the chosen instant
// was taken by a competing booking, so the stale selection must be cleared and
// the calendar refreshed.
var ConflictReasonCodes = map[string]bool{
	RejectionReasonNoShift:         true,
	RejectionReasonOnBreak:         true,
	RejectionReasonOverlapExisting: true,
}
