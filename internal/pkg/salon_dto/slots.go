package salon_dto

// RawSlot is the loosely-typed slot shape delivered by the availability
// backing service. Status is an unconstrained vocabulary ("open", "blocked",
// occasionally "ok" or "busy", any casing) and may be absent entirely.
// Timestamps are ISO instants with explicit offset.
type RawSlot struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status,omitempty"`
}

type SlotListResponse struct {
	Slots []RawSlot `json:"slots"`
}

// SlotVerification is the point-query answer for a single staff + instant.
// Reason uses the same vocabulary as reservation rejection codes.
type SlotVerification struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
