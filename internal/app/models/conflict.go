package models

import "time"

// ConflictError surfaces a slot that was taken by a competing booking between
// display and submission. It is shown until ShowUntil, or until dismissed.
type ConflictError struct {
	Message   string    `json:"message"`
	SlotStart time.Time `json:"slot_start"`
	ShowUntil time.Time `json:"show_until"`
}
