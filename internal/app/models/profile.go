package models

import "time"

// ContactProfile is the remembered customer contact block, persisted only
// when the customer opts in on submission.
type ContactProfile struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
