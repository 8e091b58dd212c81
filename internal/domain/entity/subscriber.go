package entity

import "time"

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID           int       `json:"id,omitempty"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt,omitzero"`
}
