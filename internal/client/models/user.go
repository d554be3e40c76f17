package models

import "time"

// User is a registered account as returned by the users endpoints.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Subscriber is a newsletter subscription record.
type Subscriber struct {
	ID           string    `json:"_id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// SubscriptionStatus describes the current user's newsletter state.
type SubscriptionStatus struct {
	Subscribed   bool      `json:"subscribed"`
	ID           string    `json:"_id,omitempty"`
	SubscribedAt time.Time `json:"subscribedAt,omitempty"`
}
