package domain

import "time"

// User represents a user of the application in the domain.
type User struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
