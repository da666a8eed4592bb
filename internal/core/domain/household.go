package domain

import "time"

// MemberStatus is the lifecycle state of a household membership.
type MemberStatus string

const (
	MemberActive  MemberStatus = "ACTIVE"
	MemberInvited MemberStatus = "INVITED"
	MemberLeft    MemberStatus = "LEFT"
)

// Household groups users that share selected accounts.
type Household struct {
	HouseholdID string    `json:"householdId"`
	Name        string    `json:"name"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HouseholdMember links a user to a household.
type HouseholdMember struct {
	HouseholdID string       `json:"householdId"`
	UserID      string       `json:"userId"`
	Status      MemberStatus `json:"status"`
	JoinedAt    *time.Time   `json:"joinedAt,omitempty"`
}
