package events

import "time"

// AuthUser is the payload of identity-provider user lifecycle events
// (user created / user deleted). Any field may be absent or empty.
type AuthUser struct {
	UID         string       `json:"uid"`
	Email       string       `json:"email"`
	DisplayName string       `json:"displayName"`
	PhotoURL    string       `json:"photoURL"`
	Metadata    UserMetadata `json:"metadata"`
}

// UserMetadata carries provider-side timestamps for the account.
type UserMetadata struct {
	CreatedAt    time.Time `json:"createdAt"`
	LastSignedIn time.Time `json:"lastSignedInAt"`
}
