package profile

import "time"

// Collection is the document collection holding user profile records.
const Collection = "users"

// Wire field names are fixed by documents the web client already reads,
// including the historic "lastModifedDate" spelling.
const (
	fieldEmail           = "email"
	fieldIsAuthenticated = "isAuthenticated"
	fieldName            = "name"
	fieldPhotoURL        = "photoUrl"
	fieldCreationDate    = "creationDate"
	fieldIsActive        = "isActive"

	// FieldLastModified is exported so the update trigger can inspect the
	// before/after snapshots for it.
	FieldLastModified = "lastModifedDate"
)

// Identity is the slice of an identity-provider user record the profile
// cares about. Any field but UID may be empty.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// Record is a stored profile document.
type Record struct {
	Email           string    `firestore:"email" json:"email"`
	IsAuthenticated bool      `firestore:"isAuthenticated" json:"isAuthenticated"`
	Name            string    `firestore:"name,omitempty" json:"name,omitempty"`
	PhotoURL        string    `firestore:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	CreationDate    time.Time `firestore:"creationDate,omitempty" json:"creationDate,omitempty"`
	IsActive        bool      `firestore:"isActive" json:"isActive"`
	LastModified    time.Time `firestore:"lastModifedDate,omitempty" json:"lastModifedDate,omitempty"`
}

// ModifiedState captures whether a snapshot carried the last-modified field
// and, if so, its value.
type ModifiedState struct {
	Present bool
	At      time.Time
}
