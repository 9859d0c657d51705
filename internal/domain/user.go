package domain

// User is the identity returned by the hosted auth collaborator.
// ID is the provider's opaque subject identifier; Metadata carries whatever
// user_metadata the provider stored at sign-up (e.g. full_name).
// Credential and session management stay with the provider — this type is
// read-only within the backend.
type User struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
