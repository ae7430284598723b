package models

// User is a seeded account. The user set is fixed at startup; passwords are
// stored and compared as-is, matching the reference deployment.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // never serialized
}

// Identity is the token-embedded view of a user, trusted once the token
// signature checks out. No user-set lookup happens on verification.
type Identity struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}
