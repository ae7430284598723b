package repository

import "item-api/internal/models"

// UserSet holds the static accounts seeded at startup. It is read-only after
// construction, so lookups need no locking.
type UserSet struct {
	byUsername map[string]models.User
}

var _ Users = (*UserSet)(nil)

// DefaultUsers mirrors the reference deployment's seed accounts.
func DefaultUsers() []models.User {
	return []models.User{
		{ID: 1, Username: "testuser", Password: "password123"},
		{ID: 2, Username: "admin", Password: "adminpassword"},
	}
}

func NewUserSet(users []models.User) *UserSet {
	if len(users) == 0 {
		users = DefaultUsers()
	}
	m := make(map[string]models.User, len(users))
	for _, u := range users {
		m[u.Username] = u // usernames are unique; last write wins on bad seed data
	}
	return &UserSet{byUsername: m}
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (s *UserSet) GetByUsername(username string) (*models.User, error) {
	u, ok := s.byUsername[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
