package repository

import (
	"testing"

	"item-api/internal/models"
)

func TestUserSet_Lookup(t *testing.T) {
	s := NewUserSet([]models.User{
		{ID: 7, Username: "alice", Password: "pw"},
	})

	u, err := s.GetByUsername("alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if u == nil || u.ID != 7 || u.Password != "pw" {
		t.Fatalf("unexpected user: %+v", u)
	}

	u, err = s.GetByUsername("bob")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil for unknown user, got %+v", u)
	}
}

func TestUserSet_DefaultsWhenEmpty(t *testing.T) {
	s := NewUserSet(nil)

	for _, username := range []string{"testuser", "admin"} {
		u, err := s.GetByUsername(username)
		if err != nil {
			t.Fatalf("GetByUsername(%q): %v", username, err)
		}
		if u == nil {
			t.Fatalf("default user %q missing", username)
		}
	}
}
