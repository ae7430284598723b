package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"item-api/internal/models"
	"item-api/internal/repository"
	"item-api/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
)

// Full lifecycle over the real services and stores: login, create, read,
// delete, read again. Only the audit database is mocked.
func TestItemLifecycleFlow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	// one audit insert for the create, one for the delete
	mock.ExpectExec("INSERT INTO audit_events").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO audit_events").WillReturnResult(sqlmock.NewResult(0, 1))

	repos := repository.NewRepository(db, nil)
	services := service.NewService(repos, service.AuthConfig{SigningKey: "test-key", TokenTTL: time.Hour})
	r := newTestRouter(services)

	// login with a seed account
	w := doRequest(r, http.MethodPost, "/login",
		bytes.NewBufferString(`{"username":"testuser","password":"password123"}`), "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	var loginResp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("unmarshal login: %v", err)
	}
	if loginResp.Message != "Login successful" || loginResp.Token == "" {
		t.Fatalf("unexpected login response: %+v", loginResp)
	}

	// create
	w = doRequest(r, http.MethodPost, "/items",
		bytes.NewBufferString(`{"name":"Item A","description":"Desc"}`), loginResp.Token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
	}
	var createResp struct {
		Message string      `json:"message"`
		Item    models.Item `json:"item"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &createResp)
	if createResp.Item.ID == 0 {
		t.Fatalf("created item has no id: %+v", createResp)
	}
	// two seed items already occupy ids 1 and 2
	if createResp.Item.ID != 3 {
		t.Fatalf("expected id 3 after seeds, got %d", createResp.Item.ID)
	}

	itemPath := fmt.Sprintf("/items/%d", createResp.Item.ID)

	// read back
	w = doRequest(r, http.MethodGet, itemPath, nil, loginResp.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}
	var got models.Item
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Name != "Item A" || got.Description != "Desc" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	// delete
	w = doRequest(r, http.MethodDelete, itemPath, nil, loginResp.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status=%d, body=%s", w.Code, w.Body.String())
	}

	// gone now
	w = doRequest(r, http.MethodGet, itemPath, nil, loginResp.Token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("audit expectations: %v", err)
	}
}

func TestLifecycleFlow_UnauthenticatedCreateRejected(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repos := repository.NewRepository(db, nil)
	services := service.NewService(repos, service.AuthConfig{SigningKey: "test-key"})
	r := newTestRouter(services)

	// perfectly valid body, no Authorization header
	w := doRequest(r, http.MethodPost, "/items",
		bytes.NewBufferString(`{"name":"Item A","description":"Desc"}`), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (body=%s)", w.Code, w.Body.String())
	}
	var out struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Message != "Authentication failed: No token provided" {
		t.Fatalf("message: %q", out.Message)
	}

	// the collection is untouched
	if got := len(repos.Items.List()); got != 2 {
		t.Fatalf("collection changed: %d items", got)
	}
}
