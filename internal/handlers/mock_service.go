package handlers

import (
	"context"
	"net/http"

	"item-api/internal/models"
	"item-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	genTokenToken string
	genTokenErr   error
	parseIdentity models.Identity
	parseErr      error

	lastGenUsername string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (models.Identity, error) {
	m.lastParseToken = token
	return m.parseIdentity, m.parseErr
}

type mockItems struct {
	listResp   []models.Item
	getResp    models.Item
	getErr     error
	createResp models.Item
	createErr  error
	updateResp models.Item
	updateErr  error
	deleteErr  error

	lastGetID      int
	lastCreateName string
	lastCreateDesc string
	lastUpdateID   int
	lastUpdateName string
	lastUpdateDesc string
	lastDeleteID   int
	lastActor      models.Identity
	createCalls    int
	deleteCalls    int
}

func (m *mockItems) List(ctx context.Context) []models.Item { return m.listResp }

func (m *mockItems) Get(ctx context.Context, id int) (models.Item, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}

func (m *mockItems) Create(ctx context.Context, actor models.Identity, name, description string) (models.Item, error) {
	m.createCalls++
	m.lastActor = actor
	m.lastCreateName = name
	m.lastCreateDesc = description
	return m.createResp, m.createErr
}

func (m *mockItems) Update(ctx context.Context, actor models.Identity, id int, name, description string) (models.Item, error) {
	m.lastActor = actor
	m.lastUpdateID = id
	m.lastUpdateName = name
	m.lastUpdateDesc = description
	return m.updateResp, m.updateErr
}

func (m *mockItems) Delete(ctx context.Context, actor models.Identity, id int) error {
	m.deleteCalls++
	m.lastActor = actor
	m.lastDeleteID = id
	return m.deleteErr
}

type mockAudit struct {
	resp       []models.AuditEvent
	err        error
	lastFilter service.AuditFilter
}

func (m *mockAudit) List(ctx context.Context, f service.AuditFilter) ([]models.AuditEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
