package handlers

import (
	"context"
	"net/http"

	"roomsign/internal/models"
	"roomsign/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockDisplay struct {
	payload models.DisplayPayload
	err     error

	lastDeviceID int
	lastOnDate   string
	calls        int
}

func (m *mockDisplay) GetDisplayData(ctx context.Context, deviceID int, onDate string) (models.DisplayPayload, error) {
	m.calls++
	m.lastDeviceID = deviceID
	m.lastOnDate = onDate
	return m.payload, m.err
}

type mockResources struct {
	list      []models.Resource
	listErr   error
	getRes    models.Resource
	getErr    error
	createID  int
	createErr error
	updateErr error
	deleteErr error

	lastGetID    int
	lastCreated  models.Resource
	lastUpdated  models.Resource
	lastDeleteID int
}

func (m *mockResources) List(ctx context.Context) ([]models.Resource, error) {
	return m.list, m.listErr
}
func (m *mockResources) Get(ctx context.Context, id int) (models.Resource, error) {
	m.lastGetID = id
	return m.getRes, m.getErr
}
func (m *mockResources) Create(ctx context.Context, r models.Resource) (int, error) {
	m.lastCreated = r
	return m.createID, m.createErr
}
func (m *mockResources) Update(ctx context.Context, r models.Resource) error {
	m.lastUpdated = r
	return m.updateErr
}
func (m *mockResources) Delete(ctx context.Context, id int) error {
	m.lastDeleteID = id
	return m.deleteErr
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
