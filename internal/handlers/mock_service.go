package handlers

import (
	"context"

	"gallery_users/internal/models"
	"gallery_users/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
	parseClaim    models.AuthClaim
	parseErr      error

	lastRegisterUsername string
	lastRegisterPassword string
	lastLoginUsername    string
	lastParseToken       string
}

func (m *mockAuth) Register(_ context.Context, username, password, passwordConfirm string) (string, error) {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerToken, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, username, password string) (string, error) {
	m.lastLoginUsername = username
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (models.AuthClaim, error) {
	m.lastParseToken = token
	return m.parseClaim, m.parseErr
}

type mockCollections struct {
	listResp   []string
	listErr    error
	addResp    []string
	addErr     error
	removeResp []string
	removeErr  error

	lastUserID string
	lastKind   string
	lastItemID string
	addCalls   int
}

func (m *mockCollections) List(_ context.Context, userID, kind string) ([]string, error) {
	m.lastUserID = userID
	m.lastKind = kind
	return m.listResp, m.listErr
}

func (m *mockCollections) Add(_ context.Context, userID, kind, itemID string) ([]string, error) {
	m.addCalls++
	m.lastUserID = userID
	m.lastKind = kind
	m.lastItemID = itemID
	return m.addResp, m.addErr
}

func (m *mockCollections) Remove(_ context.Context, userID, kind, itemID string) ([]string, error) {
	m.lastUserID = userID
	m.lastKind = kind
	m.lastItemID = itemID
	return m.removeResp, m.removeErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
