package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warga-portal-svc/internal/auth"
	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/models/response"
	"warga-portal-svc/internal/service"
	"warga-portal-svc/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "json")
}

// fakeAuthService returns canned results for handler tests
type fakeAuthService struct {
	loginUser  *response.LoginResponse
	loginToken string
	loginErr   error
	createErr  error
	users      []models.User
}

func (f *fakeAuthService) Login(email, password string) (*response.LoginResponse, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.loginUser, f.loginToken, nil
}

func (f *fakeAuthService) CreateUser(user *models.User, plainPassword string) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	user.ID = 1
	return user, nil
}

func (f *fakeAuthService) GetUsers() ([]models.User, error) {
	return f.users, nil
}

func loginBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(LoginRequest{Email: "ketua@rw16.id", Password: "rahasia"})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	svc := &fakeAuthService{
		loginUser: &response.LoginResponse{
			ID:            7,
			Email:         "ketua@rw16.id",
			Role:          auth.RoleKetuaRW,
			DashboardPath: "/dashboard/rw",
		},
		loginToken: "signed-token",
	}
	handler := NewAuthHandler(svc, testLogger())

	router := gin.New()
	router.POST("/api/v1/auth/login", handler.Login)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", loginBody(t))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, auth.SessionCookieName, cookie.Name)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
	// Test mode serves plain http
	assert.False(t, cookie.Secure)
}

func TestLoginErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive account", service.ErrAccountInactive, http.StatusForbidden},
		{"expired subscription", service.ErrSubscriptionExpired, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&fakeAuthService{loginErr: tt.err}, testLogger())

			router := gin.New()
			router.POST("/api/v1/auth/login", handler.Login)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", loginBody(t))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{}, testLogger())

	router := gin.New()
	router.POST("/api/v1/auth/login", handler.Login)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{}, testLogger())

	router := gin.New()
	router.POST("/api/v1/auth/logout", handler.Logout)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
