package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RequestCode(ctx context.Context, rawPhone, clientIP string) (string, error) {
	args := m.Called(ctx, rawPhone, clientIP)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) VerifyCode(ctx context.Context, rawPhone, code string) (string, error) {
	args := m.Called(ctx, rawPhone, code)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) AuthenticateAdmin(ctx context.Context, login, password string) (string, error) {
	args := m.Called(ctx, login, password)
	return args.String(0), args.Error(1)
}

func TestAuthHandler_RequestCode(t *testing.T) {
	tests := []struct {
		name             string
		requestBody      string
		mockAuthService  func() *MockAuthService
		wantStatusCode   int
		wantResponseBody string
	}{
		{
			name:        "Call Placed",
			requestBody: `{"phone":"8 918 000 00 01"}`,
			mockAuthService: func() *MockAuthService {
				m := &MockAuthService{}
				m.On("RequestCode", mock.Anything, "8 918 000 00 01", "192.0.2.1").Return(testPhone, nil)
				return m
			},
			wantStatusCode:   http.StatusAccepted,
			wantResponseBody: `{"success":true,"phone":"+79180000001"}`,
		},
		{
			name:        "Cooldown",
			requestBody: `{"phone":"+79180000001"}`,
			mockAuthService: func() *MockAuthService {
				m := &MockAuthService{}
				err := appErrors.NewWithCode(appErrors.ErrCodeCooldown, "Verification code was requested recently, try again later", http.StatusTooManyRequests)
				m.On("RequestCode", mock.Anything, testPhone, "192.0.2.1").Return("", err)
				return m
			},
			wantStatusCode:   http.StatusTooManyRequests,
			wantResponseBody: `{"success":false,"error":"Verification code was requested recently, try again later","code":429}`,
		},
		{
			name:        "Malformed Body",
			requestBody: `{"phone":`,
			mockAuthService: func() *MockAuthService {
				return &MockAuthService{}
			},
			wantStatusCode:   http.StatusBadRequest,
			wantResponseBody: `{"success":false,"error":"Unable to parse body","code":400}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// httptest.NewRequest sets RemoteAddr to 192.0.2.1:1234
			req := httptest.NewRequest(http.MethodPost, "/api/auth/code", strings.NewReader(tt.requestBody))
			w := httptest.NewRecorder()
			m := tt.mockAuthService()
			ah := &AuthHandler{authService: m, contextTimeout: 5 * time.Second}

			ah.RequestCode(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
			m.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_VerifyCode(t *testing.T) {
	tests := []struct {
		name             string
		requestBody      string
		mockAuthService  func() *MockAuthService
		wantStatusCode   int
		wantResponseBody string
		wantAuthHeader   string
	}{
		{
			name:        "Valid Code",
			requestBody: `{"phone":"+79180000001","code":"1234"}`,
			mockAuthService: func() *MockAuthService {
				m := &MockAuthService{}
				m.On("VerifyCode", mock.Anything, testPhone, "1234").Return("customer-token", nil)
				return m
			},
			wantStatusCode:   http.StatusOK,
			wantResponseBody: `{"token":"customer-token"}`,
			wantAuthHeader:   "Bearer customer-token",
		},
		{
			name:        "Invalid Code",
			requestBody: `{"phone":"+79180000001","code":"0000"}`,
			mockAuthService: func() *MockAuthService {
				m := &MockAuthService{}
				err := appErrors.NewWithCode(appErrors.ErrInvalidCode, "Invalid verification code", http.StatusUnauthorized)
				m.On("VerifyCode", mock.Anything, testPhone, "0000").Return("", err)
				return m
			},
			wantStatusCode:   http.StatusUnauthorized,
			wantResponseBody: `{"success":false,"error":"Invalid verification code","code":401}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", strings.NewReader(tt.requestBody))
			w := httptest.NewRecorder()
			ah := &AuthHandler{authService: tt.mockAuthService(), contextTimeout: 5 * time.Second}

			ah.VerifyCode(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
			assert.Equal(t, tt.wantAuthHeader, w.Header().Get("Authorization"))
		})
	}
}

func TestAuthHandler_AdminLogin(t *testing.T) {
	tests := []struct {
		name             string
		requestBody      string
		mockAuthService  func() *MockAuthService
		contextTimeout   time.Duration
		wantStatusCode   int
		wantResponseBody string
	}{
		{
			name:        "Valid Credentials",
			requestBody: `{"login":"admin","password":"s3cret"}`,
			mockAuthService: func() *MockAuthService {
				m := &MockAuthService{}
				m.On("AuthenticateAdmin", mock.Anything, "admin", "s3cret").Return("admin-token", nil)
				return m
			},
			contextTimeout:   5 * time.Second,
			wantStatusCode:   http.StatusOK,
			wantResponseBody: `{"token":"admin-token"}`,
		},
		{
			name:        "Missing Password",
			requestBody: `{"login":"admin"}`,
			mockAuthService: func() *MockAuthService {
				return &MockAuthService{}
			},
			contextTimeout:   5 * time.Second,
			wantStatusCode:   http.StatusBadRequest,
			wantResponseBody: `{"success":false,"error":"Login and password are required","code":400}`,
		},
		{
			name:        "Invalid Credentials",
			requestBody: `{"login":"admin","password":"wrong"}`,
			mockAuthService: func() *MockAuthService {
				m := &MockAuthService{}
				err := appErrors.NewWithCode(appErrors.ErrUnauthorized, "Invalid login or password", http.StatusUnauthorized)
				m.On("AuthenticateAdmin", mock.Anything, "admin", "wrong").Return("", err)
				return m
			},
			contextTimeout:   5 * time.Second,
			wantStatusCode:   http.StatusUnauthorized,
			wantResponseBody: `{"success":false,"error":"Invalid login or password","code":401}`,
		},
		{
			name:        "Context Timeout",
			requestBody: `{"login":"admin","password":"s3cret"}`,
			mockAuthService: func() *MockAuthService {
				m := &MockAuthService{}
				m.On("AuthenticateAdmin", mock.Anything, "admin", "s3cret").Return("admin-token", nil)
				return m
			},
			contextTimeout:   0,
			wantStatusCode:   http.StatusInternalServerError,
			wantResponseBody: `{"success":false,"error":"Timeout exceeded","code":500}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(tt.requestBody))
			w := httptest.NewRecorder()
			ah := &AuthHandler{authService: tt.mockAuthService(), contextTimeout: tt.contextTimeout}

			ah.AdminLogin(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
		})
	}
}
