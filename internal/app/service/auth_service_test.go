package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ujwegh/keytoheart/internal/app/config"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/models"
	"github.com/ujwegh/keytoheart/internal/app/service/clients"
	"golang.org/x/crypto/bcrypt"
)

type MockCallClient struct {
	mock.Mock
}

func (m *MockCallClient) RequestCallCode(ctx context.Context, phone string, clientIP string) (*clients.CallCodeResponseDto, error) {
	args := m.Called(ctx, phone, clientIP)
	return args.Get(0).(*clients.CallCodeResponseDto), args.Error(1)
}

func newAuthService(t *testing.T, callClient clients.CallClient) (*AuthServiceImpl, TokenService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	ts := TokenServiceImpl{secretKey: "test-secret", tokenLifetime: time.Hour}
	cfg := config.AppConfig{
		VerificationCodeTTLSec:        300,
		VerificationResendCooldownSec: 60,
		VerificationMaxAttempts:       3,
		AdminLogin:                    "admin",
		AdminPasswordHash:             string(hash),
	}
	return NewAuthService(cfg, callClient, ts), ts
}

func codeResponse(code string) *clients.CallCodeResponseDto {
	return &clients.CallCodeResponseDto{Status: "OK", Code: json.Number(code), CallID: "call-1"}
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var rce appErrors.ResponseCodeError
	require.True(t, errors.As(err, &rce), "expected response code error, got %v", err)
	assert.Equal(t, code, rce.Code())
}

func TestAuthServiceImpl_RequestCode(t *testing.T) {
	t.Run("Normalizes Phone And Stores Code", func(t *testing.T) {
		cc := &MockCallClient{}
		cc.On("RequestCallCode", mock.Anything, testPhone, "10.0.0.1").Return(codeResponse("1234"), nil).Once()
		as, _ := newAuthService(t, cc)

		p, err := as.RequestCode(context.Background(), "8 (918) 000-00-01", "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, testPhone, p)
		stored, ok := as.codes.Get(codeKeyPrefix + testPhone)
		require.True(t, ok)
		assert.Equal(t, "1234", stored)
		cc.AssertExpectations(t)
	})

	t.Run("Cooldown", func(t *testing.T) {
		cc := &MockCallClient{}
		cc.On("RequestCallCode", mock.Anything, testPhone, "").Return(codeResponse("1234"), nil).Once()
		as, _ := newAuthService(t, cc)

		_, err := as.RequestCode(context.Background(), testPhone, "")
		require.NoError(t, err)
		_, err = as.RequestCode(context.Background(), testPhone, "")
		requireCode(t, err, http.StatusTooManyRequests)
		assert.ErrorIs(t, err, appErrors.ErrCodeCooldown)
		cc.AssertNumberOfCalls(t, "RequestCallCode", 1)
	})

	t.Run("Provider Failure Releases Cooldown", func(t *testing.T) {
		cc := &MockCallClient{}
		cc.On("RequestCallCode", mock.Anything, testPhone, "").
			Return((*clients.CallCodeResponseDto)(nil), clients.ErrCallRejected).Once()
		cc.On("RequestCallCode", mock.Anything, testPhone, "").Return(codeResponse("4321"), nil).Once()
		as, _ := newAuthService(t, cc)

		_, err := as.RequestCode(context.Background(), testPhone, "")
		requireCode(t, err, http.StatusBadGateway)
		assert.ErrorIs(t, err, clients.ErrCallRejected)

		_, err = as.RequestCode(context.Background(), testPhone, "")
		require.NoError(t, err)
		cc.AssertExpectations(t)
	})

	t.Run("Invalid Phone", func(t *testing.T) {
		cc := &MockCallClient{}
		as, _ := newAuthService(t, cc)

		_, err := as.RequestCode(context.Background(), "12345", "")
		requireCode(t, err, http.StatusBadRequest)
		assert.ErrorIs(t, err, appErrors.ErrInvalidPhone)
		cc.AssertNotCalled(t, "RequestCallCode", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthServiceImpl_VerifyCode(t *testing.T) {
	requested := func(t *testing.T) (*AuthServiceImpl, TokenService) {
		cc := &MockCallClient{}
		cc.On("RequestCallCode", mock.Anything, testPhone, "").Return(codeResponse("1234"), nil)
		as, ts := newAuthService(t, cc)
		_, err := as.RequestCode(context.Background(), testPhone, "")
		require.NoError(t, err)
		return as, ts
	}

	t.Run("Valid Code Issues Customer Token", func(t *testing.T) {
		as, ts := requested(t)

		token, err := as.VerifyCode(context.Background(), "+7 918 000 00 01", " 1234 ")
		require.NoError(t, err)
		claims, err := ts.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, testPhone, claims.Subject)
		assert.Equal(t, models.RoleCustomer, claims.Role)

		_, err = as.VerifyCode(context.Background(), testPhone, "1234")
		requireCode(t, err, http.StatusUnauthorized)
	})

	t.Run("Wrong Code", func(t *testing.T) {
		as, _ := requested(t)

		_, err := as.VerifyCode(context.Background(), testPhone, "0000")
		requireCode(t, err, http.StatusUnauthorized)
		assert.ErrorIs(t, err, appErrors.ErrInvalidCode)

		_, err = as.VerifyCode(context.Background(), testPhone, "1234")
		require.NoError(t, err)
	})

	t.Run("Attempts Exhausted", func(t *testing.T) {
		as, _ := requested(t)

		for i := 0; i < 3; i++ {
			_, err := as.VerifyCode(context.Background(), testPhone, "0000")
			requireCode(t, err, http.StatusUnauthorized)
		}
		_, err := as.VerifyCode(context.Background(), testPhone, "1234")
		requireCode(t, err, http.StatusTooManyRequests)

		_, err = as.VerifyCode(context.Background(), testPhone, "1234")
		requireCode(t, err, http.StatusUnauthorized)
	})

	t.Run("Not Requested", func(t *testing.T) {
		as, _ := newAuthService(t, &MockCallClient{})

		_, err := as.VerifyCode(context.Background(), testPhone, "1234")
		requireCode(t, err, http.StatusUnauthorized)
	})

	t.Run("Empty Code", func(t *testing.T) {
		as, _ := requested(t)

		_, err := as.VerifyCode(context.Background(), testPhone, "  ")
		requireCode(t, err, http.StatusBadRequest)
	})
}

func TestAuthServiceImpl_AuthenticateAdmin(t *testing.T) {
	as, ts := newAuthService(t, &MockCallClient{})

	tests := []struct {
		name     string
		login    string
		password string
		wantErr  bool
	}{
		{name: "Valid Credentials", login: "admin", password: "s3cret"},
		{name: "Wrong Password", login: "admin", password: "secret", wantErr: true},
		{name: "Wrong Login", login: "root", password: "s3cret", wantErr: true},
		{name: "Empty Credentials", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := as.AuthenticateAdmin(context.Background(), tt.login, tt.password)
			if tt.wantErr {
				requireCode(t, err, http.StatusUnauthorized)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			claims, err := ts.ParseToken(token)
			require.NoError(t, err)
			assert.Equal(t, models.RoleAdmin, claims.Role)
			assert.Equal(t, "admin", claims.Subject)
		})
	}

	t.Run("No Password Hash Configured", func(t *testing.T) {
		as.adminPasswordHash = ""
		_, err := as.AuthenticateAdmin(context.Background(), "admin", "")
		requireCode(t, err, http.StatusUnauthorized)
	})
}
