package router

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujwegh/keytoheart/internal/app/config"
	"github.com/ujwegh/keytoheart/internal/app/handlers"
	"github.com/ujwegh/keytoheart/internal/app/lock"
	middlware "github.com/ujwegh/keytoheart/internal/app/middleware"
	"github.com/ujwegh/keytoheart/internal/app/repository"
	"github.com/ujwegh/keytoheart/internal/app/service"
	"github.com/ujwegh/keytoheart/internal/app/service/clients"
	"github.com/ujwegh/keytoheart/internal/app/testutil"
	"golang.org/x/crypto/bcrypt"
)

type stubCallClient struct {
	code string
}

func (s stubCallClient) RequestCallCode(_ context.Context, _ string, _ string) (*clients.CallCodeResponseDto, error) {
	return &clients.CallCodeResponseDto{Status: "OK", Code: json.Number(s.code), CallID: "stub"}, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := config.AppConfig{
		ContextTimeoutSec:             5,
		TokenSecretKey:                "test-secret",
		TokenLifetimeSec:              3600,
		VerificationCodeTTLSec:        300,
		VerificationResendCooldownSec: 60,
		VerificationMaxAttempts:       3,
		AdminLogin:                    "admin",
		AdminPasswordHash:             string(hash),
	}

	db := testutil.NewSQLiteDB(t)
	locks := lock.NewKeyLock()
	accountRepo := repository.NewAccountRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	ts := service.NewTokenService(cfg)
	ls := service.NewLedgerService(accountRepo, ledgerRepo, locks)
	ors := service.NewOrderService(orderRepo, accountRepo, ls, locks)
	as := service.NewAuthService(cfg, stubCallClient{code: "1234"}, ts)

	r := NewAppRouter(
		handlers.NewAuthHandler(cfg.ContextTimeoutSec, as),
		handlers.NewBonusHandler(cfg.ContextTimeoutSec, ls),
		handlers.NewAdminHandler(cfg.ContextTimeoutSec, ls),
		handlers.NewOrdersHandler(cfg.ContextTimeoutSec, ors),
		middlware.NewAuthMiddleware(ts),
	)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func call(t *testing.T, server *httptest.Server, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func login(t *testing.T, server *httptest.Server) (customer, admin string) {
	t.Helper()
	status, body := call(t, server, http.MethodPost, "/api/auth/code", "", `{"phone":"8 (918) 000-00-01"}`)
	require.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "+79180000001", body["phone"])

	status, body = call(t, server, http.MethodPost, "/api/auth/verify", "", `{"phone":"+79180000001","code":"1234"}`)
	require.Equal(t, http.StatusOK, status)
	customer = body["token"].(string)

	status, body = call(t, server, http.MethodPost, "/api/admin/login", "", `{"login":"admin","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, status)
	admin = body["token"].(string)
	return customer, admin
}

func TestRouter_OrderLifecycle(t *testing.T) {
	server := newTestServer(t)
	customer, admin := login(t, server)

	status, _ := call(t, server, http.MethodGet, "/api/bonuses", customer, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body := call(t, server, http.MethodPost, "/api/orders", customer, `{"total":20000}`)
	require.Equal(t, http.StatusCreated, status)
	orderID := int64(body["id"].(float64))

	status, body = call(t, server, http.MethodPatch, fmt.Sprintf("/api/admin/orders/%d/status", orderID), admin, `{"status":"delivered"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["bonusAccrued"])
	assert.Equal(t, float64(500), body["bonusAmount"])

	status, body = call(t, server, http.MethodGet, "/api/bonuses", customer, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(500), body["balance"])
	assert.Equal(t, "gold", body["tier"])
	assert.Equal(t, 7.5, body["cashbackPercent"])

	status, body = call(t, server, http.MethodPost, "/api/bonuses/redeem", customer, `{"amount":600}`)
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, false, body["success"])

	status, body = call(t, server, http.MethodPost, "/api/bonuses/redeem", customer, `{"amount":200,"orderId":7}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(300), body["newBalance"])

	status, _ = call(t, server, http.MethodDelete, fmt.Sprintf("/api/admin/orders/%d", orderID), admin, "")
	require.Equal(t, http.StatusNoContent, status)

	status, body = call(t, server, http.MethodGet, "/api/admin/bonuses/+79180000001/reconcile", admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["balance"])
	assert.Equal(t, true, body["consistent"])

	status, _ = call(t, server, http.MethodGet, fmt.Sprintf("/api/admin/orders/%d", orderID), admin, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_AdminAdjust(t *testing.T) {
	server := newTestServer(t)
	_, admin := login(t, server)

	status, body := call(t, server, http.MethodPost, "/api/admin/bonuses", admin,
		`{"phone":"+7 918 000 00 02","delta":500,"reason":"welcome gift"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(500), body["newBalance"])

	status, body = call(t, server, http.MethodPost, "/api/admin/bonuses", admin,
		`{"phone":"+79180000002","delta":-600,"reason":"redemption"}`)
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, false, body["success"])

	status, body = call(t, server, http.MethodPost, "/api/admin/bonuses", admin,
		`{"phone":"+79180000002","delta":0,"reason":"noop"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])

	status, body = call(t, server, http.MethodGet, "/api/admin/bonuses/89180000002", admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(500), body["balance"])

	status, _ = call(t, server, http.MethodGet, "/api/admin/bonuses/+79180000003", admin, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_Access(t *testing.T) {
	server := newTestServer(t)
	customer, admin := login(t, server)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{name: "Anonymous Customer Route", method: http.MethodGet, path: "/api/bonuses", wantStatus: http.StatusUnauthorized},
		{name: "Anonymous Admin Route", method: http.MethodGet, path: "/api/admin/orders/1", wantStatus: http.StatusUnauthorized},
		{name: "Customer On Admin Route", method: http.MethodGet, path: "/api/admin/orders/1", token: customer, wantStatus: http.StatusForbidden},
		{name: "Admin On Customer Route", method: http.MethodGet, path: "/api/orders", token: admin, wantStatus: http.StatusForbidden},
		{name: "Customer Without Orders", method: http.MethodGet, path: "/api/orders", token: customer, wantStatus: http.StatusNoContent},
		{name: "Metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := call(t, server, tt.method, tt.path, tt.token, "")
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}
