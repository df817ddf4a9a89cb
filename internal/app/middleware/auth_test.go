package middlware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujwegh/keytoheart/internal/app/config"
	appContext "github.com/ujwegh/keytoheart/internal/app/context"
	"github.com/ujwegh/keytoheart/internal/app/models"
	"github.com/ujwegh/keytoheart/internal/app/service"
)

func TestAuthMiddleware(t *testing.T) {
	ts := service.NewTokenService(config.AppConfig{TokenSecretKey: "test-secret", TokenLifetimeSec: 3600})
	customerToken, err := ts.GenerateToken("+79180000001", models.RoleCustomer)
	require.NoError(t, err)
	adminToken, err := ts.GenerateToken("admin", models.RoleAdmin)
	require.NoError(t, err)
	foreignToken, err := service.NewTokenService(config.AppConfig{TokenSecretKey: "other", TokenLifetimeSec: 3600}).
		GenerateToken("+79180000001", models.RoleCustomer)
	require.NoError(t, err)

	am := NewAuthMiddleware(ts)
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(ResponseLogger)
	r.Group(func(r chi.Router) {
		r.Use(am.Authenticate)
		r.With(RequireRole(models.RoleCustomer)).Get("/customer", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(appContext.Phone(r.Context())))
		})
		r.With(RequireRole(models.RoleAdmin)).Get("/admin", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(appContext.Role(r.Context())))
		})
	})

	tests := []struct {
		name           string
		path           string
		authHeader     string
		wantStatusCode int
		wantBody       string
	}{
		{
			name:           "Customer Reaches Customer Route",
			path:           "/customer",
			authHeader:     "Bearer " + customerToken,
			wantStatusCode: http.StatusOK,
			wantBody:       "+79180000001",
		},
		{
			name:           "Admin Reaches Admin Route",
			path:           "/admin",
			authHeader:     "Bearer " + adminToken,
			wantStatusCode: http.StatusOK,
			wantBody:       "admin",
		},
		{
			name:           "Customer Forbidden On Admin Route",
			path:           "/admin",
			authHeader:     "Bearer " + customerToken,
			wantStatusCode: http.StatusForbidden,
			wantBody:       `{"success":false,"error":"Forbidden","code":403}`,
		},
		{
			name:           "Admin Forbidden On Customer Route",
			path:           "/customer",
			authHeader:     "Bearer " + adminToken,
			wantStatusCode: http.StatusForbidden,
			wantBody:       `{"success":false,"error":"Forbidden","code":403}`,
		},
		{
			name:           "Missing Header",
			path:           "/customer",
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"success":false,"error":"Unauthorized: Missing token","code":401}`,
		},
		{
			name:           "Malformed Header",
			path:           "/customer",
			authHeader:     customerToken,
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"success":false,"error":"Unauthorized: Missing token","code":401}`,
		},
		{
			name:           "Token Signed With Different Key",
			path:           "/customer",
			authHeader:     "Bearer " + foreignToken,
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"success":false,"error":"Unauthorized: Invalid token","code":401}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantStatusCode == http.StatusOK {
				assert.Equal(t, tt.wantBody, w.Body.String())
				return
			}
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
