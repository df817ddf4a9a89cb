package middlware

import (
	"net/http"
	"strings"

	appContext "github.com/ujwegh/keytoheart/internal/app/context"
	"github.com/ujwegh/keytoheart/internal/app/handlers"
	"github.com/ujwegh/keytoheart/internal/app/logger"
	"github.com/ujwegh/keytoheart/internal/app/models"
	"github.com/ujwegh/keytoheart/internal/app/service"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

type AuthMiddleware struct {
	tokenService service.TokenService
}

func NewAuthMiddleware(tokenService service.TokenService) AuthMiddleware {
	return AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate puts the role of the bearer and, for customers, their phone into the
// request context.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			handlers.WriteJSONErrorResponse(w, "Unauthorized: Missing token", http.StatusUnauthorized)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))

		claims, err := am.tokenService.ParseToken(token)
		if err != nil {
			logger.Log.Debug("failed to parse token", zap.Error(err))
			handlers.WriteJSONErrorResponse(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := appContext.WithRole(r.Context(), claims.Role)
		if claims.Role == models.RoleCustomer {
			ctx = appContext.WithPhone(ctx, claims.Subject)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole must run after Authenticate.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if appContext.Role(r.Context()) != role {
				handlers.WriteJSONErrorResponse(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
