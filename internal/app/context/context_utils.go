package context

import (
	"context"
	"net/http"

	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/models"
)

type key string

const phoneKey key = "phone"
const roleKey key = "role"

func WithPhone(ctx context.Context, phone string) context.Context {
	return context.WithValue(ctx, phoneKey, phone)
}

func Phone(ctx context.Context) string {
	val := ctx.Value(phoneKey)
	phone, ok := val.(string)
	if !ok {
		return ""
	}
	return phone
}

func WithRole(ctx context.Context, role models.Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

func Role(ctx context.Context) models.Role {
	val := ctx.Value(roleKey)
	role, ok := val.(models.Role)
	if !ok {
		return ""
	}
	return role
}

func GetContextError(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		var errMsg string
		var errCode int

		switch err {
		case context.Canceled:
			errMsg, errCode = "Request canceled", http.StatusInternalServerError
		case context.DeadlineExceeded:
			errMsg, errCode = "Timeout exceeded", http.StatusInternalServerError
		default:
			errMsg, errCode = "Context error", http.StatusInternalServerError
		}
		return appErrors.NewWithCode(err, errMsg, errCode)
	}
	return nil
}
