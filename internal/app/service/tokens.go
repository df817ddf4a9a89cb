package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/ujwegh/keytoheart/internal/app/config"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/models"
	"github.com/ujwegh/keytoheart/internal/app/phone"
)

const tokenIssuer = "keytoheart"

var errEmptySecret = errors.New("token secret key is empty")

type TokenService interface {
	GenerateToken(subject string, role models.Role) (string, error)
	ParseToken(tokenString string) (*Claims, error)
}

// Claims carry the canonical phone of a customer or the login of an admin as the subject.
type Claims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

type TokenServiceImpl struct {
	secretKey     string
	tokenLifetime time.Duration
}

func NewTokenService(cfg config.AppConfig) *TokenServiceImpl {
	return &TokenServiceImpl{
		secretKey:     cfg.TokenSecretKey,
		tokenLifetime: time.Duration(cfg.TokenLifetimeSec) * time.Second,
	}
}

func (ts TokenServiceImpl) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			if ts.secretKey == "" {
				return nil, errEmptySecret
			}
			return []byte(ts.secretKey), nil
		})
	if err != nil {
		return nil, appErrors.NewWithCode(fmt.Errorf("%w: %w", appErrors.ErrUnauthorized, err), "Invalid token", http.StatusUnauthorized)
	}
	if !token.Valid {
		return nil, appErrors.NewWithCode(appErrors.ErrUnauthorized, "Invalid token", http.StatusUnauthorized)
	}

	switch claims.Role {
	case models.RoleCustomer:
		if err := phone.Validate(claims.Subject); err != nil {
			return nil, appErrors.NewWithCode(appErrors.ErrUnauthorized, "Invalid phone in token", http.StatusUnauthorized)
		}
	case models.RoleAdmin:
		if claims.Subject == "" {
			return nil, appErrors.NewWithCode(appErrors.ErrUnauthorized, "Invalid subject in token", http.StatusUnauthorized)
		}
	default:
		return nil, appErrors.NewWithCode(errors.New("unknown role"), "Invalid role in token", http.StatusUnauthorized)
	}
	return claims, nil
}

func (ts TokenServiceImpl) GenerateToken(subject string, role models.Role) (string, error) {
	if ts.secretKey == "" {
		return "", errEmptySecret
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	})

	tokenString, err := token.SignedString([]byte(ts.secretKey))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
