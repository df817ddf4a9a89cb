package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/ujwegh/keytoheart/internal/app/config"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/logger"
	"github.com/ujwegh/keytoheart/internal/app/metrics"
	"github.com/ujwegh/keytoheart/internal/app/models"
	"github.com/ujwegh/keytoheart/internal/app/phone"
	"github.com/ujwegh/keytoheart/internal/app/service/clients"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	codeKeyPrefix     = "code:"
	cooldownKeyPrefix = "cooldown:"
	attemptsKeyPrefix = "attempts:"
)

type AuthService interface {
	RequestCode(ctx context.Context, rawPhone, clientIP string) (string, error)
	VerifyCode(ctx context.Context, rawPhone, code string) (string, error)
	AuthenticateAdmin(ctx context.Context, login, password string) (string, error)
}

type AuthServiceImpl struct {
	callClient        clients.CallClient
	tokenService      TokenService
	codes             *cache.Cache
	codeTTL           time.Duration
	resendCooldown    time.Duration
	maxAttempts       int
	adminLogin        string
	adminPasswordHash string
}

func NewAuthService(cfg config.AppConfig, callClient clients.CallClient, tokenService TokenService) *AuthServiceImpl {
	codeTTL := time.Duration(cfg.VerificationCodeTTLSec) * time.Second
	return &AuthServiceImpl{
		callClient:        callClient,
		tokenService:      tokenService,
		codes:             cache.New(codeTTL, 2*codeTTL),
		codeTTL:           codeTTL,
		resendCooldown:    time.Duration(cfg.VerificationResendCooldownSec) * time.Second,
		maxAttempts:       cfg.VerificationMaxAttempts,
		adminLogin:        cfg.AdminLogin,
		adminPasswordHash: cfg.AdminPasswordHash,
	}
}

// RequestCode asks the provider to call the phone and remembers the code it dials
// with. It returns the canonical phone the code was issued for.
func (as *AuthServiceImpl) RequestCode(ctx context.Context, rawPhone, clientIP string) (string, error) {
	p, err := phone.Resolve(rawPhone)
	if err != nil {
		return "", err
	}

	if err := as.codes.Add(cooldownKeyPrefix+p, struct{}{}, as.resendCooldown); err != nil {
		metrics.VerificationCodes.WithLabelValues("cooldown").Inc()
		return "", appErrors.NewWithCode(appErrors.ErrCodeCooldown, "Verification code was requested recently, try again later", http.StatusTooManyRequests)
	}

	resp, err := as.callClient.RequestCallCode(ctx, p, clientIP)
	if err != nil {
		as.codes.Delete(cooldownKeyPrefix + p)
		metrics.VerificationCodes.WithLabelValues("provider_error").Inc()
		logger.Log.Error("verification call failed", zap.String("phone", p), zap.Error(err))
		return "", appErrors.NewWithCode(fmt.Errorf("request call code: %w", err), "Unable to place verification call", http.StatusBadGateway)
	}

	as.codes.Set(codeKeyPrefix+p, resp.Code.String(), as.codeTTL)
	as.codes.Set(attemptsKeyPrefix+p, 0, as.codeTTL)
	metrics.VerificationCodes.WithLabelValues("requested").Inc()
	logger.Log.Info("verification call placed", zap.String("phone", p), zap.String("call_id", resp.CallID))
	return p, nil
}

// VerifyCode exchanges a valid code for a customer token. A code is single use and
// is dropped after maxAttempts wrong guesses.
func (as *AuthServiceImpl) VerifyCode(_ context.Context, rawPhone, code string) (string, error) {
	p, err := phone.Resolve(rawPhone)
	if err != nil {
		return "", err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return "", appErrors.NewWithCode(appErrors.ErrInvalidCode, "Verification code is required", http.StatusBadRequest)
	}

	stored, ok := as.codes.Get(codeKeyPrefix + p)
	if !ok {
		metrics.VerificationCodes.WithLabelValues("expired").Inc()
		return "", appErrors.NewWithCode(appErrors.ErrInvalidCode, "Verification code expired or was not requested", http.StatusUnauthorized)
	}

	attempts, err := as.codes.IncrementInt(attemptsKeyPrefix+p, 1)
	if err != nil {
		attempts = 1
		as.codes.Set(attemptsKeyPrefix+p, attempts, as.codeTTL)
	}
	if as.maxAttempts > 0 && attempts > as.maxAttempts {
		as.forget(p)
		metrics.VerificationCodes.WithLabelValues("exhausted").Inc()
		return "", appErrors.NewWithCode(appErrors.ErrInvalidCode, "Too many attempts, request a new code", http.StatusTooManyRequests)
	}

	if subtle.ConstantTimeCompare([]byte(stored.(string)), []byte(code)) != 1 {
		metrics.VerificationCodes.WithLabelValues("rejected").Inc()
		return "", appErrors.NewWithCode(appErrors.ErrInvalidCode, "Invalid verification code", http.StatusUnauthorized)
	}
	as.forget(p)

	token, err := as.tokenService.GenerateToken(p, models.RoleCustomer)
	if err != nil {
		return "", appErrors.NewWithCode(err, "Unable to generate token", http.StatusInternalServerError)
	}
	metrics.VerificationCodes.WithLabelValues("verified").Inc()
	return token, nil
}

func (as *AuthServiceImpl) AuthenticateAdmin(_ context.Context, login, password string) (string, error) {
	if as.adminPasswordHash == "" ||
		subtle.ConstantTimeCompare([]byte(login), []byte(as.adminLogin)) != 1 {
		return "", appErrors.NewWithCode(appErrors.ErrUnauthorized, "Invalid login or password", http.StatusUnauthorized)
	}
	err := bcrypt.CompareHashAndPassword([]byte(as.adminPasswordHash), []byte(password))
	if err != nil {
		return "", appErrors.NewWithCode(err, "Invalid login or password", http.StatusUnauthorized)
	}

	token, err := as.tokenService.GenerateToken(login, models.RoleAdmin)
	if err != nil {
		return "", appErrors.NewWithCode(err, "Unable to generate token", http.StatusInternalServerError)
	}
	return token, nil
}

func (as *AuthServiceImpl) forget(p string) {
	as.codes.Delete(codeKeyPrefix + p)
	as.codes.Delete(attemptsKeyPrefix + p)
}
