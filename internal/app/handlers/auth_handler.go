package handlers

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	appContext "github.com/ujwegh/keytoheart/internal/app/context"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/service"
)

type (
	AuthHandler struct {
		authService    service.AuthService
		contextTimeout time.Duration
	}
	//easyjson:json
	CodeRequestDTO struct {
		Phone string `json:"phone"`
	}
	//easyjson:json
	CodeResponseDTO struct {
		Success bool   `json:"success"`
		Phone   string `json:"phone"`
	}
	//easyjson:json
	VerifyRequestDTO struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}
	//easyjson:json
	AdminLoginDTO struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	//easyjson:json
	TokenResponseDTO struct {
		Token string `json:"token"`
	}
)

func NewAuthHandler(contextTimeoutSec int, authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// RequestCode godoc
// @Summary Request a verification call
// @Description The customer receives a call; the last four digits of the calling number are the code.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CodeRequestDTO true "Phone in any common format"
// @Success 202 {object} CodeResponseDTO
// @Failure 400 {object} ErrorResponse "Invalid phone"
// @Failure 429 {object} ErrorResponse "Code requested too often"
// @Failure 502 {object} ErrorResponse "Call provider failure"
// @Router /api/auth/code [post]
func (ah *AuthHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ah.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := CodeRequestDTO{}
	if err = request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgParseBody, http.StatusBadRequest))
		return
	}

	p, err := ah.authService.RequestCode(ctx, request.Phone, clientIP(r))
	if err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, CodeResponseDTO{Success: true, Phone: p})
}

// VerifyCode godoc
// @Summary Sign in with the verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyRequestDTO true "Phone and code"
// @Success 200 {object} TokenResponseDTO
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 401 {object} ErrorResponse "Invalid or expired code"
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/auth/verify [post]
func (ah *AuthHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ah.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := VerifyRequestDTO{}
	if err = request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgParseBody, http.StatusBadRequest))
		return
	}

	token, err := ah.authService.VerifyCode(ctx, request.Phone, request.Code)
	if err != nil {
		PrepareError(w, err)
		return
	}
	ah.writeToken(ctx, w, token)
}

// AdminLogin godoc
// @Summary Administrator login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AdminLoginDTO true "Administrator credentials"
// @Success 200 {object} TokenResponseDTO
// @Failure 400 {object} ErrorResponse "Login and password are required"
// @Failure 401 {object} ErrorResponse "Invalid login or password"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/admin/login [post]
func (ah *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ah.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	loginDto := AdminLoginDTO{}
	if err = loginDto.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgParseBody, http.StatusBadRequest))
		return
	}
	if loginDto.Login == "" || loginDto.Password == "" {
		PrepareError(w, appErrors.NewWithCode(nil, "Login and password are required", http.StatusBadRequest))
		return
	}

	token, err := ah.authService.AuthenticateAdmin(ctx, loginDto.Login, loginDto.Password)
	if err != nil {
		PrepareError(w, err)
		return
	}
	ah.writeToken(ctx, w, token)
}

func (ah *AuthHandler) writeToken(ctx context.Context, w http.ResponseWriter, token string) {
	if err := appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}
	w.Header().Add("Authorization", fmt.Sprintf("Bearer %s", token))
	writeJSON(w, http.StatusOK, TokenResponseDTO{Token: token})
}

// clientIP is forwarded to the call provider for its fraud checks.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
