package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	appContext "github.com/ujwegh/keytoheart/internal/app/context"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/service"
)

type (
	AdminHandler struct {
		ledgerService  service.LedgerService
		contextTimeout time.Duration
	}

	// AdjustRequestDTO accepts the change either as delta or, for older clients, as amount.
	//easyjson:json
	AdjustRequestDTO struct {
		Phone  string `json:"phone"`
		Delta  int64  `json:"delta"`
		Amount int64  `json:"amount"`
		Reason string `json:"reason"`
	}
	//easyjson:json
	AccountDTO struct {
		Phone         string    `json:"phone"`
		Balance       int64     `json:"balance"`
		Tier          string    `json:"tier"`
		LifetimeSpend int64     `json:"lifetimeSpend"`
		UpdatedAt     time.Time `json:"updatedAt"`
	}
	//easyjson:json
	ReconciliationDTO struct {
		Phone      string `json:"phone"`
		Balance    int64  `json:"balance"`
		LedgerSum  int64  `json:"ledgerSum"`
		Consistent bool   `json:"consistent"`
	}
)

func NewAdminHandler(contextTimeoutSec int, ledgerService service.LedgerService) *AdminHandler {
	return &AdminHandler{
		ledgerService:  ledgerService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// Adjust godoc
// @Summary Manual bonus adjustment
// @Description Credits (positive delta) or debits (negative delta) the account of the phone and records the reason in its history.
// @Description The account is created on first use. A debit that would make the balance negative is rejected.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdjustRequestDTO true "Adjustment"
// @Success 200 {object} MutationResponseDTO
// @Failure 400 {object} ErrorResponse "Invalid phone, zero amount or missing reason"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 402 {object} ErrorResponse "Insufficient balance"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/bonuses [post]
func (ah *AdminHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ah.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := AdjustRequestDTO{}
	if err = request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgParseBody, http.StatusBadRequest))
		return
	}
	delta := request.Delta
	if delta == 0 {
		delta = request.Amount
	}

	account, err := ah.ledgerService.ApplyDelta(ctx, request.Phone, delta, request.Reason)
	if err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MutationResponseDTO{Success: true, NewBalance: account.Balance})
}

// GetAccount godoc
// @Summary Bonus account by phone
// @Tags admin
// @Produce json
// @Param phone path string true "Phone in any common format"
// @Success 200 {object} AccountDTO
// @Failure 400 {object} ErrorResponse "Invalid phone"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/bonuses/{phone} [get]
func (ah *AdminHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ah.contextTimeout)
	defer cancel()

	account, err := ah.ledgerService.GetAccount(ctx, chi.URLParam(r, "phone"))
	if err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AccountDTO{
		Phone:         account.Phone,
		Balance:       account.Balance,
		Tier:          account.Tier.String(),
		LifetimeSpend: account.LifetimeSpend,
		UpdatedAt:     account.UpdatedAt,
	})
}

// GetHistory godoc
// @Summary Bonus history by phone
// @Tags admin
// @Produce json
// @Param phone path string true "Phone in any common format"
// @Param limit query int false "Maximum number of entries" default(50)
// @Success 200 {array} LedgerEntryDTO
// @Success 204 "No entries"
// @Failure 400 {object} ErrorResponse "Invalid phone or limit"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/bonuses/{phone}/history [get]
func (ah *AdminHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	writeHistory(w, r, ah.ledgerService, ah.contextTimeout, chi.URLParam(r, "phone"))
}

// Reconcile godoc
// @Summary Balance audit
// @Description Compares the stored balance with the sum of the account's history.
// @Tags admin
// @Produce json
// @Param phone path string true "Phone in any common format"
// @Success 200 {object} ReconciliationDTO
// @Failure 400 {object} ErrorResponse "Invalid phone"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/bonuses/{phone}/reconcile [get]
func (ah *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ah.contextTimeout)
	defer cancel()

	rec, err := ah.ledgerService.Reconcile(ctx, chi.URLParam(r, "phone"))
	if err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ReconciliationDTO{
		Phone:      rec.Phone,
		Balance:    rec.Balance,
		LedgerSum:  rec.LedgerSum,
		Consistent: rec.Consistent(),
	})
}
