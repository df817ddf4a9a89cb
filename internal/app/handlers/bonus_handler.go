package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	appContext "github.com/ujwegh/keytoheart/internal/app/context"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/loyalty"
	"github.com/ujwegh/keytoheart/internal/app/models"
	"github.com/ujwegh/keytoheart/internal/app/service"
)

type (
	BonusHandler struct {
		ledgerService  service.LedgerService
		contextTimeout time.Duration
	}

	//easyjson:json
	BonusSummaryDTO struct {
		Phone             string  `json:"phone"`
		Balance           int64   `json:"balance"`
		Tier              string  `json:"tier"`
		CashbackPercent   float64 `json:"cashbackPercent"`
		LifetimeSpend     int64   `json:"lifetimeSpend"`
		NextTier          string  `json:"nextTier,omitempty"`
		NextTierRemaining int64   `json:"nextTierRemaining,omitempty"`
	}
	//easyjson:json
	LedgerEntryDTO struct {
		ID        string    `json:"id"`
		Amount    int64     `json:"amount"`
		Reason    string    `json:"reason"`
		CreatedAt time.Time `json:"createdAt"`
	}
	//easyjson:json
	LedgerEntryDTOSlice []LedgerEntryDTO
	//easyjson:json
	RedeemRequestDTO struct {
		Amount  int64 `json:"amount"`
		OrderID int64 `json:"orderId,omitempty"`
	}
	//easyjson:json
	MutationResponseDTO struct {
		Success    bool  `json:"success"`
		NewBalance int64 `json:"newBalance"`
	}
)

func NewBonusHandler(contextTimeoutSec int, ledgerService service.LedgerService) *BonusHandler {
	return &BonusHandler{
		ledgerService:  ledgerService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// GetBonuses godoc
// @Summary Bonus account of the customer
// @Description Returns the balance, the tier with its cashback percentage and the spend left to the next tier.
// @Tags bonuses
// @Produce json
// @Success 200 {object} BonusSummaryDTO
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No bonus account for this phone yet"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/bonuses [get]
func (bh *BonusHandler) GetBonuses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), bh.contextTimeout)
	defer cancel()

	account, err := bh.ledgerService.GetAccount(ctx, appContext.Phone(r.Context()))
	if err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAccountToSummary(account))
}

// GetHistory godoc
// @Summary Bonus history of the customer
// @Description Ledger entries of the account, newest first.
// @Tags bonuses
// @Produce json
// @Param limit query int false "Maximum number of entries" default(50)
// @Success 200 {array} LedgerEntryDTO
// @Success 204 "No entries"
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No bonus account for this phone yet"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/bonuses/history [get]
func (bh *BonusHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	writeHistory(w, r, bh.ledgerService, bh.contextTimeout, appContext.Phone(r.Context()))
}

// Redeem godoc
// @Summary Spend bonuses
// @Description Debits the given amount of bonus points, optionally labelled with the order they pay for.
// @Tags bonuses
// @Accept json
// @Produce json
// @Param request body RedeemRequestDTO true "Amount to spend"
// @Success 200 {object} MutationResponseDTO
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 402 {object} ErrorResponse "Insufficient balance"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/bonuses/redeem [post]
func (bh *BonusHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), bh.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := RedeemRequestDTO{}
	if err = request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgParseBody, http.StatusBadRequest))
		return
	}

	account, err := bh.ledgerService.Redeem(ctx, appContext.Phone(r.Context()), request.Amount, request.OrderID)
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

func writeHistory(w http.ResponseWriter, r *http.Request, ledgerService service.LedgerService, timeout time.Duration, phone string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			PrepareError(w, appErrors.NewWithCode(err, "Invalid limit", http.StatusBadRequest))
			return
		}
		limit = parsed
	}

	entries, err := ledgerService.GetHistory(ctx, phone, limit)
	if err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, mapLedgerEntries(entries))
}

func mapAccountToSummary(account *models.Account) BonusSummaryDTO {
	summary := BonusSummaryDTO{
		Phone:           account.Phone,
		Balance:         account.Balance,
		Tier:            account.Tier.String(),
		CashbackPercent: loyalty.CashbackPercentFor(account.Tier).InexactFloat64(),
		LifetimeSpend:   account.LifetimeSpend,
	}
	if next, remaining, ok := loyalty.NextTier(account.LifetimeSpend); ok {
		summary.NextTier = next.String()
		summary.NextTierRemaining = remaining
	}
	return summary
}

func mapLedgerEntries(entries []models.LedgerEntry) LedgerEntryDTOSlice {
	responseSlice := make(LedgerEntryDTOSlice, 0, len(entries))
	for _, entry := range entries {
		responseSlice = append(responseSlice, LedgerEntryDTO{
			ID:        entry.ID.String(),
			Amount:    entry.Amount,
			Reason:    entry.Reason,
			CreatedAt: entry.CreatedAt,
		})
	}
	return responseSlice
}
