package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	svs LedgerServicer
}

func NewLedgerHandler(svs LedgerServicer) *LedgerHandler {
	return &LedgerHandler{svs: svs}
}

type BalanceResponse struct {
	AccountID int64 `json:"account_id"`
	Balance   int64 `json:"balance"`
}

// Balance GET RouteGroup + BalanceRoute.
func (h *LedgerHandler) Balance(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.svs.Balance(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{AccountID: account.ID, Balance: account.Balance})
}

type PostingsQuery struct {
	Limit uint `binding:"omitempty,min=1,max=1000" form:"limit"`
}

type PostingResponse struct {
	ID            int64     `json:"id"`
	Amount        int64     `json:"amount"`
	Label         string    `json:"label"`
	IsPenalty     bool      `json:"is_penalty"`
	PenaltyAmount int64     `json:"penalty_amount"`
	Reason        string    `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func newPostingResponse(p *domain.Posting) PostingResponse {
	return PostingResponse{
		ID:            p.ID,
		Amount:        p.Amount,
		Label:         p.Label,
		IsPenalty:     p.IsPenalty,
		PenaltyAmount: p.PenaltyAmount,
		Reason:        p.Reason,
		CreatedAt:     p.CreatedAt,
	}
}

// Postings GET RouteGroup + PostingsRoute. История начислений, новые первыми.
func (h *LedgerHandler) Postings(c *gin.Context) {
	var query PostingsQuery
	if !bindQuery(c, &query) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	postings, err := h.svs.Postings(ctx, getUserIDFromContext(c), query.Limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]PostingResponse, len(postings))
	for i := range postings {
		response[i] = newPostingResponse(&postings[i])
	}
	c.JSON(http.StatusOK, response)
}

type WithdrawalResponse struct {
	RequestID int64     `json:"request_id"`
	Kind      string    `json:"kind"`
	Amount    int64     `json:"amount"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

func newWithdrawalResponse(w *domain.WithdrawalRequest) WithdrawalResponse {
	return WithdrawalResponse{
		RequestID: w.ID,
		Kind:      string(w.Kind),
		Amount:    w.Amount,
		State:     string(w.State),
		CreatedAt: w.CreatedAt,
	}
}

// Withdrawals GET RouteGroup + WithdrawalsRoute.
func (h *LedgerHandler) Withdrawals(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawals, err := h.svs.Withdrawals(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]WithdrawalResponse, len(withdrawals))
	for i := range withdrawals {
		response[i] = newWithdrawalResponse(&withdrawals[i])
	}
	c.JSON(http.StatusOK, response)
}

type IDURIParams struct {
	ID int64 `binding:"required,min=1" uri:"id"`
}

type ReconcileResponse struct {
	AccountID      int64 `json:"account_id"`
	Balance        int64 `json:"balance"`
	PostingsTotal  int64 `json:"postings_total"`
	WithdrawnTotal int64 `json:"withdrawn_total"`
	PenaltiesTotal int64 `json:"penalties_total"`
	Expected       int64 `json:"expected"`
	Consistent     bool  `json:"consistent"`
}

// Reconcile GET RouteGroup + AdminReconcileRoute. Сверка баланса счета с историей операций.
func (h *LedgerHandler) Reconcile(c *gin.Context) {
	var params IDURIParams
	if !bindURI(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.svs.Reconcile(ctx, params.ID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ReconcileResponse{
		AccountID:      report.AccountID,
		Balance:        report.Balance,
		PostingsTotal:  report.PostingsTotal,
		WithdrawnTotal: report.WithdrawnTotal,
		PenaltiesTotal: report.PenaltiesTotal,
		Expected:       report.Expected,
		Consistent:     report.Consistent,
	})
}
