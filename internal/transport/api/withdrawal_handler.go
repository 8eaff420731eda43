package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/service"
	"github.com/gin-gonic/gin"
)

type WithdrawalHandler struct {
	svs WithdrawalServicer
}

func NewWithdrawalHandler(svs WithdrawalServicer) *WithdrawalHandler {
	return &WithdrawalHandler{svs: svs}
}

type PayMeParams struct {
	Amount   int64  `binding:"required,gt=0"                   json:"amount"`
	Card     string `binding:"required,numeric,min=12,max=19" json:"card"`
	CardName string `binding:"omitempty,max_bytes=128"        json:"card_name"`
}

type PayMeResponse struct {
	RequestID         int64  `json:"request_id"`
	State             string `json:"state"`
	AlreadyProcessing bool   `json:"already_processing"`
}

// PayMe POST RouteGroup + PayMeRoute. Заявка пользователя на вывод средств, не чаще раза в сутки.
func (h *WithdrawalHandler) PayMe(c *gin.Context) {
	var params PayMeParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.svs.RequestPayMe(ctx, service.PayMeArgs{
		UserID:   getUserIDFromContext(c),
		Amount:   params.Amount,
		Card:     params.Card,
		CardName: params.CardName,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if result.AlreadyProcessing {
		status = http.StatusOK
	}
	c.JSON(status, PayMeResponse{
		RequestID:         result.Request.ID,
		State:             string(result.Request.State),
		AlreadyProcessing: result.AlreadyProcessing,
	})
}

type PayOutParams struct {
	UserID   int64  `binding:"required,min=1"                  json:"user_id"`
	Amount   int64  `binding:"required,gt=0"                   json:"amount"`
	Card     string `binding:"omitempty,numeric,min=12,max=19" json:"card"`
	CardName string `binding:"omitempty,max_bytes=128"         json:"card_name"`
}

type WithdrawalStateResponse struct {
	RequestID int64  `json:"request_id"`
	State     string `json:"state"`
}

func newWithdrawalStateResponse(w *domain.WithdrawalRequest) WithdrawalStateResponse {
	return WithdrawalStateResponse{RequestID: w.ID, State: string(w.State)}
}

// PayOut POST RouteGroup + AdminPayOutRoute. Выплата администратором, сразу в состоянии paid.
func (h *WithdrawalHandler) PayOut(c *gin.Context) {
	var params PayOutParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, err := h.svs.PayOut(ctx, service.PayOutArgs{
		AdminUserID: getUserIDFromContext(c),
		UserID:      params.UserID,
		Amount:      params.Amount,
		Card:        params.Card,
		CardName:    params.CardName,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newWithdrawalStateResponse(request))
}

// MarkPaid PATCH RouteGroup + AdminWithdrawalPaidRoute.
func (h *WithdrawalHandler) MarkPaid(c *gin.Context) {
	h.closeRequest(c, h.svs.MarkPaid)
}

// Reject PATCH RouteGroup + AdminWithdrawalRejectRoute. Сумма возвращается на счет.
func (h *WithdrawalHandler) Reject(c *gin.Context) {
	h.closeRequest(c, h.svs.Reject)
}

func (h *WithdrawalHandler) closeRequest(
	c *gin.Context,
	fn func(context.Context, int64, int64) (*domain.WithdrawalRequest, error),
) {
	var params IDURIParams
	if !bindURI(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, err := fn(ctx, params.ID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWithdrawalStateResponse(request))
}

type CreateApplicationParams struct {
	SimModule       string `binding:"required,max_bytes=64"     json:"sim_module"`
	Amount          int64  `binding:"required,gt=0"             json:"amount"`
	PaymentType     string `binding:"required,oneof=cash card"  json:"payment_type"`
	ContainersCount int64  `binding:"omitempty,min=0"           json:"containers_count"`
	Comment         string `binding:"omitempty,max_bytes=1024"  json:"comment"`
}

type ApplicationResponse struct {
	ID                int64     `json:"id"`
	CollectionPointID int64     `json:"collection_point_id"`
	Amount            int64     `json:"amount"`
	PaymentType       string    `json:"payment_type"`
	ContainersCount   int64     `json:"containers_count"`
	Status            string    `json:"status"`
	RejectedReason    string    `json:"rejected_reason,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func newApplicationResponse(a *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                a.ID,
		CollectionPointID: a.CollectionPointID,
		Amount:            a.Amount,
		PaymentType:       string(a.PaymentType),
		ContainersCount:   a.ContainersCount,
		Status:            string(a.Status),
		RejectedReason:    a.RejectedReason,
		CreatedAt:         a.CreatedAt,
	}
}

// CreateApplication POST RouteGroup + ApplicationsRoute. Заявка агента на аванс под точку сбора.
func (h *WithdrawalHandler) CreateApplication(c *gin.Context) {
	var params CreateApplicationParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	app, err := h.svs.CreateApplication(ctx, service.CreateApplicationArgs{
		AgentUserID:     getUserIDFromContext(c),
		SimModule:       params.SimModule,
		Amount:          params.Amount,
		PaymentType:     domain.PaymentType(params.PaymentType),
		ContainersCount: params.ContainersCount,
		Comment:         params.Comment,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newApplicationResponse(app))
}

// ApproveApplication POST RouteGroup + AdminApplicationApproveRoute.
func (h *WithdrawalHandler) ApproveApplication(c *gin.Context) {
	var params IDURIParams
	if !bindURI(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	app, request, err := h.svs.ApproveApplication(ctx, params.ID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"application": newApplicationResponse(app),
		"withdrawal":  newWithdrawalStateResponse(request),
	})
}

type RejectApplicationParams struct {
	Reason string `binding:"required,max_bytes=1024" json:"reason"`
}

// RejectApplication POST RouteGroup + AdminApplicationRejectRoute.
func (h *WithdrawalHandler) RejectApplication(c *gin.Context) {
	var uri IDURIParams
	if !bindURI(c, &uri) {
		return
	}
	var params RejectApplicationParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	app, err := h.svs.RejectApplication(ctx, uri.ID, getUserIDFromContext(c), params.Reason)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newApplicationResponse(app))
}

type ApplicationStatusParams struct {
	Status string `binding:"required,oneof=in_way delivered" json:"status"`
}

// ApplicationStatus PATCH RouteGroup + AdminApplicationStatusRoute. Доставка аванса: approved -> in_way -> delivered.
func (h *WithdrawalHandler) ApplicationStatus(c *gin.Context) {
	var uri IDURIParams
	if !bindURI(c, &uri) {
		return
	}
	var params ApplicationStatusParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	app, err := h.svs.AdvanceApplication(ctx, uri.ID, domain.ApplicationStatus(params.Status))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newApplicationResponse(app))
}
