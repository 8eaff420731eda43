package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler административные операции над справочниками и леджером.
type AdminHandler struct {
	penaltySvs PenaltyServicer
	catalogSvs CatalogServicer
}

func NewAdminHandler(penaltySvs PenaltyServicer, catalogSvs CatalogServicer) *AdminHandler {
	return &AdminHandler{penaltySvs: penaltySvs, catalogSvs: catalogSvs}
}

type PenaltyParams struct {
	Amount int64  `binding:"required,gt=0"             json:"amount"`
	Reason string `binding:"omitempty,max_bytes=1024" json:"reason"`
}

// Penalty POST RouteGroup + AdminPenaltyRoute. Штраф по записи леджера, не более одного на запись.
func (h *AdminHandler) Penalty(c *gin.Context) {
	var uri IDURIParams
	if !bindURI(c, &uri) {
		return
	}
	var params PenaltyParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	posting, err := h.penaltySvs.Apply(ctx, service.PenaltyArgs{
		PostingID: uri.ID,
		Amount:    params.Amount,
		Reason:    params.Reason,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPostingResponse(posting))
}

type CategoryParams struct {
	Name                string `binding:"required,max_bytes=255" json:"name"`
	PayoutAmount        int64  `binding:"required,gt=0"          json:"payout_amount"`
	IgnoreOperatorSplit bool   `json:"ignore_operator_split"`
}

type CategoryResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	PayoutAmount        int64  `json:"payout_amount"`
	IgnoreOperatorSplit bool   `json:"ignore_operator_split"`
}

// CreateCategory POST RouteGroup + AdminCategoriesRoute.
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var params CategoryParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	category, err := h.catalogSvs.CreateCategory(ctx, repoargs.CategoryCreate{
		Name:                params.Name,
		PayoutAmount:        params.PayoutAmount,
		IgnoreOperatorSplit: params.IgnoreOperatorSplit,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CategoryResponse{
		ID:                  category.ID,
		Name:                category.Name,
		PayoutAmount:        category.PayoutAmount,
		IgnoreOperatorSplit: category.IgnoreOperatorSplit,
	})
}

type CollectionPointParams struct {
	Name                     string `binding:"required,max_bytes=255"    json:"name"`
	SimModule                string `binding:"required,max_bytes=64"     json:"sim_module"`
	OperatorUserID           *int64 `binding:"omitempty,min=1"           json:"operator_user_id"`
	CommissionPercent        int64  `binding:"min=0,max=100"             json:"commission_percent"`
	IsFandomat               bool   `json:"is_fandomat"`
	AdvanceCapacityRemaining int64  `binding:"min=0"                     json:"advance_capacity_remaining"`
}

type CollectionPointResponse struct {
	ID                       int64  `json:"id"`
	Name                     string `json:"name"`
	SimModule                string `json:"sim_module"`
	OperatorUserID           *int64 `json:"operator_user_id"`
	CommissionPercent        int64  `json:"commission_percent"`
	IsFandomat               bool   `json:"is_fandomat"`
	AdvanceCapacityRemaining int64  `json:"advance_capacity_remaining"`
}

// CreateCollectionPoint POST RouteGroup + AdminCollectionPointsRoute.
func (h *AdminHandler) CreateCollectionPoint(c *gin.Context) {
	var params CollectionPointParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	point, err := h.catalogSvs.CreateCollectionPoint(ctx, repoargs.CollectionPointCreate{
		Name:                     params.Name,
		SimModule:                params.SimModule,
		OperatorUserID:           params.OperatorUserID,
		CommissionPercent:        params.CommissionPercent,
		IsFandomat:               params.IsFandomat,
		AdvanceCapacityRemaining: params.AdvanceCapacityRemaining,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CollectionPointResponse{
		ID:                       point.ID,
		Name:                     point.Name,
		SimModule:                point.SimModule,
		OperatorUserID:           point.OperatorUserID,
		CommissionPercent:        point.CommissionPercent,
		IsFandomat:               point.IsFandomat,
		AdvanceCapacityRemaining: point.AdvanceCapacityRemaining,
	})
}
