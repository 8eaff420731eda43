package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/service"
	"github.com/gin-gonic/gin"
)

// SettlementHandler маршруты устройств (фандоматов и точек сбора), погашающих коды.
type SettlementHandler struct {
	svs SettlementServicer
}

func NewSettlementHandler(svs SettlementServicer) *SettlementHandler {
	return &SettlementHandler{svs: svs}
}

type ScanParams struct {
	Code        string `binding:"required,max_bytes=128"    json:"code"`
	SimModule   string `binding:"required,max_bytes=64"     json:"sim_module"`
	PhoneNumber string `binding:"omitempty,phone"           json:"phone_number"`
}

type BarcodeScanParams struct {
	Code        string `binding:"required,max_bytes=128" json:"code"`
	SimModule   string `binding:"required,max_bytes=64"  json:"sim_module"`
	PhoneNumber string `binding:"required,phone"         json:"phone_number"`
}

type BatchScanParams struct {
	Codes       []string `binding:"required,min=1,max=1000,dive,required,max_bytes=128" json:"codes"`
	SimModule   string   `binding:"required,max_bytes=64"                              json:"sim_module"`
	PhoneNumber string   `binding:"omitempty,phone"                                    json:"phone_number"`
}

type SettlementResponse struct {
	Code           string `json:"code"`
	Family         string `json:"family"`
	CategoryLabel  string `json:"category_label"`
	Amount         int64  `json:"amount"`
	OperatorAmount int64  `json:"operator_amount"`
}

func newSettlementResponse(s *service.Settlement) SettlementResponse {
	return SettlementResponse{
		Code:           s.Code,
		Family:         string(s.Family),
		CategoryLabel:  s.CategoryLabel,
		Amount:         s.ClientAmount,
		OperatorAmount: s.OperatorAmount,
	}
}

type BatchItemResponse struct {
	Code   string `json:"code"`
	Amount *int64 `json:"amount,omitempty"`
	Error  string `json:"error,omitempty"`
}

type BatchResponse struct {
	TotalAmount  int64               `json:"total_amount"`
	Results      []BatchItemResponse `json:"results"`
	SuccessCount int                 `json:"success_count"`
	ErrorCount   int                 `json:"error_count"`
}

// ScanEcopacket POST RouteGroup + EcopacketScanRoute.
func (h *SettlementHandler) ScanEcopacket(c *gin.Context) {
	var params ScanParams
	if !bindJSON(c, &params) {
		return
	}
	h.settle(c, h.svs.SettleEcopacket, service.SettleArgs{Code: params.Code, SimModule: params.SimModule})
}

// ScanBarcode POST RouteGroup + BarcodeScanRoute.
func (h *SettlementHandler) ScanBarcode(c *gin.Context) {
	var params BarcodeScanParams
	if !bindJSON(c, &params) {
		return
	}
	h.settle(c, h.svs.SettleBarcode, service.SettleArgs{
		Code:      params.Code,
		SimModule: params.SimModule,
		Phone:     params.PhoneNumber,
	})
}

// ScanAny POST RouteGroup + UniversalScanRoute. Семейство кода определяется автоматически.
func (h *SettlementHandler) ScanAny(c *gin.Context) {
	var params ScanParams
	if !bindJSON(c, &params) {
		return
	}
	h.settle(c, h.svs.SettleAny, service.SettleArgs{
		Code:      params.Code,
		SimModule: params.SimModule,
		Phone:     params.PhoneNumber,
	})
}

func (h *SettlementHandler) settle(
	c *gin.Context,
	fn func(context.Context, service.SettleArgs) (*service.Settlement, error),
	args service.SettleArgs,
) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	settlement, err := fn(ctx, args)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSettlementResponse(settlement))
}

// ScanEcopacketBatch POST RouteGroup + EcopacketBatchRoute.
func (h *SettlementHandler) ScanEcopacketBatch(c *gin.Context) {
	h.settleBatch(c, domain.CodeFamilyEcopacket)
}

// ScanBarcodeBatch POST RouteGroup + BarcodeBatchRoute.
func (h *SettlementHandler) ScanBarcodeBatch(c *gin.Context) {
	h.settleBatch(c, domain.CodeFamilyBarcode)
}

func (h *SettlementHandler) settleBatch(c *gin.Context, family domain.CodeFamily) {
	var params BatchScanParams
	if !bindJSON(c, &params) {
		return
	}

	// DefaultServiceTimeout к пакету не применяется.
	batch, err := h.svs.SettleBatch(c, service.BatchSettleArgs{
		Family:    family,
		Codes:     params.Codes,
		SimModule: params.SimModule,
		Phone:     params.PhoneNumber,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := BatchResponse{
		TotalAmount:  batch.TotalAmount,
		Results:      make([]BatchItemResponse, len(batch.Results)),
		SuccessCount: batch.SuccessCount,
		ErrorCount:   batch.ErrorCount,
	}
	for i, result := range batch.Results {
		item := BatchItemResponse{Code: result.Code}
		if result.Err != nil {
			item.Error = domain.ErrorKind(result.Err)
		} else {
			amount := result.Settlement.ClientAmount
			item.Amount = &amount
		}
		response.Results[i] = item
	}
	c.JSON(http.StatusAccepted, response)
}
