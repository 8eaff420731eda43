package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/service"
	"github.com/gin-gonic/gin"
)

type CodeHandler struct {
	svs CodeServicer
}

func NewCodeHandler(svs CodeServicer) *CodeHandler {
	return &CodeHandler{svs: svs}
}

type CodeURIParams struct {
	Code string `binding:"required,max_bytes=128" uri:"code"`
}

type CodeCheckResponse struct {
	Code     string `json:"code"`
	Result   string `json:"result"`
	Exists   bool   `json:"exists"`
	Consumed bool   `json:"consumed"`
}

// Check GET RouteGroup + CodeCheckRoute. Публичная проверка кода, каждая проверка пишется в журнал.
func (h *CodeHandler) Check(c *gin.Context) {
	var params CodeURIParams
	if !bindURI(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	check, err := h.svs.Check(ctx, service.CheckArgs{
		Code:      params.Code,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, CodeCheckResponse{
		Code:     check.Code,
		Result:   string(check.Result),
		Exists:   check.Exists,
		Consumed: check.Consumed,
	})
}

type ClaimParams struct {
	Code string `binding:"required,max_bytes=128" json:"code"`
}

type ScanCodeResponse struct {
	Code      string     `json:"code"`
	Family    string     `json:"family"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
}

// Claim POST RouteGroup + ClaimRoute. Привязывает код экопакета к текущему пользователю.
func (h *CodeHandler) Claim(c *gin.Context) {
	var params ClaimParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	scanCode, err := h.svs.Claim(ctx, params.Code, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ScanCodeResponse{
		Code:      scanCode.Code,
		Family:    string(scanCode.Family),
		ClaimedAt: scanCode.ClaimedAt,
	})
}

type CreateCodesParams struct {
	Family     string `binding:"required,oneof=ecopacket barcode" json:"family"`
	CategoryID int64  `binding:"required,min=1"                  json:"category_id"`
	Count      int    `binding:"required,min=1,max=10000"        json:"count"`
}

// CreateCodes POST RouteGroup + AdminCodesRoute. Массовый выпуск кодов.
func (h *CodeHandler) CreateCodes(c *gin.Context) {
	var params CreateCodesParams
	if !bindJSON(c, &params) {
		return
	}

	// вставка до 10000 строк, DefaultServiceTimeout не применяется.
	codes, err := h.svs.CreateBatch(c, service.CreateCodesArgs{
		Family:     domain.CodeFamily(params.Family),
		CategoryID: params.CategoryID,
		Count:      params.Count,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"count": len(codes), "codes": codes})
}
