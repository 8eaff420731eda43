package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа - вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userID, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	id, ok := userID.(int64)
	if !ok {
		return 0
	}
	return id
}

// bindJSON разбирает тело запроса в params. Ошибки валидации и поля неверного типа отдаются со статусом 422,
// синтаксические ошибки разбора - 400.
func bindJSON(c *gin.Context, params any) bool {
	return handleBindErr(c, c.ShouldBindJSON(params))
}

func bindURI(c *gin.Context, params any) bool {
	return handleBindErr(c, c.ShouldBindUri(params))
}

func bindQuery(c *gin.Context, params any) bool {
	return handleBindErr(c, c.ShouldBindQuery(params))
}

func handleBindErr(c *gin.Context, bindErr error) bool {
	if bindErr == nil {
		return true
	}
	var valErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	if errors.As(bindErr, &valErrs) || errors.As(bindErr, &typeErr) {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, bindErr).SetType(gin.ErrorTypePublic)
		return false
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
	return false
}

// errorStatus сопоставляет вид ошибки сервиса HTTP статусу ответа.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyUsed),
		errors.Is(err, domain.ErrAlreadyPenalized),
		errors.Is(err, domain.ErrOwnerConflict),
		errors.Is(err, domain.ErrDuplicateKey),
		errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrCodeNotClaimed):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrOTPLimitExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrOTPMismatch):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

var publicErrors = []error{
	domain.ErrRecordNotFound,
	domain.ErrAlreadyUsed,
	domain.ErrAlreadyPenalized,
	domain.ErrOwnerConflict,
	domain.ErrDuplicateKey,
	domain.ErrInvalidTransition,
	domain.ErrInsufficientFunds,
	domain.ErrCodeNotClaimed,
	domain.ErrOTPLimitExceeded,
	domain.ErrOTPMismatch,
}

// publicError возвращает безопасную для клиента ошибку: текст ValidationError или сигнальную ошибку domain.
func publicError(err error) error {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return valErr
	}
	for _, target := range publicErrors {
		if errors.Is(err, target) {
			return target
		}
	}
	return err
}

// abortWithServiceError прерывает запрос с ошибкой сервиса. Полный текст ошибки сохраняется в Meta для лога.
func abortWithServiceError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePrivate).SetMeta(err.Error())
		return
	}
	_ = c.AbortWithError(status, publicError(err)).SetType(gin.ErrorTypePublic).SetMeta(err.Error())
}
