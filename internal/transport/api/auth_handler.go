package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService AuthServicer
}

func NewAuthHandler(authService AuthServicer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type RequestOTPParams struct {
	PhoneNumber string `binding:"required,phone" json:"phone_number"`
}

// RequestOTP POST RouteGroup + OTPRoute. Отправляет одноразовый код на телефон.
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var params RequestOTPParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.authService.RequestOTP(ctx, params.PhoneNumber, c.ClientIP()); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "otp sent"})
}

type VerifyOTPParams struct {
	PhoneNumber string `binding:"required,phone"          json:"phone_number"`
	OTP         string `binding:"required,len=6,numeric" json:"otp"`
}

type UserResponse struct {
	ID          int64     `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// VerifyOTP POST RouteGroup + OTPVerifyRoute. Проверяет код и аутентифицирует пользователя.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var params VerifyOTPParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.authService.VerifyOTP(ctx, params.PhoneNumber, params.OTP)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": UserResponse{
			ID:          user.ID,
			PhoneNumber: user.PhoneNumber,
			Role:        string(user.Role),
			IsActive:    user.IsActive,
			CreatedAt:   user.CreatedAt,
		},
	})
}
