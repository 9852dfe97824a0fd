package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/interfaces/http/response"
	"kyc-chain.backend/internal/usecases"
)

// AuthHandler handles wallet-login endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Challenge issues a single-use sign-in message for a wallet
// POST /api/v1/auth/challenge
func (h *AuthHandler) Challenge(c *gin.Context) {
	var input struct {
		Address string `json:"address" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	message, err := h.authUsecase.Challenge(c.Request.Context(), input.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": message,
	})
}

// Login exchanges a signed challenge for a session token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Address   string `json:"address" binding:"required"`
		Message   string `json:"message" binding:"required"`
		Signature string `json:"signature" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), input.Address, input.Message, input.Signature)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}
