package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/interfaces/http/middleware"
	"kyc-chain.backend/internal/interfaces/http/response"
	"kyc-chain.backend/internal/usecases"
)

// StatusHandler handles verification-status endpoints
type StatusHandler struct {
	statusUsecase *usecases.StatusUsecase
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(statusUsecase *usecases.StatusUsecase) *StatusHandler {
	return &StatusHandler{statusUsecase: statusUsecase}
}

// UpdateStatus records a verdict on a customer. Authorized banks and
// admins only; the transition rules are enforced by the engine.
// POST /api/v1/customers/:kycId/status
func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	var input entities.UpdateStatusInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actor, _ := middleware.GetActorAddress(c)

	entry, err := h.statusUsecase.UpdateStatus(c.Request.Context(), actor, c.Param("kycId"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, entry)
}

// ListHistory returns a customer's full verdict log. Admins and banks
// currently authorized for the customer only.
// GET /api/v1/customers/:kycId/history
func (h *StatusHandler) ListHistory(c *gin.Context) {
	actor, _ := middleware.GetActorAddress(c)

	entries, err := h.statusUsecase.ListHistory(c.Request.Context(), actor, c.Param("kycId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"history": entries,
		"count":   len(entries),
	})
}

// VerifyHistory re-derives the hash chain for a customer's verdict log
// GET /api/v1/customers/:kycId/history/verify
func (h *StatusHandler) VerifyHistory(c *gin.Context) {
	kycID := c.Param("kycId")

	brokenAt, err := h.statusUsecase.VerifyHistory(c.Request.Context(), kycID)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := gin.H{
		"kycId": kycID,
		"valid": brokenAt < 0,
	}
	if brokenAt >= 0 {
		result["brokenAt"] = brokenAt
	}

	response.Success(c, http.StatusOK, result)
}
