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

// AccessHandler handles the bank x customer authorization endpoints
type AccessHandler struct {
	accessUsecase *usecases.AccessUsecase
}

// NewAccessHandler creates a new access handler
func NewAccessHandler(accessUsecase *usecases.AccessUsecase) *AccessHandler {
	return &AccessHandler{accessUsecase: accessUsecase}
}

// RequestAccess files a bank's request to verify a customer. The
// requesting bank is the authenticated actor.
// POST /api/v1/access/requests
func (h *AccessHandler) RequestAccess(c *gin.Context) {
	var input entities.RequestAccessInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actor, _ := middleware.GetActorAddress(c)

	request, err := h.accessUsecase.RequestAccess(c.Request.Context(), actor, input.KycID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, request)
}

// ListPendingRequests lists all pending access requests. Admin only.
// GET /api/v1/access/requests
func (h *AccessHandler) ListPendingRequests(c *gin.Context) {
	actor, _ := middleware.GetActorAddress(c)

	requests, err := h.accessUsecase.ListPendingRequests(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"requests": requests,
		"count":    len(requests),
	})
}

// GrantAccess authorizes a bank for a customer. Admin only.
// POST /api/v1/access/grants
func (h *AccessHandler) GrantAccess(c *gin.Context) {
	var input entities.GrantInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actor, _ := middleware.GetActorAddress(c)

	grant, err := h.accessUsecase.GrantAccess(c.Request.Context(), actor, input.KycID, input.BankAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, grant)
}

// RevokeAccess revokes a bank's authorization for a customer. Admin only.
// DELETE /api/v1/access/grants
func (h *AccessHandler) RevokeAccess(c *gin.Context) {
	var input entities.GrantInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actor, _ := middleware.GetActorAddress(c)

	if err := h.accessUsecase.RevokeAccess(c.Request.Context(), actor, input.KycID, input.BankAddress); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Access revoked",
	})
}

// CheckAccess reports whether a bank is currently authorized for a customer
// GET /api/v1/access/check?kycId=...&bankAddress=...
func (h *AccessHandler) CheckAccess(c *gin.Context) {
	kycID := c.Query("kycId")
	bankAddress := c.Query("bankAddress")
	if kycID == "" || bankAddress == "" {
		response.Error(c, domainerrors.BadRequest("kycId and bankAddress are required"))
		return
	}

	authorized, err := h.accessUsecase.IsAuthorized(c.Request.Context(), kycID, bankAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"kycId":       kycID,
		"bankAddress": bankAddress,
		"authorized":  authorized,
	})
}

// ListCustomerGrants lists the grant audit trail for one customer. Admin only.
// GET /api/v1/customers/:kycId/grants
func (h *AccessHandler) ListCustomerGrants(c *gin.Context) {
	actor, _ := middleware.GetActorAddress(c)

	grants, err := h.accessUsecase.ListGrantsForCustomer(c.Request.Context(), actor, c.Param("kycId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"grants": grants,
		"count":  len(grants),
	})
}
