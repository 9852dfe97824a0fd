package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/interfaces/http/middleware"
	"kyc-chain.backend/internal/interfaces/http/response"
	"kyc-chain.backend/internal/usecases"
	"kyc-chain.backend/pkg/utils"
)

// BankHandler handles bank registry endpoints
type BankHandler struct {
	bankUsecase *usecases.BankUsecase
}

// NewBankHandler creates a new bank handler
func NewBankHandler(bankUsecase *usecases.BankUsecase) *BankHandler {
	return &BankHandler{bankUsecase: bankUsecase}
}

// AddBank registers a bank. Admin only; the bank starts unapproved.
// POST /api/v1/banks
func (h *BankHandler) AddBank(c *gin.Context) {
	var input entities.AddBankInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actor, _ := middleware.GetActorAddress(c)

	bank, err := h.bankUsecase.AddBank(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, bank)
}

// SetApproval flips a bank's approval switch. Admin only.
// PATCH /api/v1/banks/:address/approval
func (h *BankHandler) SetApproval(c *gin.Context) {
	var input struct {
		Approved *bool `json:"approved" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actor, _ := middleware.GetActorAddress(c)
	address := c.Param("address")

	if err := h.bankUsecase.SetApproval(c.Request.Context(), actor, address, *input.Approved); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"address":  address,
		"approved": *input.Approved,
	})
}

// GetBank returns one bank with its pending requests and approvals
// GET /api/v1/banks/:address
func (h *BankHandler) GetBank(c *gin.Context) {
	bank, err := h.bankUsecase.GetBank(c.Request.Context(), c.Param("address"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, bank)
}

// ListBanks lists registered banks with pagination
// GET /api/v1/banks
func (h *BankHandler) ListBanks(c *gin.Context) {
	var params utils.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	pagination := utils.GetPaginationParams(params.Page, params.Limit)

	banks, total, err := h.bankUsecase.ListBanks(c.Request.Context(), pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"banks":      banks,
		"pagination": utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}
