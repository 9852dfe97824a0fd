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

// CustomerHandler handles customer onboarding and record endpoints
type CustomerHandler struct {
	customerUsecase *usecases.CustomerUsecase
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerUsecase *usecases.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{customerUsecase: customerUsecase}
}

// AddCustomer onboards a customer. Admin only.
// POST /api/v1/customers
func (h *CustomerHandler) AddCustomer(c *gin.Context) {
	var input entities.AddCustomerInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actor, _ := middleware.GetActorAddress(c)

	customer, err := h.customerUsecase.AddCustomer(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, customer)
}

// GetCustomer returns one customer by kycId
// GET /api/v1/customers/:kycId
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customerUsecase.GetCustomer(c.Request.Context(), c.Param("kycId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, customer)
}

// ListCustomers lists customers with pagination
// GET /api/v1/customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var params utils.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	pagination := utils.GetPaginationParams(params.Page, params.Limit)

	customers, total, err := h.customerUsecase.ListCustomers(c.Request.Context(), pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"customers":  customers,
		"pagination": utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}

// AddRecord appends a document reference to a customer. Admin only.
// POST /api/v1/customers/:kycId/records
func (h *CustomerHandler) AddRecord(c *gin.Context) {
	var input entities.AddRecordInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actor, _ := middleware.GetActorAddress(c)

	record, err := h.customerUsecase.AddRecord(c.Request.Context(), actor, c.Param("kycId"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, record)
}

// ListRecords lists a customer's document references in append order
// GET /api/v1/customers/:kycId/records
func (h *CustomerHandler) ListRecords(c *gin.Context) {
	records, err := h.customerUsecase.ListRecords(c.Request.Context(), c.Param("kycId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"records": records,
		"count":   len(records),
	})
}
