package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/interfaces/http/middleware"
	"kyc-chain.backend/internal/interfaces/http/response"
	"kyc-chain.backend/internal/usecases"
)

// AdminHandler handles owner and admin management endpoints
type AdminHandler struct {
	roleUsecase *usecases.RoleUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(roleUsecase *usecases.RoleUsecase) *AdminHandler {
	return &AdminHandler{roleUsecase: roleUsecase}
}

// AddAdmin promotes an address to admin. Owner only.
// POST /api/v1/admins
func (h *AdminHandler) AddAdmin(c *gin.Context) {
	var input struct {
		Address string `json:"address" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actor, _ := middleware.GetActorAddress(c)

	admin, err := h.roleUsecase.AddAdmin(c.Request.Context(), actor, input.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, admin)
}

// RemoveAdmin demotes an admin. Owner only.
// DELETE /api/v1/admins/:address
func (h *AdminHandler) RemoveAdmin(c *gin.Context) {
	actor, _ := middleware.GetActorAddress(c)
	address := c.Param("address")

	if err := h.roleUsecase.RemoveAdmin(c.Request.Context(), actor, address); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Admin removed",
	})
}

// ListAdmins lists all admin addresses
// GET /api/v1/admins
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.roleUsecase.ListAdmins(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"admins": admins,
		"count":  len(admins),
	})
}

// GetOwner returns the current registry owner
// GET /api/v1/owner
func (h *AdminHandler) GetOwner(c *gin.Context) {
	owner, err := h.roleUsecase.GetOwner(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, owner)
}

// TransferOwner hands the registry over to a new owner address
// POST /api/v1/owner/transfer
func (h *AdminHandler) TransferOwner(c *gin.Context) {
	var input struct {
		NewOwner string `json:"newOwner" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actor, _ := middleware.GetActorAddress(c)

	if err := h.roleUsecase.TransferOwner(c.Request.Context(), actor, input.NewOwner); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Ownership transferred",
		"owner":   input.NewOwner,
	})
}
