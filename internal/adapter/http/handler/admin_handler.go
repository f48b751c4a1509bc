package handler

import (
	"digital-wallet-api/internal/adapter/http/dto"
	"digital-wallet-api/internal/core/ports"
	"digital-wallet-api/pkg/apperror"
	"digital-wallet-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles admin wallet management endpoints.
type AdminHandler struct {
	adminSvc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// BlockWallet handles POST /api/v1/admin/wallets/:id/block.
func (h *AdminHandler) BlockWallet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid wallet id"))
		return
	}

	wallet, err := h.adminSvc.BlockWallet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromWallet(wallet))
}

// UnblockWallet handles POST /api/v1/admin/wallets/:id/unblock.
func (h *AdminHandler) UnblockWallet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid wallet id"))
		return
	}

	wallet, err := h.adminSvc.UnblockWallet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromWallet(wallet))
}

// ListWallets handles GET /api/v1/admin/wallets.
func (h *AdminHandler) ListWallets(c *gin.Context) {
	page := atoiDefault(c.Query("page"), 1)
	pageSize := atoiDefault(c.Query("page_size"), 20)

	wallets, total, err := h.adminSvc.ListWallets(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.WalletListResponse{
		Items:    make([]dto.WalletResponse, 0, len(wallets)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range wallets {
		resp.Items = append(resp.Items, dto.FromWallet(&wallets[i]))
	}
	response.OK(c, resp)
}
