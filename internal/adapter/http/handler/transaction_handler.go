package handler

import (
	"strconv"

	"digital-wallet-api/internal/adapter/http/dto"
	"digital-wallet-api/internal/adapter/http/middleware"
	"digital-wallet-api/internal/core/domain"
	"digital-wallet-api/internal/core/ports"
	"digital-wallet-api/pkg/apperror"
	"digital-wallet-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles ledger read endpoints.
type TransactionHandler struct {
	reportingSvc ports.ReportingService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(reportingSvc ports.ReportingService) *TransactionHandler {
	return &TransactionHandler{reportingSvc: reportingSvc}
}

// GetMyTransactions handles GET /api/v1/transactions/me.
func (h *TransactionHandler) GetMyTransactions(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	params := listParamsFromQuery(c)
	items, total, err := h.reportingSvc.GetMyTransactions(c.Request.Context(), actor.ID, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, transactionListResponse(items, total, params))
}

// GetAllTransactions handles GET /api/v1/transactions (admin only).
func (h *TransactionHandler) GetAllTransactions(c *gin.Context) {
	params := listParamsFromQuery(c)
	items, total, err := h.reportingSvc.GetAllTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, transactionListResponse(items, total, params))
}

// GetTransaction handles GET /api/v1/transactions/:id (admin only).
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid transaction id"))
		return
	}

	tx, err := h.reportingSvc.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromTransaction(tx))
}

// GetStats handles GET /api/v1/transactions/stats (admin only).
func (h *TransactionHandler) GetStats(c *gin.Context) {
	stats, err := h.reportingSvc.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromStats(stats))
}

func listParamsFromQuery(c *gin.Context) ports.TransactionListParams {
	params := ports.TransactionListParams{
		Page:     atoiDefault(c.Query("page"), 1),
		PageSize: atoiDefault(c.Query("page_size"), 20),
	}
	if t := c.Query("type"); t != "" {
		tt := domain.TransactionType(t)
		params.Type = &tt
	}
	if s := c.Query("status"); s != "" {
		ts := domain.TransactionStatus(s)
		params.Status = &ts
	}
	return params
}

func transactionListResponse(items []domain.Transaction, total int64, params ports.TransactionListParams) dto.TransactionListResponse {
	resp := dto.TransactionListResponse{
		Items:    make([]dto.TransactionResponse, 0, len(items)),
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}
	for i := range items {
		resp.Items = append(resp.Items, dto.FromTransaction(&items[i]))
	}
	return resp
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
