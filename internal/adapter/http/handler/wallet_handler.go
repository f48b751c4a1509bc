package handler

import (
	"digital-wallet-api/internal/adapter/http/dto"
	"digital-wallet-api/internal/adapter/http/middleware"
	"digital-wallet-api/internal/core/ports"
	"digital-wallet-api/pkg/apperror"
	"digital-wallet-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet and transfer endpoints.
type WalletHandler struct {
	transferSvc  ports.TransferService
	reportingSvc ports.ReportingService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(transferSvc ports.TransferService, reportingSvc ports.ReportingService) *WalletHandler {
	return &WalletHandler{
		transferSvc:  transferSvc,
		reportingSvc: reportingSvc,
	}
}

// GetMyWallet handles GET /api/v1/wallets/me.
func (h *WalletHandler) GetMyWallet(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	wallet, err := h.reportingSvc.GetMyWallet(c.Request.Context(), actor.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromWallet(wallet))
}

// AddMoney handles POST /api/v1/wallets/add-money.
func (h *WalletHandler) AddMoney(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.transferSvc.Deposit(c.Request.Context(), actor, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, transferResponse(result))
}

// Withdraw handles POST /api/v1/wallets/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.transferSvc.Withdraw(c.Request.Context(), actor, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, transferResponse(result))
}

// SendMoney handles POST /api/v1/wallets/send-money.
func (h *WalletHandler) SendMoney(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SendMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.transferSvc.SendMoney(c.Request.Context(), actor, req.ReceiverEmail, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SendMoneyResponse{
		FromWallet:  dto.FromWallet(result.FromWallet),
		ToWallet:    dto.FromWallet(result.ToWallet),
		Transaction: dto.FromTransaction(result.Transaction),
	})
}

// CashIn handles POST /api/v1/wallets/cash-in.
func (h *WalletHandler) CashIn(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CashInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.transferSvc.CashIn(c.Request.Context(), actor, req.UserEmail, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, transferResponse(result))
}

// CashOut handles POST /api/v1/wallets/cash-out.
func (h *WalletHandler) CashOut(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CashOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.transferSvc.CashOut(c.Request.Context(), actor, req.UserEmail, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, transferResponse(result))
}

func transferResponse(result *ports.TransferResult) dto.TransferResponse {
	return dto.TransferResponse{
		Wallet:      dto.FromWallet(result.Wallet),
		Transaction: dto.FromTransaction(result.Transaction),
	}
}
