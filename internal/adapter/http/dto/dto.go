package dto

import (
	"digital-wallet-api/internal/core/domain"
	"digital-wallet-api/internal/core/ports"
)

// Amount ceilings in the binding tags are per-transaction limits in minor
// units: deposit/cash-in BDT 100,000; withdraw/cash-out BDT 50,000; send
// money BDT 25,000.

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8,max=128"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Role     string  `json:"role" binding:"required,oneof=USER AGENT"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string       `json:"token"`
	Expiry int64        `json:"expiry"` // Unix timestamp
	User   UserResponse `json:"user"`
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  *string `json:"phone,omitempty"`
	Role   string  `json:"role"`
	Status string  `json:"status"`
}

// DepositRequest is the request body for adding money to one's own wallet.
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0,max=10000000"`
}

// WithdrawRequest is the request body for withdrawing from one's own wallet.
type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0,max=5000000"`
}

// SendMoneyRequest is the request body for a peer transfer.
type SendMoneyRequest struct {
	ReceiverEmail string `json:"receiver_email" binding:"required,email"`
	Amount        int64  `json:"amount" binding:"required,gt=0,max=2500000"`
}

// CashInRequest is the request body for an agent crediting a user.
type CashInRequest struct {
	UserEmail string `json:"user_email" binding:"required,email"`
	Amount    int64  `json:"amount" binding:"required,gt=0,max=10000000"`
}

// CashOutRequest is the request body for an agent debiting a user.
type CashOutRequest struct {
	UserEmail string `json:"user_email" binding:"required,email"`
	Amount    int64  `json:"amount" binding:"required,gt=0,max=5000000"`
}

// WalletResponse is the public view of a wallet.
type WalletResponse struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Balance int64  `json:"balance"`
	Blocked bool   `json:"blocked"`
}

// TransactionResponse is the public view of a ledger record.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      int64   `json:"amount"`
	Fee         int64   `json:"fee"`
	FromWallet  *string `json:"from_wallet,omitempty"`
	ToWallet    *string `json:"to_wallet,omitempty"`
	InitiatedBy string  `json:"initiated_by"`
	Status      string  `json:"status"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// TransferResponse pairs the mutated wallet with its ledger record.
type TransferResponse struct {
	Wallet      WalletResponse      `json:"wallet"`
	Transaction TransactionResponse `json:"transaction"`
}

// SendMoneyResponse returns both mutated wallets plus the ledger record.
type SendMoneyResponse struct {
	FromWallet  WalletResponse      `json:"from_wallet"`
	ToWallet    WalletResponse      `json:"to_wallet"`
	Transaction TransactionResponse `json:"transaction"`
}

// TransactionListResponse wraps a paginated ledger listing.
type TransactionListResponse struct {
	Items    []TransactionResponse `json:"items"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// WalletListResponse wraps a paginated wallet listing.
type WalletListResponse struct {
	Items    []WalletResponse `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// TypeStatsResponse is one per-type aggregate row.
type TypeStatsResponse struct {
	Type        string  `json:"type"`
	Count       int64   `json:"count"`
	TotalAmount int64   `json:"total_amount"`
	AvgAmount   float64 `json:"avg_amount"`
}

// StatsResponse is the admin ledger statistics view.
type StatsResponse struct {
	TotalTransactions int64               `json:"total_transactions"`
	TotalVolume       int64               `json:"total_volume"`
	ByType            []TypeStatsResponse `json:"by_type"`
}

// --- Converters ---

// FromUser converts a domain user into its public view.
func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:     u.ID.String(),
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Role:   string(u.Role),
		Status: string(u.Status),
	}
}

// FromWallet converts a domain wallet into its public view.
func FromWallet(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:      w.ID.String(),
		OwnerID: w.OwnerID.String(),
		Balance: w.Balance,
		Blocked: w.Blocked,
	}
}

// FromTransaction converts a ledger record into its public view.
func FromTransaction(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          t.ID.String(),
		Type:        string(t.Type),
		Amount:      t.Amount,
		Fee:         t.Fee,
		InitiatedBy: t.InitiatedBy.String(),
		Status:      string(t.Status),
		Description: t.Description,
		CreatedAt:   t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if t.FromWallet != nil {
		s := t.FromWallet.String()
		resp.FromWallet = &s
	}
	if t.ToWallet != nil {
		s := t.ToWallet.String()
		resp.ToWallet = &s
	}
	return resp
}

// FromStats converts ledger aggregates into their public view.
func FromStats(s *ports.TransactionStats) StatsResponse {
	resp := StatsResponse{
		TotalTransactions: s.TotalTransactions,
		TotalVolume:       s.TotalVolume,
	}
	for _, ts := range s.ByType {
		resp.ByType = append(resp.ByType, TypeStatsResponse{
			Type:        string(ts.Type),
			Count:       ts.Count,
			TotalAmount: ts.TotalAmount,
			AvgAmount:   ts.AvgAmount,
		})
	}
	return resp
}
