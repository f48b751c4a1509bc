package ports

import (
	"context"
	"time"

	"digital-wallet-api/internal/core/domain"

	"github.com/google/uuid"
)

// Actor is the authenticated principal on whose behalf an operation runs.
// Identity is supplied by the auth middleware; the core trusts it.
type Actor struct {
	ID   uuid.UUID
	Role domain.Role
}

// --- Transfer Engine ---

// TransferService orchestrates atomic balance mutations plus the ledger
// append for every money movement. Each call is a single unit of work:
// any failure aborts it and leaves no observable state change.
type TransferService interface {
	Deposit(ctx context.Context, actor Actor, amount int64) (*TransferResult, error)
	Withdraw(ctx context.Context, actor Actor, amount int64) (*TransferResult, error)
	SendMoney(ctx context.Context, actor Actor, toEmail string, amount int64) (*SendMoneyResult, error)
	CashIn(ctx context.Context, actor Actor, userEmail string, amount int64) (*TransferResult, error)
	CashOut(ctx context.Context, actor Actor, userEmail string, amount int64) (*TransferResult, error)
}

// TransferResult is the outcome of a single-wallet operation: the wallet
// with its post-commit balance and the ledger record describing the move.
type TransferResult struct {
	Wallet      *domain.Wallet
	Transaction *domain.Transaction
}

// SendMoneyResult is the outcome of a peer transfer.
type SendMoneyResult struct {
	FromWallet  *domain.Wallet
	ToWallet    *domain.Wallet
	Transaction *domain.Transaction
}

// --- Authentication ---

// AuthService defines registration and login.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// RegisterRequest holds validated input for account registration.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Phone    *string
	Role     domain.Role // USER or AGENT; wallet is auto-created for both
}

// LoginResult holds the issued token and the authenticated user.
type LoginResult struct {
	Token  string
	Expiry time.Time
	User   *domain.User
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Role   domain.Role
}

// HashService handles password hashing.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// --- Reporting ---

// ReportingService defines the read-only wallet and ledger views.
type ReportingService interface {
	GetMyWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetMyTransactions(ctx context.Context, userID uuid.UUID, params TransactionListParams) ([]domain.Transaction, int64, error)
	GetAllTransactions(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetStats(ctx context.Context) (*TransactionStats, error)
}

// --- Administration ---

// AdminService defines admin wallet management: the ACTIVE/BLOCKED toggle
// and the wallet listing. Blocking never deletes; a blocked wallet stays
// readable and keeps its balance.
type AdminService interface {
	BlockWallet(ctx context.Context, walletID uuid.UUID) (*domain.Wallet, error)
	UnblockWallet(ctx context.Context, walletID uuid.UUID) (*domain.Wallet, error)
	ListWallets(ctx context.Context, page, pageSize int) ([]domain.Wallet, int64, error)
}
