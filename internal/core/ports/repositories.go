package ports

import (
	"context"

	"digital-wallet-api/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transfer units of work and
// take a row-level lock for the duration of the transaction.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error)
	GetByOwnerIDForUpdate(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance int64) error
	SetBlocked(ctx context.Context, walletID uuid.UUID, blocked bool) (*domain.Wallet, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Wallet, int64, error)
}

// TransactionRepository defines persistence for the append-only ledger.
// There is deliberately no update or delete: a ledger record is immutable
// once written.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	List(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	GetStats(ctx context.Context) (*TransactionStats, error)
}

// TransactionListParams holds filter + pagination for listing ledger records.
// InitiatedBy/WalletID scope the list to one principal's history; both nil
// means the unscoped admin view.
type TransactionListParams struct {
	InitiatedBy *uuid.UUID
	WalletID    *uuid.UUID // Matches either from_wallet or to_wallet
	Type        *domain.TransactionType
	Status      *domain.TransactionStatus
	Page        int
	PageSize    int
}

// TypeStats aggregates the ledger for a single transaction type.
type TypeStats struct {
	Type        domain.TransactionType
	Count       int64
	TotalAmount int64
	AvgAmount   float64
}

// TransactionStats holds ledger-wide aggregates for the admin dashboard.
type TransactionStats struct {
	TotalTransactions int64
	TotalVolume       int64
	ByType            []TypeStats
}

// DBTransactor provides the atomic unit-of-work handle for the transfer
// engine: begin, then commit or roll back every read/write scoped to it.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
