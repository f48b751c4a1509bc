package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"digital-wallet-api/internal/core/domain"
	"digital-wallet-api/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository. The ledger is
// append-only: the only write is Create, inside a transfer unit of work.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create appends a ledger record within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, type, amount, fee, from_wallet, to_wallet,
		initiated_by, status, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.Type, t.Amount, t.Fee, t.FromWallet, t.ToWallet,
		t.InitiatedBy, t.Status, t.Description, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a ledger record by UUID.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT id, type, amount, fee, from_wallet, to_wallet, initiated_by, status, description, created_at
		FROM transactions WHERE id = $1`

	return scanTransaction(r.pool.QueryRow(ctx, query, id))
}

// List fetches ledger records with filtering and pagination, newest first.
// InitiatedBy and WalletID combine as an OR: records the principal caused
// or that touched the principal's wallet.
func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.InitiatedBy != nil || params.WalletID != nil {
		var scope []string
		if params.InitiatedBy != nil {
			scope = append(scope, fmt.Sprintf("initiated_by = $%d", argIdx))
			args = append(args, *params.InitiatedBy)
			argIdx++
		}
		if params.WalletID != nil {
			scope = append(scope, fmt.Sprintf("from_wallet = $%d", argIdx), fmt.Sprintf("to_wallet = $%d", argIdx+1))
			args = append(args, *params.WalletID, *params.WalletID)
			argIdx += 2
		}
		conditions = append(conditions, "("+strings.Join(scope, " OR ")+")")
	}
	if params.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *params.Type)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transactions %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT id, type, amount, fee, from_wallet, to_wallet, initiated_by, status, description, created_at
		FROM transactions %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{}
		err := rows.Scan(
			&t.ID, &t.Type, &t.Amount, &t.Fee, &t.FromWallet, &t.ToWallet,
			&t.InitiatedBy, &t.Status, &t.Description, &t.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, total, nil
}

// GetStats returns ledger aggregates grouped by transaction type, largest
// volume first, plus overall totals.
func (r *TransactionRepo) GetStats(ctx context.Context) (*ports.TransactionStats, error) {
	stats := &ports.TransactionStats{}

	overview := `SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM transactions`
	if err := r.pool.QueryRow(ctx, overview).Scan(&stats.TotalTransactions, &stats.TotalVolume); err != nil {
		return nil, fmt.Errorf("transaction overview: %w", err)
	}

	byType := `SELECT type, COUNT(*), COALESCE(SUM(amount), 0), COALESCE(AVG(amount), 0)
		FROM transactions GROUP BY type ORDER BY SUM(amount) DESC`
	rows, err := r.pool.Query(ctx, byType)
	if err != nil {
		return nil, fmt.Errorf("transaction stats by type: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		ts := ports.TypeStats{}
		if err := rows.Scan(&ts.Type, &ts.Count, &ts.TotalAmount, &ts.AvgAmount); err != nil {
			return nil, fmt.Errorf("scan stats row: %w", err)
		}
		stats.ByType = append(stats.ByType, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats rows: %w", err)
	}
	return stats, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.ID, &t.Type, &t.Amount, &t.Fee, &t.FromWallet, &t.ToWallet,
		&t.InitiatedBy, &t.Status, &t.Description, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return t, nil
}
