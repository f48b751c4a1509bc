package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"digital-wallet-api/internal/core/domain"
	"digital-wallet-api/internal/core/policy"
	"digital-wallet-api/internal/core/ports"
	"digital-wallet-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// TransferServiceImpl implements ports.TransferService.
//
// Every operation runs as one unit of work: begin, lock the involved
// wallet row(s), apply the access policy, mutate balance(s), append one
// COMPLETED ledger record, commit. Rollback is deferred on every path,
// so a failure anywhere leaves both stores untouched.
type TransferServiceImpl struct {
	userRepo   ports.UserRepository
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	userRepo ports.UserRepository,
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		txRepo:     txRepo,
		transactor: transactor,
		log:        log,
	}
}

// Deposit credits the actor's own wallet.
func (s *TransferServiceImpl) Deposit(ctx context.Context, actor ports.Actor, amount int64) (*ports.TransferResult, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := policy.Authorize(actor.Role, domain.TransactionTypeDeposit); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.lockWallet(ctx, dbTx, actor.ID)
	if err != nil {
		return nil, err
	}
	if err := policy.CheckWallet(wallet); err != nil {
		return nil, err
	}

	newBalance := wallet.Balance + amount
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	txn := newLedgerRecord(domain.TransactionTypeDeposit, amount, actor.ID,
		fmt.Sprintf("Added %s to wallet", formatAmount(amount)))
	txn.ToWallet = &wallet.ID

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger record: %w", err))
	}
	if err := s.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	wallet.Balance = newBalance
	s.logCompleted(txn)
	return &ports.TransferResult{Wallet: wallet, Transaction: txn}, nil
}

// Withdraw debits the actor's own wallet.
func (s *TransferServiceImpl) Withdraw(ctx context.Context, actor ports.Actor, amount int64) (*ports.TransferResult, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := policy.Authorize(actor.Role, domain.TransactionTypeWithdraw); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.lockWallet(ctx, dbTx, actor.ID)
	if err != nil {
		return nil, err
	}
	if err := policy.CheckWallet(wallet); err != nil {
		return nil, err
	}
	if wallet.Balance < amount {
		return nil, apperror.ErrInsufficientFunds()
	}

	newBalance := wallet.Balance - amount
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	txn := newLedgerRecord(domain.TransactionTypeWithdraw, amount, actor.ID,
		fmt.Sprintf("Withdrew %s from wallet", formatAmount(amount)))
	txn.FromWallet = &wallet.ID

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger record: %w", err))
	}
	if err := s.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	wallet.Balance = newBalance
	s.logCompleted(txn)
	return &ports.TransferResult{Wallet: wallet, Transaction: txn}, nil
}

// SendMoney moves money from the actor's wallet to another user's wallet,
// resolved by email. Both wallet rows are locked for the duration of the
// unit of work; a single SEND_MONEY record references both.
func (s *TransferServiceImpl) SendMoney(ctx context.Context, actor ports.Actor, toEmail string, amount int64) (*ports.SendMoneyResult, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := policy.Authorize(actor.Role, domain.TransactionTypeSendMoney); err != nil {
		return nil, err
	}

	recipient, err := s.userRepo.GetByEmail(ctx, toEmail)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve recipient: %w", err))
	}
	if recipient == nil {
		return nil, apperror.ErrNotFound("recipient")
	}
	if recipient.ID == actor.ID {
		return nil, apperror.ErrSelfTransfer()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock both wallets in ascending owner-id order so two opposite
	// transfers between the same pair cannot deadlock.
	firstOwner, secondOwner := actor.ID, recipient.ID
	if bytes.Compare(firstOwner[:], secondOwner[:]) > 0 {
		firstOwner, secondOwner = secondOwner, firstOwner
	}
	firstWallet, err := s.lockWallet(ctx, dbTx, firstOwner)
	if err != nil {
		return nil, err
	}
	secondWallet, err := s.lockWallet(ctx, dbTx, secondOwner)
	if err != nil {
		return nil, err
	}

	fromWallet, toWallet := firstWallet, secondWallet
	if fromWallet.OwnerID != actor.ID {
		fromWallet, toWallet = toWallet, fromWallet
	}

	if err := policy.CheckWallets(fromWallet, toWallet); err != nil {
		return nil, err
	}
	if fromWallet.Balance < amount {
		return nil, apperror.ErrInsufficientFunds()
	}

	newFromBalance := fromWallet.Balance - amount
	newToBalance := toWallet.Balance + amount
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, fromWallet.ID, newFromBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit sender: %w", err))
	}
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, toWallet.ID, newToBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit recipient: %w", err))
	}

	txn := newLedgerRecord(domain.TransactionTypeSendMoney, amount, actor.ID,
		fmt.Sprintf("Sent %s to %s", formatAmount(amount), recipient.Email))
	txn.FromWallet = &fromWallet.ID
	txn.ToWallet = &toWallet.ID

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger record: %w", err))
	}
	if err := s.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	fromWallet.Balance = newFromBalance
	toWallet.Balance = newToBalance
	s.logCompleted(txn)
	return &ports.SendMoneyResult{FromWallet: fromWallet, ToWallet: toWallet, Transaction: txn}, nil
}

// CashIn credits a user's wallet on behalf of an agent.
func (s *TransferServiceImpl) CashIn(ctx context.Context, actor ports.Actor, userEmail string, amount int64) (*ports.TransferResult, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := policy.Authorize(actor.Role, domain.TransactionTypeCashIn); err != nil {
		return nil, err
	}

	target, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve user: %w", err))
	}
	if target == nil {
		return nil, apperror.ErrNotFound("user")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.lockWallet(ctx, dbTx, target.ID)
	if err != nil {
		return nil, err
	}
	if err := policy.CheckWallet(wallet); err != nil {
		return nil, err
	}

	newBalance := wallet.Balance + amount
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	txn := newLedgerRecord(domain.TransactionTypeCashIn, amount, actor.ID,
		fmt.Sprintf("Cash-in of %s by agent", formatAmount(amount)))
	txn.ToWallet = &wallet.ID

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger record: %w", err))
	}
	if err := s.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	wallet.Balance = newBalance
	s.logCompleted(txn)
	return &ports.TransferResult{Wallet: wallet, Transaction: txn}, nil
}

// CashOut debits a user's wallet on behalf of an agent.
func (s *TransferServiceImpl) CashOut(ctx context.Context, actor ports.Actor, userEmail string, amount int64) (*ports.TransferResult, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := policy.Authorize(actor.Role, domain.TransactionTypeCashOut); err != nil {
		return nil, err
	}

	target, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve user: %w", err))
	}
	if target == nil {
		return nil, apperror.ErrNotFound("user")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.lockWallet(ctx, dbTx, target.ID)
	if err != nil {
		return nil, err
	}
	if err := policy.CheckWallet(wallet); err != nil {
		return nil, err
	}
	if wallet.Balance < amount {
		return nil, apperror.ErrInsufficientFunds()
	}

	newBalance := wallet.Balance - amount
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	txn := newLedgerRecord(domain.TransactionTypeCashOut, amount, actor.ID,
		fmt.Sprintf("Cash-out of %s by agent", formatAmount(amount)))
	txn.FromWallet = &wallet.ID

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger record: %w", err))
	}
	if err := s.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	wallet.Balance = newBalance
	s.logCompleted(txn)
	return &ports.TransferResult{Wallet: wallet, Transaction: txn}, nil
}

// lockWallet fetches the wallet row for ownerID with a row-level lock held
// until the unit of work ends.
func (s *TransferServiceImpl) lockWallet(ctx context.Context, dbTx pgx.Tx, ownerID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByOwnerIDForUpdate(ctx, dbTx, ownerID)
	if err != nil {
		if isRetryableTxError(err) {
			return nil, apperror.ErrConflict()
		}
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return wallet, nil
}

func (s *TransferServiceImpl) commit(ctx context.Context, dbTx pgx.Tx) error {
	if err := dbTx.Commit(ctx); err != nil {
		if isRetryableTxError(err) {
			return apperror.ErrConflict()
		}
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

func (s *TransferServiceImpl) logCompleted(txn *domain.Transaction) {
	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("type", string(txn.Type)).
		Int64("amount", txn.Amount).
		Str("initiated_by", txn.InitiatedBy.String()).
		Msg("transfer completed")
}

// newLedgerRecord builds a COMPLETED ledger entry. Callers set the wallet
// references before persisting.
func newLedgerRecord(txType domain.TransactionType, amount int64, initiatedBy uuid.UUID, description string) *domain.Transaction {
	return &domain.Transaction{
		ID:          uuid.New(),
		Type:        txType,
		Amount:      amount,
		Fee:         0,
		InitiatedBy: initiatedBy,
		Status:      domain.TransactionStatusCompleted,
		Description: &description,
		CreatedAt:   time.Now().UTC(),
	}
}

// isRetryableTxError reports whether err is a PostgreSQL serialization
// failure or deadlock abort, which the caller may safely retry.
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// formatAmount renders minor units as a human-readable taka string for
// ledger descriptions.
func formatAmount(minorUnits int64) string {
	return fmt.Sprintf("BDT %d.%02d", minorUnits/100, minorUnits%100)
}
