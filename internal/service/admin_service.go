package service

import (
	"context"
	"fmt"

	"digital-wallet-api/internal/core/domain"
	"digital-wallet-api/internal/core/ports"
	"digital-wallet-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminServiceImpl implements ports.AdminService. Wallets are never
// deleted; blocking flips the flag that denies transfer operations while
// keeping the record readable.
type AdminServiceImpl struct {
	walletRepo ports.WalletRepository
	log        zerolog.Logger
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(walletRepo ports.WalletRepository, log zerolog.Logger) *AdminServiceImpl {
	return &AdminServiceImpl{walletRepo: walletRepo, log: log}
}

// BlockWallet marks a wallet as blocked.
func (s *AdminServiceImpl) BlockWallet(ctx context.Context, walletID uuid.UUID) (*domain.Wallet, error) {
	return s.setBlocked(ctx, walletID, true)
}

// UnblockWallet clears the blocked flag.
func (s *AdminServiceImpl) UnblockWallet(ctx context.Context, walletID uuid.UUID) (*domain.Wallet, error) {
	return s.setBlocked(ctx, walletID, false)
}

// ListWallets returns all wallets, paginated.
func (s *AdminServiceImpl) ListWallets(ctx context.Context, page, pageSize int) ([]domain.Wallet, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	wallets, total, err := s.walletRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list wallets: %w", err))
	}
	return wallets, total, nil
}

func (s *AdminServiceImpl) setBlocked(ctx context.Context, walletID uuid.UUID, blocked bool) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.SetBlocked(ctx, walletID, blocked)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("set wallet blocked: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	s.log.Info().
		Str("wallet_id", walletID.String()).
		Bool("blocked", blocked).
		Msg("wallet block state changed")
	return wallet, nil
}
