package service

import (
	"context"
	"testing"

	"digital-wallet-api/internal/core/domain"
	"digital-wallet-api/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminService_BlockWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletRepo := mocks.NewMockWalletRepository(ctrl)
	svc := NewAdminService(walletRepo, zerolog.Nop())

	ctx := context.Background()
	walletID := uuid.New()

	walletRepo.EXPECT().SetBlocked(ctx, walletID, true).Return(&domain.Wallet{
		ID: walletID, Balance: 5000, Blocked: true,
	}, nil)

	wallet, err := svc.BlockWallet(ctx, walletID)
	require.NoError(t, err)
	assert.True(t, wallet.Blocked)
	// Blocking keeps the balance intact.
	assert.Equal(t, int64(5000), wallet.Balance)
}

func TestAdminService_UnblockWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletRepo := mocks.NewMockWalletRepository(ctrl)
	svc := NewAdminService(walletRepo, zerolog.Nop())

	ctx := context.Background()
	walletID := uuid.New()

	walletRepo.EXPECT().SetBlocked(ctx, walletID, false).Return(&domain.Wallet{
		ID: walletID, Blocked: false,
	}, nil)

	wallet, err := svc.UnblockWallet(ctx, walletID)
	require.NoError(t, err)
	assert.False(t, wallet.Blocked)
}

func TestAdminService_BlockWallet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletRepo := mocks.NewMockWalletRepository(ctrl)
	svc := NewAdminService(walletRepo, zerolog.Nop())

	ctx := context.Background()
	walletID := uuid.New()

	walletRepo.EXPECT().SetBlocked(ctx, walletID, true).Return(nil, nil)

	wallet, err := svc.BlockWallet(ctx, walletID)
	assert.Nil(t, wallet)
	assertAppError(t, err, "WAL_003")
}

func TestAdminService_ListWallets_NormalizesPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletRepo := mocks.NewMockWalletRepository(ctrl)
	svc := NewAdminService(walletRepo, zerolog.Nop())

	ctx := context.Background()

	walletRepo.EXPECT().List(ctx, 1, 20).Return([]domain.Wallet{{ID: uuid.New()}}, int64(1), nil)

	wallets, total, err := svc.ListWallets(ctx, 0, 1000)
	require.NoError(t, err)
	assert.Len(t, wallets, 1)
	assert.Equal(t, int64(1), total)
}
