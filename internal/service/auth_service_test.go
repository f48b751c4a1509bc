package service

import (
	"context"
	"testing"
	"time"

	"digital-wallet-api/internal/core/domain"
	"digital-wallet-api/internal/core/ports"
	"digital-wallet-api/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authTestDeps struct {
	svc        *AuthServiceImpl
	userRepo   *mocks.MockUserRepository
	walletRepo *mocks.MockWalletRepository
	hashSvc    *mocks.MockHashService
	tokenSvc   *mocks.MockTokenService
	ctrl       *gomock.Controller
}

func setupAuthService(t *testing.T) *authTestDeps {
	ctrl := gomock.NewController(t)
	d := &authTestDeps{
		userRepo:   mocks.NewMockUserRepository(ctrl),
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		hashSvc:    mocks.NewMockHashService(ctrl),
		tokenSvc:   mocks.NewMockTokenService(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewAuthService(d.userRepo, d.walletRepo, d.hashSvc, d.tokenSvc)
	return d
}

// ==================== Register Tests ====================

func TestAuthService_Register_UserGetsWalletWithBonus(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.userRepo.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil)
	d.hashSvc.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	d.userRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	var createdWallet *domain.Wallet
	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) error {
			createdWallet = w
			return nil
		})

	user, err := d.svc.Register(ctx, ports.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
		Role:     domain.RoleUser,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.UserStatusActive, user.Status)
	assert.Equal(t, "hashed", user.PasswordHash)

	require.NotNil(t, createdWallet)
	assert.Equal(t, user.ID, createdWallet.OwnerID)
	assert.Equal(t, int64(5000), createdWallet.Balance)
	assert.False(t, createdWallet.Blocked)
}

func TestAuthService_Register_AgentGetsWallet(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.userRepo.EXPECT().GetByEmail(ctx, "agent@example.com").Return(nil, nil)
	d.hashSvc.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
	d.userRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	user, err := d.svc.Register(ctx, ports.RegisterRequest{
		Name:     "Agent",
		Email:    "agent@example.com",
		Password: "s3cretpass",
		Role:     domain.RoleAgent,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAgent, user.Role)
}

func TestAuthService_Register_AdminRoleRejected(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	user, err := d.svc.Register(context.Background(), ports.RegisterRequest{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "s3cretpass",
		Role:     domain.RoleAdmin,
	})
	assert.Nil(t, user)
	assertAppError(t, err, "WAL_002")
}

func TestAuthService_Register_EmailExists(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.userRepo.EXPECT().GetByEmail(ctx, "alice@example.com").Return(&domain.User{
		ID: uuid.New(), Email: "alice@example.com",
	}, nil)

	user, err := d.svc.Register(ctx, ports.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
		Role:     domain.RoleUser,
	})
	assert.Nil(t, user)
	assertAppError(t, err, "AUTH_002")
}

// ==================== Login Tests ====================

func TestAuthService_Login_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	expiry := time.Now().Add(24 * time.Hour)

	d.userRepo.EXPECT().GetByEmail(ctx, "alice@example.com").Return(&domain.User{
		ID:           userID,
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		Role:         domain.RoleUser,
		Status:       domain.UserStatusActive,
	}, nil)
	d.hashSvc.EXPECT().Verify("s3cretpass", "hashed").Return(true, nil)
	d.tokenSvc.EXPECT().Generate(userID, domain.RoleUser).Return("jwt-token", expiry, nil)

	result, err := d.svc.Login(ctx, "alice@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", result.Token)
	assert.Equal(t, expiry, result.Expiry)
	assert.Equal(t, userID, result.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.userRepo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)

	result, err := d.svc.Login(ctx, "ghost@example.com", "whatever")
	assert.Nil(t, result)
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.userRepo.EXPECT().GetByEmail(ctx, "alice@example.com").Return(&domain.User{
		ID: uuid.New(), PasswordHash: "hashed", Status: domain.UserStatusActive,
	}, nil)
	d.hashSvc.EXPECT().Verify("wrong", "hashed").Return(false, nil)

	result, err := d.svc.Login(ctx, "alice@example.com", "wrong")
	assert.Nil(t, result)
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_BlockedAccount(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.userRepo.EXPECT().GetByEmail(ctx, "alice@example.com").Return(&domain.User{
		ID: uuid.New(), PasswordHash: "hashed", Status: domain.UserStatusBlocked,
	}, nil)
	d.hashSvc.EXPECT().Verify("s3cretpass", "hashed").Return(true, nil)

	result, err := d.svc.Login(ctx, "alice@example.com", "s3cretpass")
	assert.Nil(t, result)
	assertAppError(t, err, "AUTH_004")
}
