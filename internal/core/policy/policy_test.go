package policy

import (
	"testing"

	"digital-wallet-api/internal/core/domain"
	"digital-wallet-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name    string
		role    domain.Role
		op      domain.TransactionType
		allowed bool
	}{
		{"user deposits", domain.RoleUser, domain.TransactionTypeDeposit, true},
		{"user withdraws", domain.RoleUser, domain.TransactionTypeWithdraw, true},
		{"user sends money", domain.RoleUser, domain.TransactionTypeSendMoney, true},
		{"user cannot cash in", domain.RoleUser, domain.TransactionTypeCashIn, false},
		{"user cannot cash out", domain.RoleUser, domain.TransactionTypeCashOut, false},
		{"agent cashes in", domain.RoleAgent, domain.TransactionTypeCashIn, true},
		{"agent cashes out", domain.RoleAgent, domain.TransactionTypeCashOut, true},
		{"agent cannot deposit", domain.RoleAgent, domain.TransactionTypeDeposit, false},
		{"agent cannot send money", domain.RoleAgent, domain.TransactionTypeSendMoney, false},
		{"admin cannot deposit", domain.RoleAdmin, domain.TransactionTypeDeposit, false},
		{"admin cannot cash in", domain.RoleAdmin, domain.TransactionTypeCashIn, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.role, tc.op)
			if tc.allowed {
				assert.NoError(t, err)
				return
			}
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "WAL_006", appErr.Code)
		})
	}
}

func TestAuthorize_UnknownOperation(t *testing.T) {
	err := Authorize(domain.RoleUser, domain.TransactionType("REFUND"))
	assert.Error(t, err)
}

func TestCheckWallet(t *testing.T) {
	assert.NoError(t, CheckWallet(&domain.Wallet{Blocked: false}))

	err := CheckWallet(&domain.Wallet{Blocked: true})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_004", appErr.Code)
}

func TestCheckWallets_OneBlockedDeniesAll(t *testing.T) {
	open := &domain.Wallet{Blocked: false}
	blocked := &domain.Wallet{Blocked: true}

	assert.NoError(t, CheckWallets(open, open))
	assert.Error(t, CheckWallets(open, blocked))
	assert.Error(t, CheckWallets(blocked, open))
}
