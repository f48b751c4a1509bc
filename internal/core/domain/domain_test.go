package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		status UserStatus
		want   bool
	}{
		{"active", UserStatusActive, true},
		{"blocked", UserStatusBlocked, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{Status: tt.status}
			assert.Equal(t, tt.want, u.IsActive())
		})
	}
}

func TestRole_HoldsWallet(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want bool
	}{
		{"user", RoleUser, true},
		{"agent", RoleAgent, true},
		{"admin", RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.HoldsWallet())
		})
	}
}

func TestTransactionType_Credits(t *testing.T) {
	tests := []struct {
		name   string
		txType TransactionType
		want   bool
	}{
		{"deposit", TransactionTypeDeposit, true},
		{"cash-in", TransactionTypeCashIn, true},
		{"withdraw", TransactionTypeWithdraw, false},
		{"cash-out", TransactionTypeCashOut, false},
		{"send money", TransactionTypeSendMoney, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txType.Credits())
		})
	}
}

func TestTransactionType_Debits(t *testing.T) {
	tests := []struct {
		name   string
		txType TransactionType
		want   bool
	}{
		{"withdraw", TransactionTypeWithdraw, true},
		{"cash-out", TransactionTypeCashOut, true},
		{"deposit", TransactionTypeDeposit, false},
		{"cash-in", TransactionTypeCashIn, false},
		{"send money", TransactionTypeSendMoney, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txType.Debits())
		})
	}
}

func TestRole_Constants(t *testing.T) {
	assert.Equal(t, Role("ADMIN"), RoleAdmin)
	assert.Equal(t, Role("AGENT"), RoleAgent)
	assert.Equal(t, Role("USER"), RoleUser)
}

func TestTransactionType_Constants(t *testing.T) {
	assert.Equal(t, TransactionType("DEPOSIT"), TransactionTypeDeposit)
	assert.Equal(t, TransactionType("WITHDRAW"), TransactionTypeWithdraw)
	assert.Equal(t, TransactionType("SEND_MONEY"), TransactionTypeSendMoney)
	assert.Equal(t, TransactionType("CASH_IN"), TransactionTypeCashIn)
	assert.Equal(t, TransactionType("CASH_OUT"), TransactionTypeCashOut)
}

func TestTransactionStatus_Constants(t *testing.T) {
	assert.Equal(t, TransactionStatus("PENDING"), TransactionStatusPending)
	assert.Equal(t, TransactionStatus("COMPLETED"), TransactionStatusCompleted)
	assert.Equal(t, TransactionStatus("FAILED"), TransactionStatusFailed)
}
