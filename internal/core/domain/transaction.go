package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeDeposit   TransactionType = "DEPOSIT"
	TransactionTypeWithdraw  TransactionType = "WITHDRAW"
	TransactionTypeSendMoney TransactionType = "SEND_MONEY"
	TransactionTypeCashIn    TransactionType = "CASH_IN"
	TransactionTypeCashOut   TransactionType = "CASH_OUT"
)

// TransactionStatus represents the lifecycle state of a ledger record.
// Every record written today is COMPLETED: it is appended only after its
// balance mutation has been applied, inside the same unit of work.
// PENDING and FAILED are reserved for future asynchronous flows.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction is an immutable ledger entry describing one completed
// balance-affecting operation. Records are never updated or deleted;
// the repository exposes no mutation path.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      int64             `json:"amount"` // In minor units, always > 0
	Fee         int64             `json:"fee"`    // Reserved; always 0 today
	FromWallet  *uuid.UUID        `json:"from_wallet,omitempty"`
	ToWallet    *uuid.UUID        `json:"to_wallet,omitempty"`
	InitiatedBy uuid.UUID         `json:"initiated_by"`
	Status      TransactionStatus `json:"status"`
	Description *string           `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Credits returns true for types that add money to toWallet.
func (t TransactionType) Credits() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeCashIn
}

// Debits returns true for types that remove money from fromWallet.
func (t TransactionType) Debits() bool {
	return t == TransactionTypeWithdraw || t == TransactionTypeCashOut
}
