// Package policy holds the pure access checks consulted by the transfer
// engine before any balance mutation. No I/O, no state: the result is a
// function of the actor's role, the operation kind, and the wallet record
// loaded inside the current unit of work.
package policy

import (
	"digital-wallet-api/internal/core/domain"
	"digital-wallet-api/pkg/apperror"
)

// operationRoles maps each transfer operation to the single role allowed
// to initiate it. Deposit/withdraw/send act on the actor's own wallet;
// cash-in/cash-out are agent operations on another user's wallet.
var operationRoles = map[domain.TransactionType]domain.Role{
	domain.TransactionTypeDeposit:   domain.RoleUser,
	domain.TransactionTypeWithdraw:  domain.RoleUser,
	domain.TransactionTypeSendMoney: domain.RoleUser,
	domain.TransactionTypeCashIn:    domain.RoleAgent,
	domain.TransactionTypeCashOut:   domain.RoleAgent,
}

// Authorize checks whether the actor's role may initiate the given operation.
func Authorize(role domain.Role, op domain.TransactionType) error {
	required, ok := operationRoles[op]
	if !ok || role != required {
		return apperror.ErrRoleNotPermitted()
	}
	return nil
}

// CheckWallet gates mutation of a wallet: blocked wallets may be read
// but never transacted against.
func CheckWallet(w *domain.Wallet) error {
	if w.Blocked {
		return apperror.ErrWalletBlocked()
	}
	return nil
}

// CheckWallets applies CheckWallet to every wallet involved in an
// operation; a single blocked wallet denies the whole operation.
func CheckWallets(wallets ...*domain.Wallet) error {
	for _, w := range wallets {
		if err := CheckWallet(w); err != nil {
			return err
		}
	}
	return nil
}
