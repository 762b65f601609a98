package domain

import "time"

type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "deposit"
	TransactionKindWithdrawal TransactionKind = "withdrawal"
)

func (k TransactionKind) Valid() bool {
	return k == TransactionKindDeposit || k == TransactionKindWithdrawal
}

// Signed returns the balance delta for amount: positive for deposits,
// negative for withdrawals.
func (k TransactionKind) Signed(amount Money) Money {
	if k == TransactionKindWithdrawal {
		return amount.Neg()
	}
	return amount
}

// Transaction is immutable once recorded. Amount is always a positive
// magnitude; the direction comes from Kind.
type Transaction struct {
	ID          string
	AccountID   string
	Kind        TransactionKind
	Amount      Money
	Description string
	CreatedAt   time.Time
}
