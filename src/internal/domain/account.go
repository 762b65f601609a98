package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeBusiness AccountType = "business"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeBusiness:
		return true
	default:
		return false
	}
}

// Account is a confirmed account. Its ID is assigned by the remote banking
// service; unconfirmed accounts never reach the store.
type Account struct {
	ID            string
	Name          string
	Owner         string
	Email         string
	Type          AccountType
	Balance       Money
	AccountNumber *string
	APY           *decimal.Decimal
	CreatedAt     time.Time
}
