package domain

import "context"

type CreateAccountCommand struct {
	CorrelationID string
	Owner         string
	Email         string
	Type          AccountType
	Balance       Money
}

// BankingService is the remote system of record for accounts.
type BankingService interface {
	CreateAccount(ctx context.Context, cmd CreateAccountCommand) (Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
}
