package service_interfaces

import (
	"context"

	"github.com/api-sage/corebank-client/src/internal/domain"
)

// QueryService is the read side exposed to the presentation layer.
type QueryService interface {
	ListAccounts(ctx context.Context) []domain.Account
	GetAccount(ctx context.Context, id string) (domain.Account, error)
	ListTransactions(ctx context.Context) []domain.Transaction
	RecentTransactions(ctx context.Context) []domain.Transaction
	AccountTransactions(ctx context.Context, accountID string) []domain.Transaction
	TotalBalance(ctx context.Context) (domain.Money, error)
}
