package domain

import "context"

const RecentTransactionsLimit = 5

// TransactionRepository owns the most-recent-first transaction log and its
// bounded recent projection.
type TransactionRepository interface {
	List(ctx context.Context) []Transaction
	ListByAccount(ctx context.Context, accountID string) []Transaction
	Record(ctx context.Context, transaction Transaction) error
	Recent(ctx context.Context) []Transaction
}
