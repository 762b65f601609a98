package domain

import "context"

// AccountRepository owns account records. AdjustBalance is the only path for
// changing a balance after insertion.
type AccountRepository interface {
	List(ctx context.Context) []Account
	Get(ctx context.Context, id string) (Account, error)
	Insert(ctx context.Context, account Account) error
	AdjustBalance(ctx context.Context, id string, delta Money) (Account, error)
	TotalBalance(ctx context.Context) (Money, error)
}
