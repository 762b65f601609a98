package memory_test

import (
	"context"
	"math"
	"testing"

	"github.com/api-sage/corebank-client/src/internal/adapter/repository/memory"
	"github.com/api-sage/corebank-client/src/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, raw string) domain.Money {
	t.Helper()
	m, err := domain.MoneyOf(raw)
	require.NoError(t, err)
	return m
}

func TestAccountRepositoryInsertListGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	require.NoError(t, repo.Insert(ctx, domain.Account{ID: "b", Name: "Second", Balance: money(t, "5")}))
	require.NoError(t, repo.Insert(ctx, domain.Account{ID: "a", Name: "First", Balance: money(t, "10")}))

	all := repo.List(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID, "insertion order is kept")
	assert.Equal(t, "a", all[1].ID)

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "10.00", got.Balance.String())

	assert.Equal(t, all, repo.List(ctx), "List is idempotent")
}

func TestAccountRepositoryRejectsDuplicateAndEmptyIDs(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	require.NoError(t, repo.Insert(ctx, domain.Account{ID: "42"}))
	assert.ErrorIs(t, repo.Insert(ctx, domain.Account{ID: "42"}), domain.ErrDuplicateID)
	assert.ErrorIs(t, repo.Insert(ctx, domain.Account{ID: "  "}), domain.ErrInvalidAccount)
	assert.Len(t, repo.List(ctx), 1)
}

func TestAccountRepositoryGetUnknown(t *testing.T) {
	_, err := memory.NewAccountRepository().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepositoryAdjustBalance(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	require.NoError(t, repo.Insert(ctx, domain.Account{ID: "1", Balance: domain.ZeroMoney()}))

	updated, err := repo.AdjustBalance(ctx, "1", money(t, "1000.00"))
	require.NoError(t, err)
	assert.Equal(t, "1000.00", updated.Balance.String())

	updated, err = repo.AdjustBalance(ctx, "1", money(t, "-200.00"))
	require.NoError(t, err)
	assert.Equal(t, "800.00", updated.Balance.String())

	_, err = repo.AdjustBalance(ctx, "missing", money(t, "1"))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	require.NoError(t, repo.Insert(ctx, domain.Account{ID: "1", Name: "Original"}))

	got, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	got.Name = "Changed"

	list := repo.List(ctx)
	list[0].Name = "Changed"

	again, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name)
}

func TestAccountRepositoryTotalBalance(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	total, err := repo.TotalBalance(ctx)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	require.NoError(t, repo.Insert(ctx, domain.Account{ID: "1", Balance: money(t, "2500.75")}))
	require.NoError(t, repo.Insert(ctx, domain.Account{ID: "2", Balance: money(t, "15000.50")}))

	total, err = repo.TotalBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "17501.25", total.String())
}

func TestAccountRepositoryBalanceOverflowIsRejected(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	require.NoError(t, repo.Insert(ctx, domain.Account{ID: "1", Balance: domain.MoneyFromMinor(math.MaxInt64)}))

	_, err := repo.AdjustBalance(ctx, "1", domain.MoneyFromMinor(1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	got, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got.Balance.Minor(), "balance is left untouched")

	require.NoError(t, repo.Insert(ctx, domain.Account{ID: "2", Balance: domain.MoneyFromMinor(1)}))
	_, err = repo.TotalBalance(ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
