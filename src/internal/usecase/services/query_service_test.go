package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/corebank-client/src/internal/domain"
	"github.com/api-sage/corebank-client/src/internal/session"
	"github.com/api-sage/corebank-client/src/internal/usecase/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryServiceOverDemoData(t *testing.T) {
	ctx := context.Background()
	queries := services.NewQueryService(newSession(t, session.WithDemoData()))

	accounts := queries.ListAccounts(ctx)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Checking Account", accounts[0].Name)
	assert.Equal(t, "Savings Account", accounts[1].Name)
	total, err := queries.TotalBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "17501.25", total.String())

	recent := queries.RecentTransactions(ctx)
	require.Len(t, recent, 2)
	assert.Equal(t, "ATM withdrawal", recent[0].Description)
	assert.Equal(t, "Initial deposit", recent[1].Description)

	assert.Len(t, queries.AccountTransactions(ctx, "1"), 2)
	assert.Empty(t, queries.AccountTransactions(ctx, "2"))

	_, err = queries.GetAccount(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestQueryServiceReadsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	queries := services.NewQueryService(newSession(t, session.WithDemoData()))

	assert.Equal(t, queries.ListAccounts(ctx), queries.ListAccounts(ctx))
	assert.Equal(t, queries.ListTransactions(ctx), queries.ListTransactions(ctx))
	assert.Equal(t, queries.RecentTransactions(ctx), queries.RecentTransactions(ctx))
}

func TestQueryServiceEmptySession(t *testing.T) {
	ctx := context.Background()
	queries := services.NewQueryService(newSession(t))

	assert.Empty(t, queries.ListAccounts(ctx))
	assert.Empty(t, queries.ListTransactions(ctx))
	assert.NotNil(t, queries.RecentTransactions(ctx))
	total, err := queries.TotalBalance(ctx)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}
