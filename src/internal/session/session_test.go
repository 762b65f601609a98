package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/corebank-client/src/internal/adapter/repository/memory"
	"github.com/api-sage/corebank-client/src/internal/domain"
	"github.com/api-sage/corebank-client/src/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsEmpty(t *testing.T) {
	sess, err := session.New()
	require.NoError(t, err)

	ctx := context.Background()
	assert.Empty(t, sess.Accounts.List(ctx))
	assert.Empty(t, sess.Transactions.List(ctx))
}

func TestWithDemoDataSeedsAccountsAndHistory(t *testing.T) {
	sess, err := session.New(session.WithDemoData())
	require.NoError(t, err)

	ctx := context.Background()
	checking, err := sess.Accounts.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "2500.75", checking.Balance.String())
	assert.Equal(t, "John Doe", checking.Owner)

	savings, err := sess.Accounts.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountTypeSavings, savings.Type)
	assert.Equal(t, "15000.50", savings.Balance.String())

	log := sess.Transactions.List(ctx)
	require.Len(t, log, 2)
	assert.Equal(t, "2", log[0].ID)
	assert.Equal(t, "1", log[1].ID)
}

func TestDemoDataGoesIntoInjectedStores(t *testing.T) {
	accounts := memory.NewAccountRepository()
	sess, err := session.New(session.WithDemoData(), session.WithAccountRepository(accounts))
	require.NoError(t, err)

	assert.Len(t, accounts.List(context.Background()), 2)
	assert.Same(t, accounts, sess.Accounts)
}

func TestApplyPropagatesError(t *testing.T) {
	sess, err := session.New()
	require.NoError(t, err)

	boom := errors.New("boom")
	assert.ErrorIs(t, sess.Apply(func() error { return boom }), boom)

	called := false
	sess.Read(func() { called = true })
	assert.True(t, called)
}
