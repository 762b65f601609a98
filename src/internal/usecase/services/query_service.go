package services

import (
	"context"

	"github.com/api-sage/corebank-client/src/internal/domain"
	"github.com/api-sage/corebank-client/src/internal/session"
	"github.com/api-sage/corebank-client/src/internal/usecase/service_interfaces"
)

// Verify that QueryService implements the service_interfaces.QueryService interface
var _ service_interfaces.QueryService = (*QueryService)(nil)

// QueryService reads under the session read lock so it never observes a
// half-applied transaction.
type QueryService struct {
	session *session.Session
}

func NewQueryService(sess *session.Session) *QueryService {
	return &QueryService{session: sess}
}

func (s *QueryService) ListAccounts(ctx context.Context) []domain.Account {
	var out []domain.Account
	s.session.Read(func() { out = s.session.Accounts.List(ctx) })
	return out
}

func (s *QueryService) GetAccount(ctx context.Context, id string) (domain.Account, error) {
	var (
		account domain.Account
		err     error
	)
	s.session.Read(func() { account, err = s.session.Accounts.Get(ctx, id) })
	return account, err
}

func (s *QueryService) ListTransactions(ctx context.Context) []domain.Transaction {
	var out []domain.Transaction
	s.session.Read(func() { out = s.session.Transactions.List(ctx) })
	return out
}

func (s *QueryService) RecentTransactions(ctx context.Context) []domain.Transaction {
	var out []domain.Transaction
	s.session.Read(func() { out = s.session.Transactions.Recent(ctx) })
	return out
}

func (s *QueryService) AccountTransactions(ctx context.Context, accountID string) []domain.Transaction {
	var out []domain.Transaction
	s.session.Read(func() { out = s.session.Transactions.ListByAccount(ctx, accountID) })
	return out
}

func (s *QueryService) TotalBalance(ctx context.Context) (domain.Money, error) {
	var (
		total domain.Money
		err   error
	)
	s.session.Read(func() { total, err = s.session.Accounts.TotalBalance(ctx) })
	return total, err
}
