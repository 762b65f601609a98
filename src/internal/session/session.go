package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/api-sage/corebank-client/src/internal/adapter/repository/memory"
	"github.com/api-sage/corebank-client/src/internal/domain"
)

// Session owns the account and transaction stores for one application
// session. Writes go through Apply and multi-store reads through Read, so a
// balance change is never visible without the transaction that caused it.
type Session struct {
	Accounts     domain.AccountRepository
	Transactions domain.TransactionRepository

	applyMu  sync.RWMutex
	seedDemo bool
}

type Option func(*Session) error

func WithAccountRepository(repo domain.AccountRepository) Option {
	return func(s *Session) error {
		s.Accounts = repo
		return nil
	}
}

func WithTransactionRepository(repo domain.TransactionRepository) Option {
	return func(s *Session) error {
		s.Transactions = repo
		return nil
	}
}

// WithDemoData seeds the two demo accounts and their history once the
// stores are in place.
func WithDemoData() Option {
	return func(s *Session) error {
		s.seedDemo = true
		return nil
	}
}

func New(opts ...Option) (*Session, error) {
	s := &Session{
		Accounts:     memory.NewAccountRepository(),
		Transactions: memory.NewTransactionRepository(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.seedDemo {
		if err := s.seed(context.Background()); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Apply runs fn while holding the session write lock. Multi-store writes
// done inside fn are never interleaved with another Apply.
func (s *Session) Apply(fn func() error) error {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()
	return fn()
}

// Read runs fn under the session read lock. It may run concurrently with
// other reads but never with Apply.
func (s *Session) Read(fn func()) {
	s.applyMu.RLock()
	defer s.applyMu.RUnlock()
	fn()
}

func (s *Session) seed(ctx context.Context) error {
	for _, a := range demoAccounts() {
		if err := s.Accounts.Insert(ctx, a); err != nil {
			return fmt.Errorf("seed account %s: %w", a.ID, err)
		}
	}
	// Oldest first so the log ends up most-recent-first.
	for _, tx := range demoTransactions() {
		if err := s.Transactions.Record(ctx, tx); err != nil {
			return fmt.Errorf("seed transaction %s: %w", tx.ID, err)
		}
	}
	return nil
}

func demoAccounts() []domain.Account {
	opened := time.Date(2025, time.February, 28, 9, 0, 0, 0, time.UTC)
	return []domain.Account{
		{
			ID:        "1",
			Name:      "Checking Account",
			Owner:     "John Doe",
			Type:      domain.AccountTypeChecking,
			Balance:   domain.MoneyFromMinor(250075),
			CreatedAt: opened,
		},
		{
			ID:        "2",
			Name:      "Savings Account",
			Owner:     "John Doe",
			Type:      domain.AccountTypeSavings,
			Balance:   domain.MoneyFromMinor(1500050),
			CreatedAt: opened,
		},
	}
}

func demoTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:          "1",
			AccountID:   "1",
			Kind:        domain.TransactionKindDeposit,
			Amount:      domain.MoneyFromMinor(100000),
			Description: "Initial deposit",
			CreatedAt:   time.Date(2025, time.March, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			AccountID:   "1",
			Kind:        domain.TransactionKindWithdrawal,
			Amount:      domain.MoneyFromMinor(20000),
			Description: "ATM withdrawal",
			CreatedAt:   time.Date(2025, time.March, 5, 14, 15, 0, 0, time.UTC),
		},
	}
}
