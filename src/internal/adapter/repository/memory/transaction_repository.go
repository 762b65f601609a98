package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/api-sage/corebank-client/src/internal/domain"
)

// TransactionRepository holds the transaction log most-recent-first and
// keeps the recent projection in step with it on every write.
type TransactionRepository struct {
	mu     sync.RWMutex
	log    []domain.Transaction
	ids    map[string]struct{}
	recent []domain.Transaction
	limit  int
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		ids:    make(map[string]struct{}),
		recent: []domain.Transaction{},
		limit:  domain.RecentTransactionsLimit,
	}
}

func (r *TransactionRepository) List(_ context.Context) []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, len(r.log))
	copy(out, r.log)
	return out
}

func (r *TransactionRepository) ListByAccount(_ context.Context, accountID string) []domain.Transaction {
	accountID = strings.TrimSpace(accountID)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, 0)
	for _, tx := range r.log {
		if tx.AccountID == accountID {
			out = append(out, tx)
		}
	}

	return out
}

func (r *TransactionRepository) Record(_ context.Context, transaction domain.Transaction) error {
	if strings.TrimSpace(transaction.ID) == "" {
		return fmt.Errorf("%w: transaction id is required", domain.ErrValidation)
	}
	if !transaction.Amount.IsPositive() {
		return fmt.Errorf("%w: transaction amount must be greater than zero", domain.ErrInvalidAmount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[transaction.ID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, transaction.ID)
	}

	log := make([]domain.Transaction, 0, len(r.log)+1)
	log = append(log, transaction)
	log = append(log, r.log...)
	r.log = log
	r.ids[transaction.ID] = struct{}{}
	r.refreshRecent()

	return nil
}

func (r *TransactionRepository) Recent(_ context.Context) []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, len(r.recent))
	copy(out, r.recent)
	return out
}

// refreshRecent must be called with mu held for writing.
func (r *TransactionRepository) refreshRecent() {
	n := min(len(r.log), r.limit)
	recent := make([]domain.Transaction, n)
	copy(recent, r.log[:n])
	r.recent = recent
}
