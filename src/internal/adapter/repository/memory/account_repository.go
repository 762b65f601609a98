package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/api-sage/corebank-client/src/internal/domain"
)

// AccountRepository keeps confirmed accounts in insertion order. Reads return
// copies so callers cannot mutate stored balances.
type AccountRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{byID: make(map[string]*domain.Account)}
}

func (r *AccountRepository) List(_ context.Context) []domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}

	return out
}

func (r *AccountRepository) Get(_ context.Context, id string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}

	return *account, nil
}

func (r *AccountRepository) Insert(_ context.Context, account domain.Account) error {
	id := strings.TrimSpace(account.ID)
	if id == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidAccount)
	}
	account.ID = id

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, id)
	}

	stored := account
	r.byID[id] = &stored
	r.order = append(r.order, id)

	return nil
}

func (r *AccountRepository) AdjustBalance(_ context.Context, id string, delta domain.Money) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}

	balance, err := account.Balance.AddChecked(delta)
	if err != nil {
		return domain.Account{}, fmt.Errorf("adjust balance for %s: %w", account.ID, err)
	}
	account.Balance = balance

	return *account, nil
}

func (r *AccountRepository) TotalBalance(_ context.Context) (domain.Money, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := domain.ZeroMoney()
	for _, id := range r.order {
		next, err := total.AddChecked(r.byID[id].Balance)
		if err != nil {
			return domain.Money{}, fmt.Errorf("total balance: %w", err)
		}
		total = next
	}

	return total, nil
}
