package models

import (
	"errors"
	"strings"

	"github.com/api-sage/corebank-client/src/internal/domain"
)

type CreateTransactionRequest struct {
	AccountID   string `json:"accountId" validate:"required"`
	Kind        string `json:"type" validate:"required,oneof=deposit withdrawal"`
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description" validate:"required,max=255"`
}

func (r CreateTransactionRequest) Normalized() CreateTransactionRequest {
	return CreateTransactionRequest{
		AccountID:   strings.TrimSpace(r.AccountID),
		Kind:        strings.ToLower(strings.TrimSpace(r.Kind)),
		Amount:      strings.TrimSpace(r.Amount),
		Description: strings.TrimSpace(r.Description),
	}
}

func (r CreateTransactionRequest) Validate() error {
	n := r.Normalized()
	problems := structProblems(n)

	var cause error
	if n.Amount != "" {
		if _, err := n.ParsedAmount(); err != nil {
			problems = append(problems, "amount must be greater than zero with at most two decimals")
			cause = errors.Join(domain.ErrValidation, err)
		}
	}

	return validationResult(problems, cause)
}

// ParsedAmount returns the transaction magnitude, which must be > 0.
func (r CreateTransactionRequest) ParsedAmount() (domain.Money, error) {
	amount, err := domain.NonNegativeMoneyOf(r.Amount)
	if err != nil {
		return domain.Money{}, err
	}
	if !amount.IsPositive() {
		return domain.Money{}, errors.Join(domain.ErrInvalidAmount, errors.New("amount must be greater than zero"))
	}
	return amount, nil
}

type TransactionResponse struct {
	ID             string `json:"id"`
	AccountID      string `json:"accountId"`
	Type           string `json:"type"`
	Amount         string `json:"amount"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	AccountBalance string `json:"accountBalance,omitempty"`
}

type TotalBalanceResponse struct {
	AccountCount int    `json:"accountCount"`
	TotalBalance string `json:"totalBalance"`
}

type SyncAccountsResponse struct {
	Fetched  int      `json:"fetched"`
	Inserted []string `json:"inserted"`
}
