package models

import (
	"errors"
	"strings"

	"github.com/api-sage/corebank-client/src/internal/domain"
)

// CreateAccountRequest is the create-account intent as drafted by the form.
// An empty InitialBalance means 0.00.
type CreateAccountRequest struct {
	CorrelationID  string `json:"correlationId,omitempty"`
	Name           string `json:"name" validate:"required,max=120"`
	Email          string `json:"email" validate:"required,email"`
	Type           string `json:"type" validate:"required,oneof=checking savings business"`
	InitialBalance string `json:"initialBalance,omitempty"`
}

func (r CreateAccountRequest) Normalized() CreateAccountRequest {
	return CreateAccountRequest{
		CorrelationID:  strings.TrimSpace(r.CorrelationID),
		Name:           strings.TrimSpace(r.Name),
		Email:          strings.TrimSpace(r.Email),
		Type:           strings.ToLower(strings.TrimSpace(r.Type)),
		InitialBalance: strings.TrimSpace(r.InitialBalance),
	}
}

func (r CreateAccountRequest) Validate() error {
	n := r.Normalized()
	problems := structProblems(n)

	var cause error
	if _, err := n.Balance(); err != nil {
		problems = append(problems, "initialBalance must be a non-negative amount with at most two decimals")
		cause = errors.Join(domain.ErrValidation, err)
	}

	return validationResult(problems, cause)
}

// Balance parses InitialBalance. Call Validate first.
func (r CreateAccountRequest) Balance() (domain.Money, error) {
	raw := strings.TrimSpace(r.InitialBalance)
	if raw == "" {
		return domain.ZeroMoney(), nil
	}
	return domain.NonNegativeMoneyOf(raw)
}

type AccountResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Owner         string `json:"owner"`
	Type          string `json:"type"`
	Balance       string `json:"balance"`
	AccountNumber string `json:"accountNumber,omitempty"`
	APY           string `json:"apy,omitempty"`
	CreatedAt     string `json:"createdAt"`
}
