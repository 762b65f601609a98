package models

import (
	"time"

	"github.com/api-sage/corebank-client/src/internal/domain"
)

func AccountFromDomain(account domain.Account) AccountResponse {
	resp := AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Owner:     account.Owner,
		Type:      string(account.Type),
		Balance:   account.Balance.String(),
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
	}
	if account.AccountNumber != nil {
		resp.AccountNumber = *account.AccountNumber
	}
	if account.APY != nil {
		resp.APY = account.APY.String()
	}
	return resp
}

func AccountsFromDomain(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountFromDomain(a))
	}
	return out
}

// TransactionFromDomain leaves AccountBalance empty; only the create path
// knows the balance the transaction produced.
func TransactionFromDomain(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		AccountID:   tx.AccountID,
		Type:        string(tx.Kind),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Date:        tx.CreatedAt.Format(time.RFC3339),
	}
}

func TransactionsFromDomain(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionFromDomain(tx))
	}
	return out
}
