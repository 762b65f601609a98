package client

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/api-sage/corebank-client/src/internal/domain"
	"github.com/shopspring/decimal"
)

type createAccountPayload struct {
	Owner   string       `json:"owner"`
	Email   string       `json:"email"`
	Type    string       `json:"type"`
	Balance domain.Money `json:"balance"`
}

// accountRecord is the account shape returned by the remote service. The
// service has used both camelCase and snake_case field names over time.
type accountRecord struct {
	ID            flexibleID       `json:"id"`
	Name          string           `json:"name"`
	Owner         string           `json:"owner"`
	Email         string           `json:"email"`
	Type          string           `json:"type"`
	AccountType   string           `json:"account_type"`
	Balance       *domain.Money    `json:"balance"`
	AccountNumber *string          `json:"accountNumber"`
	APY           *decimal.Decimal `json:"apy"`
	CreatedAt     *time.Time       `json:"created_at"`
	CreatedAtAlt  *time.Time       `json:"createdAt"`
}

func (r accountRecord) toDomain() domain.Account {
	accountType := strings.ToLower(strings.TrimSpace(r.Type))
	if accountType == "" {
		accountType = strings.ToLower(strings.TrimSpace(r.AccountType))
	}

	balance := domain.ZeroMoney()
	if r.Balance != nil {
		balance = *r.Balance
	}

	var createdAt time.Time
	switch {
	case r.CreatedAt != nil:
		createdAt = r.CreatedAt.UTC()
	case r.CreatedAtAlt != nil:
		createdAt = r.CreatedAtAlt.UTC()
	}

	return domain.Account{
		ID:            string(r.ID),
		Name:          strings.TrimSpace(r.Name),
		Owner:         strings.TrimSpace(r.Owner),
		Email:         strings.TrimSpace(r.Email),
		Type:          domain.AccountType(accountType),
		Balance:       balance,
		AccountNumber: r.AccountNumber,
		APY:           r.APY,
		CreatedAt:     createdAt,
	}
}

type errorBody struct {
	Message string `json:"message"`
}

// flexibleID accepts either a JSON string or a JSON number.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}
