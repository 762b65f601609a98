package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/api-sage/corebank-client/src/internal/domain"
	"github.com/api-sage/corebank-client/src/internal/logger"
	"github.com/api-sage/corebank-client/src/internal/observability"
	"golang.org/x/time/rate"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"

	accountsPath    = "/accounts"
	maxResponseSize = 1 << 20

	opCreateAccount = "create_account"
	opListAccounts  = "list_accounts"
)

// Verify that BankClient satisfies the port used by the coordinator.
var _ domain.BankingService = (*BankClient)(nil)

// BankClient talks to the remote banking service over HTTP. It never retries;
// a failed call is reported once and a retry is a new submission.
type BankClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

type Option func(*BankClient)

func WithHTTPClient(c *http.Client) Option {
	return func(b *BankClient) {
		if c != nil {
			b.httpClient = c
		}
	}
}

// WithRateLimit caps outbound calls at perSecond with the given burst.
// A non-positive perSecond disables throttling.
func WithRateLimit(perSecond int, burst int) Option {
	return func(b *BankClient) {
		if perSecond <= 0 {
			b.limiter = nil
			return
		}
		b.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

func NewBankClient(baseURL string, opts ...Option) *BankClient {
	c := &BankClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: NewHTTPClient(DefaultTransportConfig()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *BankClient) CreateAccount(ctx context.Context, cmd domain.CreateAccountCommand) (domain.Account, error) {
	payload := createAccountPayload{
		Owner:   cmd.Owner,
		Email:   cmd.Email,
		Type:    string(cmd.Type),
		Balance: cmd.Balance,
	}

	var record accountRecord
	if err := c.do(ctx, opCreateAccount, http.MethodPost, accountsPath, cmd.CorrelationID, payload, http.StatusCreated, &record); err != nil {
		return domain.Account{}, err
	}

	if record.ID == "" {
		return domain.Account{}, &domain.TransportError{
			Operation:  opCreateAccount,
			StatusCode: http.StatusCreated,
			Cause:      fmt.Errorf("response is missing account id"),
		}
	}

	// An omitted balance is not the same as 0.00; keep what was submitted.
	if record.Balance == nil {
		record.Balance = &cmd.Balance
	}

	return record.toDomain(), nil
}

func (c *BankClient) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var records []accountRecord
	if err := c.do(ctx, opListAccounts, http.MethodGet, accountsPath, "", nil, http.StatusOK, &records); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			logger.Warn("bank client skipped account without id", logger.Fields{"owner": r.Owner})
			continue
		}
		accounts = append(accounts, r.toDomain())
	}

	return accounts, nil
}

func (c *BankClient) do(ctx context.Context, op string, method string, path string, correlationID string, body any, wantStatus int, out any) error {
	start := time.Now()
	status := "error"
	defer func() {
		observability.RemoteCallLatency.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &domain.TransportError{Operation: op, Cause: fmt.Errorf("rate limiter: %w", err)}
		}
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &domain.TransportError{Operation: op, Cause: fmt.Errorf("marshal request body: %w", err)}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.TransportError{Operation: op, Cause: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if correlationID != "" {
		req.Header.Set(CorrelationIDHeader, correlationID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("bank client request failed", err, logger.Fields{
			"operation":     op,
			"correlationId": correlationID,
		})
		return &domain.TransportError{Operation: op, Cause: err}
	}
	defer resp.Body.Close()
	status = strconv.Itoa(resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &domain.TransportError{Operation: op, StatusCode: resp.StatusCode, Cause: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode != wantStatus {
		message := serverMessage(raw)
		logger.Warn("bank client unexpected status", logger.Fields{
			"operation":     op,
			"status":        resp.StatusCode,
			"message":       message,
			"correlationId": correlationID,
		})
		return &domain.TransportError{Operation: op, StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.TransportError{Operation: op, StatusCode: resp.StatusCode, Cause: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

func serverMessage(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Message)
}
