package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/api-sage/corebank-client/src/internal/adapter/http/middleware"
	"github.com/api-sage/corebank-client/src/internal/adapter/http/models"
	"github.com/api-sage/corebank-client/src/internal/commons"
	"github.com/api-sage/corebank-client/src/internal/domain"
	"github.com/api-sage/corebank-client/src/internal/logger"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	SyncAccounts(ctx context.Context) (commons.Response[models.SyncAccountsResponse], error)
}

type AccountQueries interface {
	ListAccounts(ctx context.Context) []domain.Account
	GetAccount(ctx context.Context, id string) (domain.Account, error)
	AccountTransactions(ctx context.Context, accountID string) []domain.Transaction
	TotalBalance(ctx context.Context) (domain.Money, error)
}

type AccountController struct {
	service AccountService
	queries AccountQueries
}

func NewAccountController(service AccountService, queries AccountQueries) *AccountController {
	return &AccountController{service: service, queries: queries}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, mw func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if mw == nil {
			return h
		}
		return mw(h)
	}

	mux.Handle("/accounts", wrap(c.accounts))
	mux.Handle("/accounts/sync", wrap(c.syncAccounts))
	mux.Handle("/accounts/{id}", wrap(c.getAccount))
	mux.Handle("/accounts/{id}/transactions", wrap(c.accountTransactions))
	mux.Handle("/balances/total", wrap(c.totalBalance))
}

func (c *AccountController) accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.createAccount(w, r)
	case http.MethodGet:
		c.listAccounts(w, r)
	default:
		methodNotAllowed[models.AccountResponse](w, r, time.Now())
	}
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	var req models.CreateAccountRequest
	if !decodeBody[models.AccountResponse](w, r, &req, start) {
		return
	}
	if req.CorrelationID == "" {
		req.CorrelationID = middleware.CorrelationIDFrom(r.Context())
	}
	logRequest(r, req)

	response, err := c.service.CreateAccount(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusFor(err)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response := commons.SuccessResponse("accounts retrieved successfully", models.AccountsFromDomain(c.queries.ListAccounts(r.Context())))
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) syncAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		methodNotAllowed[models.SyncAccountsResponse](w, r, start)
		return
	}

	response, err := c.service.SyncAccounts(r.Context())
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusFor(err)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		methodNotAllowed[models.AccountResponse](w, r, start)
		return
	}

	account, err := c.queries.GetAccount(r.Context(), r.PathValue("id"))
	if err != nil {
		logError(r, err, nil)
		status := statusFor(err)
		response := commons.ErrorResponse[models.AccountResponse]("account not found")
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	response := commons.SuccessResponse("account retrieved successfully", models.AccountFromDomain(account))
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) accountTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		methodNotAllowed[[]models.TransactionResponse](w, r, start)
		return
	}

	id := r.PathValue("id")
	if _, err := c.queries.GetAccount(r.Context(), id); err != nil {
		logError(r, err, nil)
		status := statusFor(err)
		response := commons.ErrorResponse[[]models.TransactionResponse]("account not found")
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	response := commons.SuccessResponse("transactions retrieved successfully", models.TransactionsFromDomain(c.queries.AccountTransactions(r.Context(), id)))
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) totalBalance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		methodNotAllowed[models.TotalBalanceResponse](w, r, start)
		return
	}

	total, err := c.queries.TotalBalance(r.Context())
	if err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.TotalBalanceResponse]("failed to compute total balance")
		writeJSON(w, http.StatusInternalServerError, response)
		logResponse(r, http.StatusInternalServerError, response, start)
		return
	}

	response := commons.SuccessResponse("total balance retrieved successfully", models.TotalBalanceResponse{
		AccountCount: len(c.queries.ListAccounts(r.Context())),
		TotalBalance: total.String(),
	})
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
