package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/api-sage/corebank-client/src/internal/adapter/http/models"
	"github.com/api-sage/corebank-client/src/internal/commons"
	"github.com/api-sage/corebank-client/src/internal/domain"
	"github.com/api-sage/corebank-client/src/internal/logger"
)

type TransactionService interface {
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (commons.Response[models.TransactionResponse], error)
}

type TransactionQueries interface {
	ListTransactions(ctx context.Context) []domain.Transaction
	RecentTransactions(ctx context.Context) []domain.Transaction
}

type TransactionController struct {
	service TransactionService
	queries TransactionQueries
}

func NewTransactionController(service TransactionService, queries TransactionQueries) *TransactionController {
	return &TransactionController{service: service, queries: queries}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, mw func(http.Handler) http.Handler) {
	transactions := http.Handler(http.HandlerFunc(c.transactions))
	recent := http.Handler(http.HandlerFunc(c.recentTransactions))
	if mw != nil {
		transactions = mw(transactions)
		recent = mw(recent)
	}
	mux.Handle("/transactions", transactions)
	mux.Handle("/transactions/recent", recent)
}

func (c *TransactionController) transactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.createTransaction(w, r)
	case http.MethodGet:
		c.listTransactions(w, r)
	default:
		methodNotAllowed[models.TransactionResponse](w, r, time.Now())
	}
}

func (c *TransactionController) createTransaction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	var req models.CreateTransactionRequest
	if !decodeBody[models.TransactionResponse](w, r, &req, start) {
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateTransaction(r.Context(), req)
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

func (c *TransactionController) listTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response := commons.SuccessResponse("transactions retrieved successfully", models.TransactionsFromDomain(c.queries.ListTransactions(r.Context())))
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *TransactionController) recentTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		methodNotAllowed[[]models.TransactionResponse](w, r, start)
		return
	}

	response := commons.SuccessResponse("recent transactions retrieved successfully", models.TransactionsFromDomain(c.queries.RecentTransactions(r.Context())))
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
