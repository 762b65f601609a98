package service_interfaces

import (
	"context"

	"github.com/api-sage/corebank-client/src/internal/adapter/http/models"
	"github.com/api-sage/corebank-client/src/internal/commons"
)

type TransactionService interface {
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (commons.Response[models.TransactionResponse], error)
}
