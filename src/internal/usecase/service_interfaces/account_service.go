package service_interfaces

import (
	"context"

	"github.com/api-sage/corebank-client/src/internal/adapter/http/models"
	"github.com/api-sage/corebank-client/src/internal/commons"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	SyncAccounts(ctx context.Context) (commons.Response[models.SyncAccountsResponse], error)
	PendingSubmissions() []string
}
