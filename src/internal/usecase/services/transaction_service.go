package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/corebank-client/src/internal/adapter/http/models"
	"github.com/api-sage/corebank-client/src/internal/commons"
	"github.com/api-sage/corebank-client/src/internal/domain"
	"github.com/api-sage/corebank-client/src/internal/logger"
	"github.com/api-sage/corebank-client/src/internal/observability"
	"github.com/api-sage/corebank-client/src/internal/session"
	"github.com/api-sage/corebank-client/src/internal/usecase/service_interfaces"
	"github.com/google/uuid"
)

// Verify that TransactionService implements the service_interfaces.TransactionService interface
var _ service_interfaces.TransactionService = (*TransactionService)(nil)

// TransactionService records deposits and withdrawals against the local
// stores. There is no remote transaction endpoint yet, so once validation
// passes the workflow cannot fail.
type TransactionService struct {
	session *session.Session
	now     func() time.Time
}

func NewTransactionService(sess *session.Session) *TransactionService {
	return &TransactionService{
		session: sess,
		now:     time.Now,
	}
}

func (s *TransactionService) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service create transaction request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		observability.TransactionsRejected.Inc()
		logger.Error("transaction service create transaction validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", validationProblems(err)...), err
	}

	draft := req.Normalized()
	kind := domain.TransactionKind(draft.Kind)
	amount, err := draft.ParsedAmount()
	if err != nil {
		observability.TransactionsRejected.Inc()
		verr := domain.NewValidationError(err, err.Error())
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", verr.Problems...), verr
	}

	var (
		recorded domain.Transaction
		updated  domain.Account
	)
	err = s.session.Apply(func() error {
		account, err := s.session.Accounts.Get(ctx, draft.AccountID)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return domain.NewValidationError(err, "accountId does not match an existing account")
			}
			return err
		}
		if kind == domain.TransactionKindWithdrawal && account.Balance.Cmp(amount) < 0 {
			return domain.NewValidationError(domain.ErrInsufficientBalance, "amount exceeds the available balance")
		}
		delta := kind.Signed(amount)
		if _, err := account.Balance.AddChecked(delta); err != nil {
			return domain.NewValidationError(err, "amount would take the balance out of range")
		}

		tx := domain.Transaction{
			ID:          uuid.NewString(),
			AccountID:   account.ID,
			Kind:        kind,
			Amount:      amount,
			Description: draft.Description,
			CreatedAt:   s.now().UTC(),
		}

		updated, err = s.session.Accounts.AdjustBalance(ctx, account.ID, delta)
		if err != nil {
			return fmt.Errorf("adjust balance for %s: %w", account.ID, err)
		}

		if err := s.session.Transactions.Record(ctx, tx); err != nil {
			// Undo the balance change so neither half is visible.
			if _, rbErr := s.session.Accounts.AdjustBalance(ctx, account.ID, delta.Neg()); rbErr != nil {
				return errors.Join(fmt.Errorf("record transaction %s: %w", tx.ID, err), rbErr)
			}
			return fmt.Errorf("record transaction %s: %w", tx.ID, err)
		}

		recorded = tx
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			observability.TransactionsRejected.Inc()
			logger.Error("transaction service create transaction rejected", err, logger.Fields{
				"accountId": draft.AccountID,
			})
			return commons.ErrorResponse[models.TransactionResponse]("validation failed", validationProblems(err)...), err
		}

		logger.Error("transaction service create transaction store invariant violated", err, logger.Fields{
			"accountId": draft.AccountID,
		})
		return commons.ErrorResponse[models.TransactionResponse]("failed to record transaction", "Unable to record transaction right now"), err
	}

	observability.TransactionsRecorded.WithLabelValues(string(kind)).Inc()

	logger.Info("transaction service create transaction success", logger.Fields{
		"transactionId": recorded.ID,
		"accountId":     recorded.AccountID,
		"type":          recorded.Kind,
		"amount":        recorded.Amount.String(),
		"balance":       updated.Balance.String(),
	})

	resp := models.TransactionFromDomain(recorded)
	resp.AccountBalance = updated.Balance.String()

	return commons.SuccessResponse("transaction recorded successfully", resp), nil
}
