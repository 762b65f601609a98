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
	"golang.org/x/sync/singleflight"
)

// Verify that AccountService implements the service_interfaces.AccountService interface
var _ service_interfaces.AccountService = (*AccountService)(nil)

// AccountService drives the create-account workflow. Nothing is written
// locally until the remote service has confirmed the account and assigned
// its id.
type AccountService struct {
	session  *session.Session
	remote   domain.BankingService
	tracker  *submissionTracker
	inflight singleflight.Group
	now      func() time.Time
}

func NewAccountService(sess *session.Session, remote domain.BankingService) *AccountService {
	return &AccountService{
		session: sess,
		remote:  remote,
		tracker: newSubmissionTracker(),
		now:     time.Now,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		observability.AccountSubmissions.WithLabelValues(observability.OutcomeInvalid).Inc()
		logger.Error("account service create account validation failed", err, logger.Fields{
			"state": SubmissionDrafted,
		})
		return commons.ErrorResponse[models.AccountResponse]("validation failed", validationProblems(err)...), err
	}

	draft := req.Normalized()
	balance, err := draft.Balance()
	if err != nil {
		observability.AccountSubmissions.WithLabelValues(observability.OutcomeInvalid).Inc()
		verr := domain.NewValidationError(err, err.Error())
		return commons.ErrorResponse[models.AccountResponse]("validation failed", verr.Problems...), verr
	}

	correlationID := draft.CorrelationID
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	cmd := domain.CreateAccountCommand{
		CorrelationID: correlationID,
		Owner:         draft.Name,
		Email:         draft.Email,
		Type:          domain.AccountType(draft.Type),
		Balance:       balance,
	}

	// A resubmission of an in-flight intent shares the first call's result
	// instead of creating a second account.
	ch := s.inflight.DoChan(correlationID, func() (any, error) {
		return s.submit(ctx, cmd, draft.Name)
	})
	s.tracker.attach(correlationID)
	res := <-ch
	s.tracker.detach(correlationID)

	v, err, shared := res.Val, res.Err, res.Shared
	if err != nil {
		observability.AccountSubmissions.WithLabelValues(observability.OutcomeFailed).Inc()
		if errors.Is(err, domain.ErrTransport) {
			logger.Error("account service create account remote call failed", err, logger.Fields{
				"correlationId": correlationID,
				"state":         SubmissionFailed,
			})
			return commons.RetryableErrorResponse[models.AccountResponse]("failed to create account", transportMessage(err)), err
		}

		logger.Error("account service create account store invariant violated", err, logger.Fields{
			"correlationId": correlationID,
			"state":         SubmissionFailed,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", DefaultCreateAccountFailure), err
	}

	account := v.(domain.Account)
	observability.AccountSubmissions.WithLabelValues(observability.OutcomeConfirmed).Inc()

	logger.Info("account service create account success", logger.Fields{
		"accountId":     account.ID,
		"correlationId": correlationID,
		"shared":        shared,
		"state":         SubmissionConfirmed,
	})

	return commons.SuccessResponse("account created successfully", models.AccountFromDomain(account)), nil
}

func (s *AccountService) submit(ctx context.Context, cmd domain.CreateAccountCommand, displayName string) (domain.Account, error) {
	s.tracker.begin(cmd.CorrelationID)
	defer s.tracker.end(cmd.CorrelationID)

	logger.Info("account service create account submitting", logger.Fields{
		"correlationId": cmd.CorrelationID,
		"state":         SubmissionSubmitting,
	})

	confirmed, err := s.remote.CreateAccount(ctx, cmd)
	if err != nil {
		return domain.Account{}, err
	}

	account := s.reconcile(confirmed, cmd, displayName)

	err = s.session.Apply(func() error {
		return s.session.Accounts.Insert(ctx, account)
	})
	if err != nil {
		return domain.Account{}, fmt.Errorf("insert confirmed account %s: %w", account.ID, err)
	}

	return account, nil
}

// reconcile takes the server record as authoritative and fills in only the
// fields it left out from what was submitted.
func (s *AccountService) reconcile(confirmed domain.Account, cmd domain.CreateAccountCommand, displayName string) domain.Account {
	account := confirmed
	if account.Owner == "" {
		account.Owner = cmd.Owner
	}
	if account.Name == "" {
		account.Name = displayName
	}
	if account.Email == "" {
		account.Email = cmd.Email
	}
	if !account.Type.Valid() {
		account.Type = cmd.Type
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = s.now().UTC()
	}
	return account
}

// SyncAccounts pulls the remote account list and inserts accounts this
// session has not seen. Known accounts are left alone so local balances only
// move through recorded transactions.
func (s *AccountService) SyncAccounts(ctx context.Context) (commons.Response[models.SyncAccountsResponse], error) {
	logger.Info("account service sync accounts request", nil)

	remote, err := s.remote.ListAccounts(ctx)
	if err != nil {
		logger.Error("account service sync accounts remote call failed", err, nil)
		return commons.RetryableErrorResponse[models.SyncAccountsResponse]("failed to sync accounts", "Unable to sync accounts right now"), err
	}

	inserted := make([]string, 0)
	err = s.session.Apply(func() error {
		for _, account := range remote {
			_, err := s.session.Accounts.Get(ctx, account.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, domain.ErrAccountNotFound) {
				return err
			}

			if account.Name == "" {
				account.Name = account.Owner
			}
			if account.CreatedAt.IsZero() {
				account.CreatedAt = s.now().UTC()
			}
			if err := s.session.Accounts.Insert(ctx, account); err != nil {
				return fmt.Errorf("insert synced account %s: %w", account.ID, err)
			}
			inserted = append(inserted, account.ID)
		}
		return nil
	})
	if err != nil {
		logger.Error("account service sync accounts store failed", err, nil)
		return commons.ErrorResponse[models.SyncAccountsResponse]("failed to sync accounts", "Unable to sync accounts right now"), err
	}

	logger.Info("account service sync accounts success", logger.Fields{
		"fetched":  len(remote),
		"inserted": len(inserted),
	})

	return commons.SuccessResponse("accounts synced successfully", models.SyncAccountsResponse{
		Fetched:  len(remote),
		Inserted: inserted,
	}), nil
}

// PendingSubmissions lists correlation ids still waiting on the remote service.
func (s *AccountService) PendingSubmissions() []string {
	return s.tracker.ids()
}

func (s *AccountService) SubmissionState(correlationID string) (SubmissionState, bool) {
	return s.tracker.state(correlationID)
}

// SubmissionWaiters reports how many callers are waiting on the in-flight
// submission for correlationID.
func (s *AccountService) SubmissionWaiters(correlationID string) int {
	return s.tracker.waiting(correlationID)
}
