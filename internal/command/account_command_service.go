package command

import (
	"context"
	"time"

	"github.com/eaglebank/ledger-service/internal/repository"
	"github.com/eaglebank/ledger-service/shared/cqrs"
	"github.com/eaglebank/ledger-service/shared/events"
	"github.com/eaglebank/ledger-service/shared/models"
	"github.com/eaglebank/ledger-service/shared/utils"
	"github.com/rs/zerolog"
)

// AccountCommandService opens accounts.
type AccountCommandService struct {
	accountRepo *repository.AccountRepository
	publisher   EventPublisher
	log         zerolog.Logger
}

func NewAccountCommandService(
	accountRepo *repository.AccountRepository,
	publisher EventPublisher,
	log zerolog.Logger,
) *AccountCommandService {
	return &AccountCommandService{
		accountRepo: accountRepo,
		publisher:   publisher,
		log:         log,
	}
}

// CreateAccount opens an ACTIVE account and returns its ID. The initial
// deposit is stored as given; unlike Deposit it is not checked for sign.
func (s *AccountCommandService) CreateAccount(cmd cqrs.CreateAccountCommand) (string, error) {
	accountType, err := utils.ParseAccountType(cmd.AccountType)
	if err != nil {
		return "", err
	}
	account := &models.Account{
		ID:          utils.GenerateID("acc"),
		AccountType: accountType,
		Balance:     cmd.InitialDeposit,
		Status:      models.AccountStatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	id := s.accountRepo.Create(account)

	s.log.Info().
		Str("account_id", id).
		Str("account_type", string(accountType)).
		Str("initial_deposit", cmd.InitialDeposit.String()).
		Msg("account created")
	if err := s.publisher.Publish(context.Background(), events.LedgerEventsStream, events.AccountCreated, events.AccountCreatedEvent{
		AccountID:      id,
		AccountType:    string(accountType),
		InitialDeposit: cmd.InitialDeposit.String(),
	}); err != nil {
		s.log.Warn().Err(err).Str("account_id", id).Msg("failed to publish account.created event")
	}
	return id, nil
}
