package command

import (
	"context"
	"fmt"
	"time"

	"github.com/eaglebank/ledger-service/internal/repository"
	"github.com/eaglebank/ledger-service/shared/cqrs"
	"github.com/eaglebank/ledger-service/shared/events"
	"github.com/eaglebank/ledger-service/shared/models"
	"github.com/eaglebank/ledger-service/shared/utils"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// TransactionCommandService moves money in and out of accounts. Each
// successful call updates the account once and appends exactly one
// transaction; a failed call changes nothing. The returned transaction
// carries the balance as it stood right after the movement.
type TransactionCommandService struct {
	accountRepo     *repository.AccountRepository
	transactionRepo *repository.TransactionRepository
	publisher       EventPublisher
	log             zerolog.Logger
	locks           accountLocks
}

func NewTransactionCommandService(
	accountRepo *repository.AccountRepository,
	transactionRepo *repository.TransactionRepository,
	publisher EventPublisher,
	log zerolog.Logger,
) *TransactionCommandService {
	return &TransactionCommandService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		publisher:       publisher,
		log:             log,
	}
}

func (s *TransactionCommandService) Deposit(cmd cqrs.DepositCommand) (*models.Transaction, error) {
	return s.apply(cmd.AccountID, models.TransactionTypeDeposit, cmd.Amount)
}

func (s *TransactionCommandService) Withdraw(cmd cqrs.WithdrawCommand) (*models.Transaction, error) {
	return s.apply(cmd.AccountID, models.TransactionTypeWithdraw, cmd.Amount)
}

func (s *TransactionCommandService) apply(accountID string, txType models.TransactionType, amount decimal.Decimal) (*models.Transaction, error) {
	// Unknown IDs are rejected before a lock is allocated for them.
	if _, ok := s.accountRepo.GetByID(accountID); !ok {
		return nil, models.ErrAccountNotFound
	}

	unlock := s.locks.lock(accountID)
	defer unlock()

	account, ok := s.accountRepo.GetByID(accountID)
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	previous := account.Balance

	var err error
	switch txType {
	case models.TransactionTypeDeposit:
		err = account.Deposit(amount)
	case models.TransactionTypeWithdraw:
		err = account.Withdraw(amount)
	default:
		err = fmt.Errorf("unsupported transaction type %q", txType)
	}
	if err != nil {
		return nil, err
	}

	s.accountRepo.Update(account)
	transaction := &models.Transaction{
		ID:           utils.GenerateID("txn"),
		AccountID:    accountID,
		Type:         txType,
		Amount:       amount,
		BalanceAfter: account.Balance,
		Timestamp:    time.Now().UTC(),
	}
	s.transactionRepo.Save(transaction)

	s.log.Info().
		Str("account_id", accountID).
		Str("transaction_id", transaction.ID).
		Str("type", string(txType)).
		Str("amount", amount.String()).
		Str("balance_before", previous.String()).
		Str("balance_after", account.Balance.String()).
		Msg("balance updated")
	s.publish(transaction, account.Balance.Sub(previous), account.Balance)
	return transaction, nil
}

func (s *TransactionCommandService) publish(t *models.Transaction, change, newBalance decimal.Decimal) {
	ctx := context.Background()
	if err := s.publisher.Publish(ctx, events.LedgerEventsStream, events.TransactionCreated, events.TransactionCreatedEvent{
		TransactionID: t.ID,
		AccountID:     t.AccountID,
		Type:          string(t.Type),
		Amount:        t.Amount.String(),
	}); err != nil {
		s.log.Warn().Err(err).Str("transaction_id", t.ID).Msg("failed to publish transaction.created event")
	}
	if err := s.publisher.Publish(ctx, events.LedgerEventsStream, events.BalanceUpdated, events.BalanceUpdatedEvent{
		AccountID:  t.AccountID,
		NewBalance: newBalance.String(),
		Change:     change.String(),
	}); err != nil {
		s.log.Warn().Err(err).Str("account_id", t.AccountID).Msg("failed to publish balance.updated event")
	}
}
