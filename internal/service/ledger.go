// Package service wires the ledger together. Repositories are created once
// per Ledger and shared by the command and query services built on them, so
// the lifetime of all ledger state is the lifetime of the Ledger value.
package service

import (
	"github.com/eaglebank/ledger-service/internal/command"
	"github.com/eaglebank/ledger-service/internal/query"
	"github.com/eaglebank/ledger-service/internal/repository"
	"github.com/rs/zerolog"
)

type Ledger struct {
	Accounts     *repository.AccountRepository
	Transactions *repository.TransactionRepository

	AccountCommands     *command.AccountCommandService
	TransactionCommands *command.TransactionCommandService
	AccountQueries      *query.AccountQueryService
	TransactionQueries  *query.TransactionQueryService
}

func NewLedger(publisher command.EventPublisher, log zerolog.Logger) *Ledger {
	accounts := repository.NewAccountRepository()
	transactions := repository.NewTransactionRepository()
	return &Ledger{
		Accounts:     accounts,
		Transactions: transactions,

		AccountCommands:     command.NewAccountCommandService(accounts, publisher, log.With().Str("component", "accounts").Logger()),
		TransactionCommands: command.NewTransactionCommandService(accounts, transactions, publisher, log.With().Str("component", "transactions").Logger()),
		AccountQueries:      query.NewAccountQueryService(accounts),
		TransactionQueries:  query.NewTransactionQueryService(transactions),
	}
}
