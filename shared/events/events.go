package events

import "time"

// Event types
const (
	AccountCreated     = "account.created"
	TransactionCreated = "transaction.created"
	BalanceUpdated     = "balance.updated"
)

// LedgerEventsStream is the Redis stream every ledger event is appended to.
const LedgerEventsStream = "ledger.events"

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Amounts are carried as decimal strings so consumers never see float rounding.

type AccountCreatedEvent struct {
	AccountID      string `json:"accountId"`
	AccountType    string `json:"accountType"`
	InitialDeposit string `json:"initialDeposit"`
}

type TransactionCreatedEvent struct {
	TransactionID string `json:"transactionId"`
	AccountID     string `json:"accountId"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
}

type BalanceUpdatedEvent struct {
	AccountID  string `json:"accountId"`
	NewBalance string `json:"newBalance"`
	Change     string `json:"change"`
}
