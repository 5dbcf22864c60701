package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountView is the read projection of an account served by the balance query.
type AccountView struct {
	AccountID   string
	AccountType AccountType
	Balance     decimal.Decimal
	Status      AccountStatus
	CreatedAt   time.Time
}

// TransactionView is the read projection of a transaction in an account history.
type TransactionView struct {
	TransactionID string
	AccountID     string
	Type          TransactionType
	Amount        decimal.Decimal
	Timestamp     time.Time
}

// AccountToView converts the write model to its read projection.
func AccountToView(a *Account) *AccountView {
	return &AccountView{
		AccountID:   a.ID,
		AccountType: a.AccountType,
		Balance:     a.Balance,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}

// TransactionToView converts the write model to its read projection.
func TransactionToView(t *Transaction) TransactionView {
	return TransactionView{
		TransactionID: t.ID,
		AccountID:     t.AccountID,
		Type:          t.Type,
		Amount:        t.Amount,
		Timestamp:     t.Timestamp,
	}
}
