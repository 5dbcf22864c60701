package cqrs

import "github.com/shopspring/decimal"

// CreateAccountCommand opens a new account. AccountType is parsed by the
// command service; InitialDeposit is taken as-is.
type CreateAccountCommand struct {
	AccountType    string
	InitialDeposit decimal.Decimal
}

type DepositCommand struct {
	AccountID string
	Amount    decimal.Decimal
}

type WithdrawCommand struct {
	AccountID string
	Amount    decimal.Decimal
}
