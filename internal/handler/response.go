package handler

import (
	"encoding/json"
	"time"

	"github.com/eaglebank/ledger-service/shared/models"
	"github.com/shopspring/decimal"
)

// money renders an amount as a bare JSON number with no float rounding.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

type CreateAccountResponse struct {
	AccountID string `json:"accountId"`
}

type BalanceResponse struct {
	AccountID    string      `json:"accountId"`
	AccountType  string      `json:"accountType"`
	Balance      json.Number `json:"balance"`
	Status       string      `json:"status"`
	CreationDate time.Time   `json:"creationDate"`
}

type TransactionResultResponse struct {
	TransactionID   string      `json:"transactionId"`
	TransactionType string      `json:"transactionType"`
	Amount          json.Number `json:"amount"`
	Timestamp       time.Time   `json:"timestamp"`
	NewBalance      json.Number `json:"newBalance"`
}

type TransactionHistoryItem struct {
	TransactionID string      `json:"transactionId"`
	Type          string      `json:"type"`
	Amount        json.Number `json:"amount"`
	Timestamp     time.Time   `json:"timestamp"`
}

func newBalanceResponse(v *models.AccountView) BalanceResponse {
	return BalanceResponse{
		AccountID:    v.AccountID,
		AccountType:  string(v.AccountType),
		Balance:      money(v.Balance),
		Status:       string(v.Status),
		CreationDate: v.CreatedAt,
	}
}

func newTransactionResultResponse(t *models.Transaction) TransactionResultResponse {
	return TransactionResultResponse{
		TransactionID:   t.ID,
		TransactionType: string(t.Type),
		Amount:          money(t.Amount),
		Timestamp:       t.Timestamp,
		NewBalance:      money(t.BalanceAfter),
	}
}

func newTransactionHistory(views []models.TransactionView) []TransactionHistoryItem {
	items := make([]TransactionHistoryItem, 0, len(views))
	for _, v := range views {
		items = append(items, TransactionHistoryItem{
			TransactionID: v.TransactionID,
			Type:          string(v.Type),
			Amount:        money(v.Amount),
			Timestamp:     v.Timestamp,
		})
	}
	return items
}
