package query

import (
	"errors"
	"testing"
	"time"

	"github.com/eaglebank/ledger-service/internal/repository"
	"github.com/eaglebank/ledger-service/shared/cqrs"
	"github.com/eaglebank/ledger-service/shared/models"
	"github.com/shopspring/decimal"
)

func TestGetAccount(t *testing.T) {
	repo := repository.NewAccountRepository()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.Create(&models.Account{
		ID:          "acc-1",
		AccountType: models.AccountTypeSavings,
		Balance:     decimal.RequireFromString("12.34"),
		Status:      models.AccountStatusActive,
		CreatedAt:   created,
	})
	svc := NewAccountQueryService(repo)

	view, err := svc.GetAccount(cqrs.GetAccountQuery{AccountID: "acc-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.AccountID != "acc-1" || view.AccountType != models.AccountTypeSavings ||
		view.Status != models.AccountStatusActive || !view.CreatedAt.Equal(created) ||
		view.Balance.String() != "12.34" {
		t.Errorf("unexpected view: %+v", view)
	}

	if _, err := svc.GetAccount(cqrs.GetAccountQuery{AccountID: "acc-missing"}); !errors.Is(err, models.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestListTransactions(t *testing.T) {
	repo := repository.NewTransactionRepository()
	svc := NewTransactionQueryService(repo)

	if views := svc.ListTransactions(cqrs.ListTransactionsQuery{AccountID: "acc-1"}); views == nil || len(views) != 0 {
		t.Fatalf("expected empty non-nil history, got %#v", views)
	}

	repo.Save(&models.Transaction{ID: "txn-1", AccountID: "acc-1", Type: models.TransactionTypeDeposit, Amount: decimal.NewFromInt(5)})
	repo.Save(&models.Transaction{ID: "txn-2", AccountID: "acc-9", Type: models.TransactionTypeDeposit, Amount: decimal.NewFromInt(7)})
	repo.Save(&models.Transaction{ID: "txn-3", AccountID: "acc-1", Type: models.TransactionTypeWithdraw, Amount: decimal.NewFromInt(3)})

	views := svc.ListTransactions(cqrs.ListTransactionsQuery{AccountID: "acc-1"})
	if len(views) != 2 || views[0].TransactionID != "txn-1" || views[1].TransactionID != "txn-3" {
		t.Fatalf("unexpected history: %+v", views)
	}
	if views[1].Type != models.TransactionTypeWithdraw || !views[1].Amount.Equal(decimal.NewFromInt(3)) {
		t.Errorf("unexpected view: %+v", views[1])
	}
}
