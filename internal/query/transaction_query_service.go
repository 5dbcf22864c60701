package query

import (
	"github.com/eaglebank/ledger-service/internal/repository"
	"github.com/eaglebank/ledger-service/shared/cqrs"
	"github.com/eaglebank/ledger-service/shared/models"
)

// TransactionQueryService serves account histories. An unknown account simply
// has an empty history.
type TransactionQueryService struct {
	transactionRepo *repository.TransactionRepository
}

func NewTransactionQueryService(transactionRepo *repository.TransactionRepository) *TransactionQueryService {
	return &TransactionQueryService{transactionRepo: transactionRepo}
}

// ListTransactions returns the account history oldest first.
func (s *TransactionQueryService) ListTransactions(q cqrs.ListTransactionsQuery) []models.TransactionView {
	transactions := s.transactionRepo.GetByAccount(q.AccountID)
	views := make([]models.TransactionView, 0, len(transactions))
	for i := range transactions {
		views = append(views, models.TransactionToView(&transactions[i]))
	}
	return views
}
