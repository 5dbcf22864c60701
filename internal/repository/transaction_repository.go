package repository

import (
	"sync"

	"github.com/eaglebank/ledger-service/shared/models"
)

// TransactionRepository is the append-only, in-memory transaction log.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []models.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Save appends the transaction to the log and returns its ID.
func (r *TransactionRepository) Save(transaction *models.Transaction) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, *transaction)
	return transaction.ID
}

// GetByAccount returns the transactions recorded against accountID in the
// order they were saved. The result is never nil.
func (r *TransactionRepository) GetByAccount(accountID string) []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]models.Transaction, 0)
	for _, t := range r.transactions {
		if t.AccountID == accountID {
			result = append(result, t)
		}
	}
	return result
}
