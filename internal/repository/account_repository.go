package repository

import (
	"sync"

	"github.com/eaglebank/ledger-service/shared/models"
)

// AccountRepository is the in-memory store of accounts keyed by ID.
// It hands out and stores copies, so a caller mutating an account it read
// does not affect the stored state until it calls Update.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]models.Account)}
}

// Create stores the account under its own ID and returns that ID. IDs are
// generated as random UUIDs, so no collision check is made.
func (r *AccountRepository) Create(account *models.Account) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.ID] = *account
	return account.ID
}

// GetByID returns a snapshot of the account, or false when none is stored.
func (r *AccountRepository) GetByID(id string) (*models.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, false
	}
	return &account, true
}

// Update replaces the stored snapshot. Last write wins.
func (r *AccountRepository) Update(account *models.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.ID] = *account
}
