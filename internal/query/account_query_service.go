package query

import (
	"github.com/eaglebank/ledger-service/internal/repository"
	"github.com/eaglebank/ledger-service/shared/cqrs"
	"github.com/eaglebank/ledger-service/shared/models"
)

type AccountQueryService struct {
	accountRepo *repository.AccountRepository
}

func NewAccountQueryService(accountRepo *repository.AccountRepository) *AccountQueryService {
	return &AccountQueryService{accountRepo: accountRepo}
}

// GetAccount returns the current view of an account, or ErrAccountNotFound.
func (s *AccountQueryService) GetAccount(q cqrs.GetAccountQuery) (*models.AccountView, error) {
	account, ok := s.accountRepo.GetByID(q.AccountID)
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	return models.AccountToView(account), nil
}
