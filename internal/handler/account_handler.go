package handler

import (
	"errors"
	"net/http"

	"github.com/eaglebank/ledger-service/shared/cqrs"
	"github.com/eaglebank/ledger-service/shared/middleware"
	"github.com/eaglebank/ledger-service/shared/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	CreateAccount(cqrs.CreateAccountCommand) (string, error)
}

// AccountQuerier defines the account reads used by AccountHandler.
type AccountQuerier interface {
	GetAccount(cqrs.GetAccountQuery) (*models.AccountView, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

type CreateAccountRequest struct {
	AccountType    string  `json:"accountType" validate:"required,max=32"`
	InitialDeposit *Amount `json:"initialDeposit"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	initialDeposit := decimal.Zero
	if req.InitialDeposit != nil {
		initialDeposit = req.InitialDeposit.Decimal()
		if validationErrors := checkAmount("InitialDeposit", initialDeposit); validationErrors != nil {
			middleware.RespondWithValidationError(c, validationErrors)
			return
		}
	}

	accountID, err := h.commands.CreateAccount(cqrs.CreateAccountCommand{
		AccountType:    req.AccountType,
		InitialDeposit: initialDeposit,
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidAccountType) {
			middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		_ = c.Error(err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, CreateAccountResponse{AccountID: accountID})
}

func (h *AccountHandler) GetBalance(c *gin.Context) {
	view, err := h.queries.GetAccount(cqrs.GetAccountQuery{AccountID: c.Param("accountId")})
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
			return
		}
		_ = c.Error(err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get balance")
		return
	}

	c.JSON(http.StatusOK, newBalanceResponse(view))
}
