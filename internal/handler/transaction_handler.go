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

// TransactionCommander defines the write-side operations used by TransactionHandler.
type TransactionCommander interface {
	Deposit(cqrs.DepositCommand) (*models.Transaction, error)
	Withdraw(cqrs.WithdrawCommand) (*models.Transaction, error)
}

// TransactionQuerier defines the read-side operations used by TransactionHandler.
type TransactionQuerier interface {
	ListTransactions(cqrs.ListTransactionsQuery) []models.TransactionView
}

type TransactionHandler struct {
	commands TransactionCommander
	queries  TransactionQuerier
}

type TransactionRequest struct {
	Amount *Amount `json:"amount" validate:"required"`
}

func NewTransactionHandler(commands TransactionCommander, queries TransactionQuerier) *TransactionHandler {
	return &TransactionHandler{commands: commands, queries: queries}
}

func (h *TransactionHandler) Deposit(c *gin.Context) {
	accountID := c.Param("accountId")
	amount, ok := bindAmount(c)
	if !ok {
		return
	}
	transaction, err := h.commands.Deposit(cqrs.DepositCommand{AccountID: accountID, Amount: amount})
	h.respond(c, transaction, err)
}

func (h *TransactionHandler) Withdraw(c *gin.Context) {
	accountID := c.Param("accountId")
	amount, ok := bindAmount(c)
	if !ok {
		return
	}
	transaction, err := h.commands.Withdraw(cqrs.WithdrawCommand{AccountID: accountID, Amount: amount})
	h.respond(c, transaction, err)
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	views := h.queries.ListTransactions(cqrs.ListTransactionsQuery{AccountID: c.Param("accountId")})
	c.JSON(http.StatusOK, newTransactionHistory(views))
}

func bindAmount(c *gin.Context) (decimal.Decimal, bool) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return decimal.Decimal{}, false
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return decimal.Decimal{}, false
	}
	amount := req.Amount.Decimal()
	if validationErrors := checkAmount("Amount", amount); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return decimal.Decimal{}, false
	}
	return amount, true
}

// respond maps the outcome of a deposit or withdrawal. Every domain failure,
// an unknown account included, is a client error on this path.
func (h *TransactionHandler) respond(c *gin.Context, transaction *models.Transaction, err error) {
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAccountNotFound),
			errors.Is(err, models.ErrInvalidAmount),
			errors.Is(err, models.ErrInsufficientBalance):
			middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			_ = c.Error(err)
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to process transaction")
		}
		return
	}

	c.JSON(http.StatusOK, newTransactionResultResponse(transaction))
}
