package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the ledger API on r.
func RegisterRoutes(r gin.IRouter, accounts *AccountHandler, transactions *TransactionHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g := r.Group("/accounts")
	{
		g.POST("", accounts.CreateAccount)
		g.GET("/:accountId/balance", accounts.GetBalance)
		g.POST("/:accountId/deposit", transactions.Deposit)
		g.POST("/:accountId/withdraw", transactions.Withdraw)
		g.GET("/:accountId/transactions", transactions.ListTransactions)
	}
}
