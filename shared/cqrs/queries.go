package cqrs

// ---------- Account queries ----------

// GetAccountQuery fetches the current state of a single account.
type GetAccountQuery struct {
	AccountID string
}

// ---------- Transaction queries ----------

// ListTransactionsQuery fetches the history of an account, oldest first.
type ListTransactionsQuery struct {
	AccountID string
}
