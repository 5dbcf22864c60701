package command

import "sync"

// accountLocks hands out one mutex per account ID so that the
// read-modify-write of a balance is never interleaved for the same account.
// Callers must only lock IDs of accounts that exist: accounts are never
// removed, so the map is bounded by the number of accounts.
type accountLocks struct {
	locks sync.Map // accountID -> *sync.Mutex
}

func (l *accountLocks) lock(accountID string) func() {
	v, _ := l.locks.LoadOrStore(accountID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
