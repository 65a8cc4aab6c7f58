// Package state holds the shared application state: the current snapshot of
// backend collections plus the user's selections. One store, explicit setters,
// exactly one writer per slice of state.
//
// The store adds no versioning: when two refreshes for the same resource
// resolve out of order, the last resolution wins, matching how the screens
// have always behaved.
package state

import (
	"sync"

	"moneta/internal/core"
)

type Store struct {
	mu sync.RWMutex

	userID       string
	viewMode     core.ViewMode
	currency     string
	transactions []core.Transaction
	accounts     []core.Account
	categories   []core.Category
	totals       core.Totals
}

func NewStore() *Store {
	return &Store{viewMode: core.ViewMonthly}
}

func (s *Store) SetUserID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = id
}

func (s *Store) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Store) SetViewMode(vm core.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = vm
}

func (s *Store) ViewMode() core.ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewMode
}

func (s *Store) SetCurrency(c string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currency = c
}

func (s *Store) Currency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency
}

// SetTransactions replaces the transaction snapshot. The slice is copied on
// the way in, so the caller keeps ownership of what it passed.
func (s *Store) SetTransactions(txns []core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]core.Transaction(nil), txns...)
}

// Transactions returns a copy of the current transaction snapshot, so
// callers can filter and sort freely without aliasing store internals.
func (s *Store) Transactions() []core.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) SetAccounts(accounts []core.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append([]core.Account(nil), accounts...)
}

func (s *Store) Accounts() []core.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *Store) SetCategories(cats []core.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]core.Category(nil), cats...)
}

func (s *Store) Categories() []core.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) SetTotals(t core.Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totals = t
}

func (s *Store) Totals() core.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totals
}
