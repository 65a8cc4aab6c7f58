package state

import (
	"sync"
	"testing"

	"moneta/internal/core"
)

func TestDefaults(t *testing.T) {
	s := NewStore()
	if s.ViewMode() != core.ViewMonthly {
		t.Fatalf("default view mode = %q, want monthly", s.ViewMode())
	}
	if len(s.Transactions()) != 0 || len(s.Accounts()) != 0 || len(s.Categories()) != 0 {
		t.Fatalf("fresh store must be empty")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := NewStore()
	s.SetTransactions([]core.Transaction{{ID: "t1", Account: "Cash"}})

	got := s.Transactions()
	got[0].Account = "Tampered"

	again := s.Transactions()
	if again[0].Account != "Cash" {
		t.Fatalf("mutating a snapshot must not touch the store, got %q", again[0].Account)
	}
}

func TestSettersCopyTheirInput(t *testing.T) {
	s := NewStore()

	txns := []core.Transaction{{ID: "t1", Account: "Cash"}}
	accounts := []core.Account{{Name: "Cash"}}
	cats := []core.Category{{Name: "Food"}}
	s.SetTransactions(txns)
	s.SetAccounts(accounts)
	s.SetCategories(cats)

	txns[0].Account = "Tampered"
	accounts[0].Name = "Tampered"
	cats[0].Name = "Tampered"

	if got := s.Transactions(); got[0].Account != "Cash" {
		t.Fatalf("mutating the set slice must not touch the store, got %q", got[0].Account)
	}
	if got := s.Accounts(); got[0].Name != "Cash" {
		t.Fatalf("mutating the set slice must not touch the store, got %q", got[0].Name)
	}
	if got := s.Categories(); got[0].Name != "Food" {
		t.Fatalf("mutating the set slice must not touch the store, got %q", got[0].Name)
	}
}

func TestLastWriteWins(t *testing.T) {
	s := NewStore()
	s.SetTotals(core.Totals{Income: 1})
	s.SetTotals(core.Totals{Income: 2})
	if got := s.Totals(); got.Income != 2 {
		t.Fatalf("totals = %+v, want the later write", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetTransactions([]core.Transaction{{ID: "t"}})
		}()
		go func() {
			defer wg.Done()
			_ = s.Transactions()
			_ = s.Totals()
		}()
	}
	wg.Wait()
}
