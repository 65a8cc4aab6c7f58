package core

import "testing"

func TestAggregateByAccountAlignment(t *testing.T) {
	accounts := []Account{
		{Name: "Cash"},
		{Name: "Bank"},
		{Name: "Savings"},
	}
	txns := []Transaction{
		{Type: TypeExpense, Account: "Bank", Amount: 40},
		{Type: TypeExpense, Account: "Cash", Amount: 10},
		{Type: TypeIncome, Account: "Cash", Amount: 999},
		{Type: TypeExpense, Account: "Cash", Amount: 5},
	}
	s := AggregateByAccount(txns, TypeExpense, accounts)
	if len(s.Labels) != 3 || len(s.Data) != 3 {
		t.Fatalf("series must align with accounts: labels=%d data=%d", len(s.Labels), len(s.Data))
	}
	if s.Labels[0] != "Cash" || s.Labels[1] != "Bank" || s.Labels[2] != "Savings" {
		t.Fatalf("labels got %v", s.Labels)
	}
	if s.Data[0] != 15 || s.Data[1] != 40 {
		t.Fatalf("data got %v, want [15 40 0]", s.Data)
	}
	// No matching transactions yields 0, not an absence.
	if s.Data[2] != 0 {
		t.Fatalf("Savings = %v, want 0", s.Data[2])
	}
}

func TestAggregateByAccountEmptyAccounts(t *testing.T) {
	s := AggregateByAccount([]Transaction{{Type: TypeExpense, Account: "Cash", Amount: 1}}, TypeExpense, nil)
	if len(s.Labels) != 0 || len(s.Data) != 0 {
		t.Fatalf("expected empty series, got %+v", s)
	}
}
