package core

import "testing"

func TestCalculateTotalsEmpty(t *testing.T) {
	got := CalculateTotals(nil)
	if got.Expense != 0 || got.Income != 0 || got.Overall != 0 {
		t.Fatalf("expected zero totals, got %+v", got)
	}
}

func TestCalculateTotals(t *testing.T) {
	txns := []Transaction{
		{Type: TypeExpense, Amount: 50},
		{Type: TypeIncome, Amount: 120},
	}
	got := CalculateTotals(txns)
	if got.Expense != 50 || got.Income != 120 || got.Overall != 70 {
		t.Fatalf("got %+v, want {50 120 70}", got)
	}
}

func TestCalculateTotalsExcludesTransfersAndUnknown(t *testing.T) {
	txns := []Transaction{
		{Type: TypeExpense, Amount: 30},
		{Type: TypeTransfer, Amount: 500, Account: "Cash", ToAccount: "Bank"},
		{Type: TypeUnknown, Amount: 99},
	}
	got := CalculateTotals(txns)
	if got.Expense != 30 || got.Income != 0 || got.Overall != -30 {
		t.Fatalf("got %+v, want {30 0 -30}", got)
	}
}

func TestCalculateTotalsIdempotent(t *testing.T) {
	txns := []Transaction{
		{Type: TypeExpense, Amount: 12.5},
		{Type: TypeIncome, Amount: 7},
	}
	first := CalculateTotals(txns)
	second := CalculateTotals(txns)
	if first != second {
		t.Fatalf("totals differ across calls: %+v vs %+v", first, second)
	}
}
