package core

import "testing"

func TestCalculateBalancesTransferScenario(t *testing.T) {
	txns := []Transaction{
		{UserID: "u1", Type: TypeExpense, Account: "Cash", Amount: 30},
		{UserID: "u1", Type: TypeTransfer, Account: "Cash", ToAccount: "Bank", Amount: 20},
	}
	got := CalculateBalances(txns, "u1")
	if got["Cash"] != -50 {
		t.Fatalf("Cash = %v, want -50", got["Cash"])
	}
	if got["Bank"] != 20 {
		t.Fatalf("Bank = %v, want 20", got["Bank"])
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(got))
	}
}

func TestCalculateBalancesFiltersByUser(t *testing.T) {
	txns := []Transaction{
		{UserID: "u1", Type: TypeIncome, Account: "Cash", Amount: 100},
		{UserID: "u2", Type: TypeIncome, Account: "Cash", Amount: 999},
	}
	got := CalculateBalances(txns, "u1")
	if got["Cash"] != 100 {
		t.Fatalf("Cash = %v, want 100", got["Cash"])
	}
}

func TestCalculateBalancesAbsentAccounts(t *testing.T) {
	got := CalculateBalances(nil, "u1")
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
	if _, ok := got["Savings"]; ok {
		t.Fatalf("untouched account must be absent, not zero")
	}
}

func TestCalculateBalancesUnknownTypeIgnored(t *testing.T) {
	txns := []Transaction{
		{UserID: "u1", Type: TypeUnknown, Account: "Cash", Amount: 42},
	}
	got := CalculateBalances(txns, "u1")
	if len(got) != 0 {
		t.Fatalf("unknown type must not touch balances, got %v", got)
	}
}
