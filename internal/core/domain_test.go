package core

import (
	"testing"
	"time"
)

func TestParseTransactionType(t *testing.T) {
	cases := []struct {
		in  string
		out TransactionType
	}{
		{"expense", TypeExpense},
		{"Expense", TypeExpense},
		{"EXPENSE", TypeExpense},
		{"debit", TypeExpense},
		{" Debit ", TypeExpense},
		{"income", TypeIncome},
		{"credit", TypeIncome},
		{"Transfer", TypeTransfer},
		{"", TypeUnknown},
		{"dividend", TypeUnknown},
	}
	for i, tc := range cases {
		if got := ParseTransactionType(tc.in); got != tc.out {
			t.Fatalf("case %d: ParseTransactionType(%q) = %q, want %q", i, tc.in, got, tc.out)
		}
	}
}

func TestParseViewMode(t *testing.T) {
	cases := []struct {
		in  string
		out ViewMode
	}{
		{"daily", ViewDaily},
		{"Weekly", ViewWeekly},
		{" MONTHLY ", ViewMonthly},
		{"", ViewUnknown},
		{"yearly", ViewUnknown},
	}
	for i, tc := range cases {
		if got := ParseViewMode(tc.in); got != tc.out {
			t.Fatalf("case %d: ParseViewMode(%q) = %q, want %q", i, tc.in, got, tc.out)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		UserID:   "u1",
		Type:     TypeExpense,
		Account:  "Cash",
		Category: "Food",
		Amount:   12.5,
		Date:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	transfer := Transaction{UserID: "u1", Type: TypeTransfer, Account: "Cash", ToAccount: "Bank"}
	if err := transfer.Validate(); err != nil {
		t.Fatalf("expected transfer ok, got %v", err)
	}

	bads := []Transaction{
		{Type: TypeExpense, Account: "Cash", Category: "Food"},              // no user
		{UserID: "u1", Account: "Cash", Category: "Food"},                   // unknown type
		{UserID: "u1", Type: TypeExpense, Category: "Food"},                 // no account
		{UserID: "u1", Type: TypeExpense, Account: "Cash"},                  // no category
		{UserID: "u1", Type: TypeTransfer, Account: "Cash"},                 // no destination
		{UserID: "u1", Type: TransactionType("Expense"), Account: "Cash"},   // unnormalized type
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestCategoryValidate(t *testing.T) {
	good := Category{UserID: "u1", Name: "Food", Type: TypeExpense, Limits: []BudgetLimit{{Month: 3, Year: 2024, Limit: 100}}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Category{
		{Name: "Food", Type: TypeExpense},                                            // no user
		{UserID: "u1", Type: TypeExpense},                                            // no name
		{UserID: "u1", Name: "Food", Type: TypeTransfer},                             // transfers have no categories
		{UserID: "u1", Name: "Food", Type: TypeExpense, Limits: []BudgetLimit{{Month: 13, Year: 2024}}}, // bad month
	}
	for i, c := range bads {
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
