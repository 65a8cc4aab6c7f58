package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"moneta/internal/core"
)

func TestWriteSummary(t *testing.T) {
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s := Summary{
		Mode:     core.ViewMonthly,
		Ref:      ref,
		Currency: "EUR",
		UserID:   "u1",
		Transactions: []core.Transaction{
			{UserID: "u1", Type: core.TypeExpense, Account: "Cash", Category: "Food", Amount: 120, Date: ref},
			{UserID: "u1", Type: core.TypeIncome, Account: "Cash", Category: "Salary", Amount: 2000, Date: ref},
		},
		Accounts: []core.Account{{Name: "Cash", Balance: 100}},
		Categories: []core.Category{
			{Name: "Food", Type: core.TypeExpense, Budgeted: true, Limits: []core.BudgetLimit{{Month: 3, Year: 2024, Limit: 100}}},
		},
	}

	var b strings.Builder
	if err := WriteSummary(&b, s); err != nil {
		t.Fatalf("write summary: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"Overview (monthly, 2024-03-15)",
		"income:  EUR 2000.00",
		"expense: EUR 120.00",
		"overall: EUR +1880.00",
		"Food",
		"OVER", // 120 spent against a 100 limit
		"Account balances",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

// failAfter errors once limit bytes have been written.
type failAfter struct {
	limit int
	n     int
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n+len(p) > f.limit {
		return 0, errWriterFull
	}
	f.n += len(p)
	return len(p), nil
}

var errWriterFull = errors.New("writer full")

func TestWriteSummarySurfacesWriteErrors(t *testing.T) {
	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	s := Summary{
		Mode:     core.ViewMonthly,
		Ref:      ref,
		Currency: "EUR",
		UserID:   "u1",
		Transactions: []core.Transaction{
			{UserID: "u1", Type: core.TypeExpense, Account: "Cash", Category: "Food", Amount: 10, Date: ref},
		},
		Accounts: []core.Account{{Name: "Cash", Balance: 100}},
	}

	// Fail at several points, including past the first line, so errors from
	// every section surface rather than only the heading's.
	for _, limit := range []int{0, 40, 80} {
		if err := WriteSummary(&failAfter{limit: limit}, s); !errors.Is(err, errWriterFull) {
			t.Fatalf("limit %d: expected write error, got %v", limit, err)
		}
	}
}

func TestWriteSummaryUnknownModeLabel(t *testing.T) {
	var b strings.Builder
	err := WriteSummary(&b, Summary{Mode: core.ViewUnknown, Ref: time.Now(), Currency: "EUR"})
	if err != nil {
		t.Fatalf("write summary: %v", err)
	}
	if !strings.Contains(b.String(), "(all,") {
		t.Fatalf("unknown mode should render as 'all':\n%s", b.String())
	}
}
