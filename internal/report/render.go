package report

import (
	"fmt"
	"io"
	"time"

	"moneta/internal/core"
)

// Summary bundles everything the text renderer needs for one window.
type Summary struct {
	Mode     core.ViewMode
	Ref      time.Time
	Currency string
	UserID   string

	Transactions []core.Transaction
	Accounts     []core.Account
	Categories   []core.Category
}

// errWriter latches the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// WriteSummary renders a plain-text overview of one view window: headline
// totals, the expense pie, budget lines and account balances. It is the CLI
// stand-in for the app's dashboard screen.
func WriteSummary(w io.Writer, s Summary) error {
	windowed := core.FilterByViewMode(s.Transactions, s.Mode, s.Ref)
	totals := core.CalculateTotals(windowed)

	label := string(s.Mode)
	if !s.Mode.Valid() {
		label = "all"
	}

	ew := &errWriter{w: w}
	ew.printf("Overview (%s, %s)\n", label, s.Ref.Format("2006-01-02"))
	ew.printf("  income:  %s %.2f\n", s.Currency, totals.Income)
	ew.printf("  expense: %s %.2f\n", s.Currency, totals.Expense)
	ew.printf("  overall: %s %+.2f\n", s.Currency, totals.Overall)

	if slices := Pie(windowed, core.TypeExpense); len(slices) > 0 {
		ew.printf("Spending by category\n")
		for _, p := range slices {
			ew.printf("  %-20s %s %10.2f  %6.2f%%\n", p.Label, s.Currency, p.Amount, p.Percent)
		}
	}

	if overview := Budgets(s.Categories, s.Transactions, s.Ref); len(overview.Lines) > 0 {
		ew.printf("Budgets this month\n")
		for _, line := range overview.Lines {
			marker := ""
			if line.OverBudget {
				marker = "  OVER"
			}
			ew.printf("  %-20s spent %s %.2f of %s %.2f%s\n",
				line.Category, s.Currency, line.Spent, s.Currency, line.Limit, marker)
		}
	}

	balances := AccountBalances(s.Accounts, s.Transactions, s.UserID)
	if len(balances) > 0 {
		ew.printf("Account balances\n")
		// Keep the account list's order rather than map order.
		for _, a := range s.Accounts {
			if b, ok := balances[a.Name]; ok {
				ew.printf("  %-20s %s %.2f\n", a.Name, s.Currency, b)
			}
		}
	}
	return ew.err
}
