// Package report turns core aggregates into the plain structures rendering
// layers consume: pie slices with stable colors, bar series aligned to the
// account list, budget lines and composed account balances.
package report

import (
	"time"

	"moneta/internal/core"
)

// PieSlice is one legend entry of a category pie chart.
type PieSlice struct {
	Label   string
	Amount  float64
	Percent float64
	Color   string
}

// Pie builds the category breakdown for one transaction type. Colors come
// from the fixed palette, indexed by entry position, so the same input always
// charts identically.
func Pie(txns []core.Transaction, tt core.TransactionType) []PieSlice {
	b := core.AggregateByCategory(txns, tt)
	out := make([]PieSlice, len(b.Entries))
	for i, e := range b.Entries {
		out[i] = PieSlice{
			Label:   e.Name,
			Amount:  e.Amount,
			Percent: e.Percent,
			Color:   core.ColorAt(i),
		}
	}
	return out
}

// Bars builds the per-account bar series for one transaction type. Ignored
// accounts are excluded before aggregation so the series aligns with what
// the account screen actually shows.
func Bars(txns []core.Transaction, tt core.TransactionType, accounts []core.Account) core.BarSeries {
	visible := make([]core.Account, 0, len(accounts))
	for _, a := range accounts {
		if !a.Ignored {
			visible = append(visible, a)
		}
	}
	return core.AggregateByAccount(txns, tt, visible)
}

// BudgetLine is one budgeted category's month: its cap, what was spent
// against it, and what remains.
type BudgetLine struct {
	Category   string
	Limit      float64
	Spent      float64
	Remaining  float64
	OverBudget bool
}

// BudgetOverview is the budget screen's data source for one month.
type BudgetOverview struct {
	Lines       []BudgetLine
	NonBudgeted []core.Category
}

// Budgets partitions categories by budget status for ref's month and fills
// each budgeted line with the month's expense total for that category.
// Spend matching uses the raw category name, the same key the pie uses.
func Budgets(cats []core.Category, txns []core.Transaction, ref time.Time) BudgetOverview {
	p := core.PartitionByBudgetStatus(cats, ref)

	monthly := core.FilterByViewMode(txns, core.ViewMonthly, ref)
	spent := make(map[string]float64)
	for _, e := range core.AggregateByCategory(monthly, core.TypeExpense).Entries {
		spent[e.Name] = e.Amount
	}

	overview := BudgetOverview{NonBudgeted: p.NonBudgeted}
	for _, c := range p.Budgeted {
		// PartitionByBudgetStatus only admits categories with a limit for
		// ref's month, so bl is never nil here.
		bl := c.LimitFor(int(ref.Month()), ref.Year())
		if bl == nil {
			continue
		}
		line := BudgetLine{
			Category:  c.Name,
			Limit:     bl.Limit,
			Spent:     spent[c.Name],
			Remaining: bl.Limit - spent[c.Name],
		}
		line.OverBudget = line.Remaining < 0
		overview.Lines = append(overview.Lines, line)
	}
	return overview
}

// AccountBalances composes each account's stored initial balance with its
// transaction trail delta. Accounts flagged as ignored are skipped; accounts
// without any transactions keep their stored balance.
func AccountBalances(accounts []core.Account, txns []core.Transaction, userID string) map[string]float64 {
	deltas := core.CalculateBalances(txns, userID)
	out := make(map[string]float64, len(accounts))
	for _, a := range accounts {
		if a.Ignored {
			continue
		}
		out[a.Name] = a.Balance + deltas[a.Name]
	}
	return out
}
