package core

import "time"

// BudgetPartition splits categories into those budgeted for a given month and
// the rest.
type BudgetPartition struct {
	Budgeted    []Category
	NonBudgeted []Category
}

// PartitionByBudgetStatus partitions cats by whether they carry a budget for
// the month of ref. A category counts as budgeted only when its Budgeted flag
// is set AND it has at least one limit matching ref's month and year; a
// budgeted category without a limit for the current month lands in
// NonBudgeted. The input is never mutated.
func PartitionByBudgetStatus(cats []Category, ref time.Time) BudgetPartition {
	month, year := int(ref.Month()), ref.Year()
	var p BudgetPartition
	for _, c := range cats {
		if c.Budgeted && c.LimitFor(month, year) != nil {
			p.Budgeted = append(p.Budgeted, c)
		} else {
			p.NonBudgeted = append(p.NonBudgeted, c)
		}
	}
	return p
}

// LimitFor returns the category's budget limit for the given month and year,
// or nil when none is set. When duplicates exist the first match wins.
func (c Category) LimitFor(month, year int) *BudgetLimit {
	for i := range c.Limits {
		if c.Limits[i].Month == month && c.Limits[i].Year == year {
			return &c.Limits[i]
		}
	}
	return nil
}
