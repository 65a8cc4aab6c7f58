package core

// Totals is the headline income/expense summary shown on every screen.
type Totals struct {
	Expense float64
	Income  float64
	// Overall is Income - Expense for the same set of transactions.
	Overall float64
}

// CalculateTotals sums txns by type. Transfers net to zero across the two
// affected accounts and are neither income nor expense, so they are excluded
// from all three figures; so are records whose type never normalized.
func CalculateTotals(txns []Transaction) Totals {
	var t Totals
	for _, tx := range txns {
		switch tx.Type {
		case TypeExpense:
			t.Expense += tx.Amount
		case TypeIncome:
			t.Income += tx.Amount
		}
	}
	t.Overall = t.Income - t.Expense
	return t
}
