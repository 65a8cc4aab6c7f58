package core

// BarSeries is the shape bar-chart consumers take: Labels[i] names the
// account, Data[i] carries its sum. The two slices always have equal length.
type BarSeries struct {
	Labels []string
	Data   []float64
}

// AggregateByAccount sums amounts per account name for the given transaction
// type, shaped to align one-to-one with the caller-supplied accounts list.
// Accounts with no matching transactions yield 0, not an absence, so the
// series always matches the account list in length and order.
func AggregateByAccount(txns []Transaction, tt TransactionType, accounts []Account) BarSeries {
	sums := make(map[string]float64, len(accounts))
	for _, tx := range txns {
		if tx.Type != tt {
			continue
		}
		sums[tx.Account] += tx.Amount
	}

	s := BarSeries{
		Labels: make([]string, len(accounts)),
		Data:   make([]float64, len(accounts)),
	}
	for i, a := range accounts {
		s.Labels[i] = a.Name
		s.Data[i] = sums[a.Name]
	}
	return s
}
