package core

import "math"

// CategoryTotal is one slice of a pie breakdown.
type CategoryTotal struct {
	Name   string
	Amount float64
	// Percent is Amount as a share of the breakdown total, rounded to two
	// decimals. It stays 0 for every entry when the total is 0; callers must
	// guard that case before charting.
	Percent float64
}

// CategoryBreakdown aggregates transactions of one type per category.
type CategoryBreakdown struct {
	Entries []CategoryTotal
	Total   float64
}

// AggregateByCategory sums amounts per distinct category value for the given
// transaction type. Grouping is by the raw category string; no case folding
// happens here, so "Food" and "food" are separate slices.
//
// Entry order is the order of first occurrence in the filtered input. Pie
// charts assign colors by position, so for a fixed input order the output is
// deterministic.
func AggregateByCategory(txns []Transaction, tt TransactionType) CategoryBreakdown {
	var b CategoryBreakdown
	index := make(map[string]int)
	for _, tx := range txns {
		if tx.Type != tt {
			continue
		}
		i, seen := index[tx.Category]
		if !seen {
			i = len(b.Entries)
			index[tx.Category] = i
			b.Entries = append(b.Entries, CategoryTotal{Name: tx.Category})
		}
		b.Entries[i].Amount += tx.Amount
		b.Total += tx.Amount
	}
	if b.Total == 0 {
		return b
	}
	for i := range b.Entries {
		b.Entries[i].Percent = round2(100 * b.Entries[i].Amount / b.Total)
	}
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
