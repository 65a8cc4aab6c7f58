package core

import (
	"sort"
	"time"
)

// FilterByViewMode returns the subset of txns whose date falls inside the
// window selected by mode around ref, sorted most recent first.
//
//   - ViewDaily: same calendar day as ref.
//   - ViewWeekly: the Sunday-to-Saturday week containing ref, inclusive.
//   - ViewMonthly: same calendar month and year as ref.
//   - any other mode: no filtering, the input passes through unchanged.
//
// Windows compare calendar dates only; time of day is ignored. Records with
// a zero Date (unparseable upstream date) never match a window and are
// silently dropped from the three real modes. The result is always a fresh
// slice; the input is never mutated.
func FilterByViewMode(txns []Transaction, mode ViewMode, ref time.Time) []Transaction {
	out := make([]Transaction, 0, len(txns))

	switch mode {
	case ViewDaily:
		refKey := dayKey(ref)
		for _, t := range txns {
			if dayKey(t.Date) == refKey {
				out = append(out, t)
			}
		}
	case ViewWeekly:
		start, end := weekBounds(ref)
		lo, hi := dayKey(start), dayKey(end)
		for _, t := range txns {
			if k := dayKey(t.Date); k >= lo && k <= hi {
				out = append(out, t)
			}
		}
	case ViewMonthly:
		for _, t := range txns {
			if t.Date.Year() == ref.Year() && t.Date.Month() == ref.Month() {
				out = append(out, t)
			}
		}
	default:
		out = append(out, txns...)
	}

	SortByDateDesc(out)
	return out
}

// SortByDateDesc orders txns newest first, in place. The sort is stable so
// records sharing a date keep their original relative order; chart consumers
// depend on that determinism.
func SortByDateDesc(txns []Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
}

// weekBounds returns the first and last calendar day of the week containing
// ref. Weeks start on Sunday.
func weekBounds(ref time.Time) (start, end time.Time) {
	y, m, d := ref.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	start = day.AddDate(0, 0, -int(day.Weekday()))
	end = start.AddDate(0, 0, 6)
	return start, end
}

// dayKey collapses a timestamp to a comparable yyyymmdd integer. The zero
// time maps to a key no real transaction window reaches, which is what makes
// invalid dates fall out of every mode.
func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
