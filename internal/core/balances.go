package core

// CalculateBalances folds the transaction trail of one user into a per-account
// delta: expenses subtract from their account, income adds, and a transfer
// touches two entries, subtracting from the source account and adding to the
// destination.
//
// Accounts with no transactions are absent from the map. The stored initial
// balance of an account is not known here; composing it with the trail delta
// is the caller's job (see report.AccountBalances). Account names that match
// no known account still accumulate silently; the core never validates
// referential integrity.
func CalculateBalances(txns []Transaction, userID string) map[string]float64 {
	balances := make(map[string]float64)
	for _, tx := range txns {
		if tx.UserID != userID {
			continue
		}
		switch tx.Type {
		case TypeExpense:
			balances[tx.Account] -= tx.Amount
		case TypeIncome:
			balances[tx.Account] += tx.Amount
		case TypeTransfer:
			balances[tx.Account] -= tx.Amount
			balances[tx.ToAccount] += tx.Amount
		}
	}
	return balances
}
