package finance

import (
	"github.com/zafrapp/zafra-backend-go/internal/domain/finance"
)

// deriveLedger rolls the flat log up into one entry per distinct category,
// in first-appearance order. Income-like categories and ZIS post as credits
// and increase the balance; everything else posts as a debit and decreases
// it. The balance accumulates over the whole input, with no date
// partitioning.
func deriveLedger(transactions []finance.Transaction) []finance.LedgerEntry {
	entries := []finance.LedgerEntry{}
	index := make(map[finance.Category]int)

	for _, tx := range transactions {
		i, ok := index[tx.Category]
		if !ok {
			i = len(entries)
			index[tx.Category] = i
			entries = append(entries, finance.LedgerEntry{Account: string(tx.Category)})
		}

		if tx.Category.IsCredit() {
			entries[i].Credit = entries[i].Credit.Add(tx.Amount)
			entries[i].Balance = entries[i].Balance.Add(tx.Amount)
		} else {
			entries[i].Debit = entries[i].Debit.Add(tx.Amount)
			entries[i].Balance = entries[i].Balance.Sub(tx.Amount)
		}
	}

	return entries
}
