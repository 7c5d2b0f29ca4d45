package finance

import (
	"github.com/zafrapp/zafra-backend-go/internal/domain/finance"
)

// summarize is the single-pass dashboard rollup. Unlike the ledger and
// statement builders, income here matches the category EXACTLY against
// "Pendapatan" and "Pendapatan Lain" - the two classifiers have historically
// served different audiences and the difference is kept on purpose.
func summarize(transactions []finance.Transaction) finance.SummaryResponse {
	var s finance.SummaryResponse

	for _, tx := range transactions {
		switch {
		case tx.Category == finance.CategoryPendapatan || tx.Category == finance.CategoryPendapatanLain:
			s.Income = s.Income.Add(tx.Amount)
		case tx.Category.IsExpense():
			s.Expenses = s.Expenses.Add(tx.Amount.Abs())
		case tx.Category.IsZIS():
			s.Zis = s.Zis.Add(tx.Amount)
		}
	}

	s.Net = s.Income.Sub(s.Expenses)
	// Same formula as net today, kept as its own field because the dashboard
	// labels them differently.
	s.Cash = s.Income.Sub(s.Expenses)

	return s
}
