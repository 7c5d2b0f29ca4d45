package finance

import (
	"github.com/shopspring/decimal"

	"github.com/zafrapp/zafra-backend-go/internal/domain/finance"
)

// categoryTotals sums amounts per category preserving first-appearance order.
type categoryTotals struct {
	order  []finance.Category
	totals map[finance.Category]decimal.Decimal
}

func sumByCategory(transactions []finance.Transaction) categoryTotals {
	ct := categoryTotals{totals: make(map[finance.Category]decimal.Decimal)}
	for _, tx := range transactions {
		if _, ok := ct.totals[tx.Category]; !ok {
			ct.order = append(ct.order, tx.Category)
		}
		ct.totals[tx.Category] = ct.totals[tx.Category].Add(tx.Amount)
	}
	return ct
}

func totalIncome(ct categoryTotals) decimal.Decimal {
	total := decimal.Zero
	for _, c := range ct.order {
		if c.IsIncome() {
			total = total.Add(ct.totals[c])
		}
	}
	return total
}

func totalExpenses(ct categoryTotals) decimal.Decimal {
	total := decimal.Zero
	for _, c := range ct.order {
		if c.IsExpense() {
			total = total.Add(ct.totals[c])
		}
	}
	return total
}

// buildBalanceSheet derives assets and equity from the log. Cash is income
// minus expenses; fixed assets come through at their recorded amounts. The
// equity side lists income categories positive, expense categories negative,
// and closes with the "Modal" capital line.
func buildBalanceSheet(transactions []finance.Transaction) finance.BalanceSheetResponse {
	ct := sumByCategory(transactions)
	income := totalIncome(ct)
	expenses := totalExpenses(ct)

	assets := []finance.BalanceEntry{
		{Account: "Kas", Amount: income.Sub(expenses)},
	}
	for _, c := range ct.order {
		if c == finance.CategoryAsetTetap {
			assets = append(assets, finance.BalanceEntry{Account: string(c), Amount: ct.totals[c]})
		}
	}

	equity := []finance.BalanceEntry{}
	for _, c := range ct.order {
		switch {
		case c.IsIncome():
			equity = append(equity, finance.BalanceEntry{Account: string(c), Amount: ct.totals[c]})
		case c.IsExpense():
			equity = append(equity, finance.BalanceEntry{Account: string(c), Amount: ct.totals[c].Neg()})
		}
	}
	equity = append(equity, finance.BalanceEntry{Account: "Modal", Amount: income.Sub(expenses)})

	return finance.BalanceSheetResponse{Assets: assets, Equity: equity}
}

// buildProfitLoss lists one line per income category, one negated line per
// expense category, and a synthetic "Laba Bersih" net income line.
func buildProfitLoss(transactions []finance.Transaction) []finance.ProfitLossEntry {
	ct := sumByCategory(transactions)

	entries := []finance.ProfitLossEntry{}
	for _, c := range ct.order {
		if c.IsIncome() {
			entries = append(entries, finance.ProfitLossEntry{Description: string(c), Amount: ct.totals[c]})
		}
	}
	for _, c := range ct.order {
		if c.IsExpense() {
			entries = append(entries, finance.ProfitLossEntry{Description: string(c), Amount: ct.totals[c].Neg()})
		}
	}
	entries = append(entries, finance.ProfitLossEntry{
		Description: "Laba Bersih",
		Amount:      totalIncome(ct).Sub(totalExpenses(ct)),
	})

	return entries
}

// buildCashFlow produces the four fixed lines of the cash-flow statement.
// The opening balance is a deployment constant, not derived from the log.
func buildCashFlow(transactions []finance.Transaction, openingBalance decimal.Decimal) []finance.CashFlowEntry {
	ct := sumByCategory(transactions)
	income := totalIncome(ct)
	expenses := totalExpenses(ct)

	return []finance.CashFlowEntry{
		{Description: "Saldo Awal", Amount: openingBalance},
		{Description: "Penerimaan Operasional", Amount: income},
		{Description: "Pengeluaran Operasional", Amount: expenses.Neg()},
		{Description: "Saldo Akhir", Amount: openingBalance.Add(income).Sub(expenses)},
	}
}

// buildZisStatement covers only transactions in the literal ZIS category,
// split by sign: positive amounts are receipts, negative ones distributions.
// With no ZIS transactions at all the statement is empty, which callers must
// treat differently from a zero balance.
func buildZisStatement(transactions []finance.Transaction) []finance.ZisEntry {
	receipts := decimal.Zero
	distributions := decimal.Zero
	found := false

	for _, tx := range transactions {
		if !tx.Category.IsZIS() {
			continue
		}
		found = true
		if tx.Amount.IsNegative() {
			distributions = distributions.Sub(tx.Amount)
		} else {
			receipts = receipts.Add(tx.Amount)
		}
	}

	if !found {
		return []finance.ZisEntry{}
	}

	return []finance.ZisEntry{
		{Description: "Penerimaan ZIS", Amount: receipts},
		{Description: "Penyaluran ZIS", Amount: distributions},
		{Description: "Saldo ZIS", Amount: receipts.Sub(distributions)},
	}
}
