package finance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zafrapp/zafra-backend-go/internal/domain/finance"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeTransactionRepo struct {
	transactions []finance.Transaction
}

func (f *fakeTransactionRepo) ListAll(_ context.Context) ([]finance.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx finance.Transaction) (finance.Transaction, error) {
	f.transactions = append(f.transactions, tx)
	return tx, nil
}

func tx(category finance.Category, amount string) finance.Transaction {
	return finance.Transaction{
		Date:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Category: category,
		Amount:   dec(amount),
	}
}

func newTestFinanceService(transactions ...finance.Transaction) finance.FinanceService {
	repo := &fakeTransactionRepo{transactions: transactions}
	return NewFinanceService(repo, dec("5000000"))
}

func TestCreateTransaction(t *testing.T) {
	t.Parallel()

	repo := &fakeTransactionRepo{}
	svc := NewFinanceService(repo, dec("5000000"))

	resp, err := svc.CreateTransaction(context.Background(), finance.CreateTransactionRequest{
		Date:        "2025-01-15",
		Description: "Infaq Jumat",
		Category:    finance.CategoryZIS,
		Amount:      dec("500000"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2025-01-15", resp.Date)
	assert.Equal(t, finance.CategoryZIS, resp.Category)
	require.Len(t, repo.transactions, 1)
}

func TestCreateTransactionValidation(t *testing.T) {
	t.Parallel()

	svc := newTestFinanceService()

	_, err := svc.CreateTransaction(context.Background(), finance.CreateTransactionRequest{
		Date:        "15-01-2025",
		Description: "",
		Category:    finance.Category("Hadiah"),
		Amount:      dec("100"),
	})
	assert.Error(t, err)
}

func TestDeriveLedgerClassification(t *testing.T) {
	t.Parallel()

	entries := deriveLedger([]finance.Transaction{
		tx(finance.CategoryPendapatan, "1000"),
		tx(finance.CategoryBebanOperasional, "400"),
		tx(finance.CategoryZIS, "500"),
		tx(finance.CategoryPendapatan, "200"),
	})

	require.Len(t, entries, 3)

	assert.Equal(t, "Pendapatan", entries[0].Account)
	assert.True(t, entries[0].Credit.Equal(dec("1200")))
	assert.True(t, entries[0].Debit.IsZero())
	assert.True(t, entries[0].Balance.Equal(dec("1200")))

	assert.Equal(t, "Beban Operasional", entries[1].Account)
	assert.True(t, entries[1].Debit.Equal(dec("400")))
	assert.True(t, entries[1].Balance.Equal(dec("-400")))

	// ZIS posts as a credit even though it is not income
	assert.Equal(t, "ZIS", entries[2].Account)
	assert.True(t, entries[2].Credit.Equal(dec("500")))
}

func TestDeriveLedgerEmptyLog(t *testing.T) {
	t.Parallel()

	entries := deriveLedger(nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestBuildBalanceSheet(t *testing.T) {
	t.Parallel()

	sheet := buildBalanceSheet([]finance.Transaction{
		tx(finance.CategoryPendapatan, "1000"),
		tx(finance.CategoryBebanOperasional, "400"),
		tx(finance.CategoryAsetTetap, "2500"),
	})

	require.Len(t, sheet.Assets, 2)
	assert.Equal(t, "Kas", sheet.Assets[0].Account)
	assert.True(t, sheet.Assets[0].Amount.Equal(dec("600")))
	assert.Equal(t, "Aset Tetap", sheet.Assets[1].Account)
	assert.True(t, sheet.Assets[1].Amount.Equal(dec("2500")))

	require.Len(t, sheet.Equity, 3)
	assert.Equal(t, "Pendapatan", sheet.Equity[0].Account)
	assert.True(t, sheet.Equity[0].Amount.Equal(dec("1000")))
	assert.Equal(t, "Beban Operasional", sheet.Equity[1].Account)
	assert.True(t, sheet.Equity[1].Amount.Equal(dec("-400")))
	assert.Equal(t, "Modal", sheet.Equity[2].Account)
	assert.True(t, sheet.Equity[2].Amount.Equal(dec("600")))
}

func TestBuildProfitLoss(t *testing.T) {
	t.Parallel()

	entries := buildProfitLoss([]finance.Transaction{
		tx(finance.CategoryPendapatan, "1000"),
		tx(finance.CategoryPendapatanLain, "300"),
		tx(finance.CategoryBebanPokok, "400"),
	})

	require.Len(t, entries, 4)
	assert.Equal(t, "Pendapatan", entries[0].Description)
	assert.Equal(t, "Pendapatan Lain", entries[1].Description)
	assert.Equal(t, "Beban Pokok", entries[2].Description)
	assert.True(t, entries[2].Amount.Equal(dec("-400")))
	assert.Equal(t, "Laba Bersih", entries[3].Description)
	assert.True(t, entries[3].Amount.Equal(dec("900")))
}

func TestBuildCashFlow(t *testing.T) {
	t.Parallel()

	entries := buildCashFlow([]finance.Transaction{
		tx(finance.CategoryPendapatan, "1000"),
		tx(finance.CategoryBebanOperasional, "400"),
	}, dec("5000000"))

	require.Len(t, entries, 4)
	assert.Equal(t, "Saldo Awal", entries[0].Description)
	assert.True(t, entries[0].Amount.Equal(dec("5000000")))
	assert.Equal(t, "Penerimaan Operasional", entries[1].Description)
	assert.True(t, entries[1].Amount.Equal(dec("1000")))
	assert.Equal(t, "Pengeluaran Operasional", entries[2].Description)
	assert.True(t, entries[2].Amount.Equal(dec("-400")))
	assert.Equal(t, "Saldo Akhir", entries[3].Description)
	assert.True(t, entries[3].Amount.Equal(dec("5000600")))
}

func TestBuildZisStatement(t *testing.T) {
	t.Parallel()

	entries := buildZisStatement([]finance.Transaction{
		tx(finance.CategoryZIS, "500"),
		tx(finance.CategoryZIS, "-200"),
		tx(finance.CategoryPendapatan, "9999"),
	})

	require.Len(t, entries, 3)
	assert.Equal(t, "Penerimaan ZIS", entries[0].Description)
	assert.True(t, entries[0].Amount.Equal(dec("500")))
	assert.Equal(t, "Penyaluran ZIS", entries[1].Description)
	assert.True(t, entries[1].Amount.Equal(dec("200")))
	assert.Equal(t, "Saldo ZIS", entries[2].Description)
	assert.True(t, entries[2].Amount.Equal(dec("300")))
}

func TestBuildZisStatementEmptyWhenNoZisTransactions(t *testing.T) {
	t.Parallel()

	entries := buildZisStatement([]finance.Transaction{
		tx(finance.CategoryPendapatan, "1000"),
	})

	// No ZIS activity yields an empty statement, not three zero lines.
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	summary := summarize([]finance.Transaction{
		tx(finance.CategoryPendapatan, "1000"),
		tx(finance.CategoryBebanOperasional, "400"),
		tx(finance.CategoryZIS, "500"),
	})

	assert.True(t, summary.Income.Equal(dec("1000")))
	assert.True(t, summary.Expenses.Equal(dec("400")))
	assert.True(t, summary.Zis.Equal(dec("500")))
	assert.True(t, summary.Net.Equal(dec("600")))
	assert.True(t, summary.Cash.Equal(dec("600")))
}

func TestSummarizeAbsoluteExpenses(t *testing.T) {
	t.Parallel()

	// Negative expense amounts still add to the expense total.
	summary := summarize([]finance.Transaction{
		tx(finance.CategoryBebanPokok, "-400"),
	})

	assert.True(t, summary.Expenses.Equal(dec("400")))
	assert.True(t, summary.Net.Equal(dec("-400")))
}

func TestGetReportsBundlesAllStatements(t *testing.T) {
	t.Parallel()

	svc := newTestFinanceService(
		tx(finance.CategoryPendapatan, "1000"),
		tx(finance.CategoryBebanOperasional, "400"),
		tx(finance.CategoryZIS, "500"),
	)

	reports, err := svc.GetReports(context.Background())
	require.NoError(t, err)

	assert.Len(t, reports.Ledger, 3)
	assert.Len(t, reports.ProfitLoss, 3)
	assert.Len(t, reports.CashFlow, 4)
	assert.Len(t, reports.Zis, 3)
	assert.True(t, reports.Summary.Net.Equal(dec("600")))
	require.NotEmpty(t, reports.BalanceSheet.Equity)
	last := reports.BalanceSheet.Equity[len(reports.BalanceSheet.Equity)-1]
	assert.Equal(t, "Modal", last.Account)
}
