package finance

import "context"

type FinanceService interface {
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error)
	ListTransactions(ctx context.Context) ([]TransactionResponse, error)

	GetLedger(ctx context.Context) ([]LedgerEntry, error)
	GetBalanceSheet(ctx context.Context) (BalanceSheetResponse, error)
	GetProfitLoss(ctx context.Context) ([]ProfitLossEntry, error)
	GetCashFlow(ctx context.Context) ([]CashFlowEntry, error)
	GetZisStatement(ctx context.Context) ([]ZisEntry, error)
	GetSummary(ctx context.Context) (SummaryResponse, error)

	// GetReports builds every statement from one read of the log.
	GetReports(ctx context.Context) (ReportsResponse, error)
}
