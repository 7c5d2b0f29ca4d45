package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/zafrapp/zafra-backend-go/internal/domain/finance"
)

type FinanceServiceImpl struct {
	transactionRepo finance.TransactionRepository

	// cash-flow statement opening balance, fixed at startup
	openingBalance decimal.Decimal
}

func NewFinanceService(transactionRepo finance.TransactionRepository, openingBalance decimal.Decimal) finance.FinanceService {
	return &FinanceServiceImpl{
		transactionRepo: transactionRepo,
		openingBalance:  openingBalance,
	}
}

func (s *FinanceServiceImpl) CreateTransaction(ctx context.Context, req finance.CreateTransactionRequest) (finance.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return finance.TransactionResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	tx := finance.Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		AIStatus:    req.AIStatus,
		CreatedAt:   time.Now(),
	}

	created, err := s.transactionRepo.Create(ctx, tx)
	if err != nil {
		return finance.TransactionResponse{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return finance.ToTransactionResponse(created), nil
}

func (s *FinanceServiceImpl) ListTransactions(ctx context.Context) ([]finance.TransactionResponse, error) {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	result := make([]finance.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, finance.ToTransactionResponse(tx))
	}
	return result, nil
}

func (s *FinanceServiceImpl) GetLedger(ctx context.Context) ([]finance.LedgerEntry, error) {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return deriveLedger(transactions), nil
}

func (s *FinanceServiceImpl) GetBalanceSheet(ctx context.Context) (finance.BalanceSheetResponse, error) {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return finance.BalanceSheetResponse{}, fmt.Errorf("failed to list transactions: %w", err)
	}
	return buildBalanceSheet(transactions), nil
}

func (s *FinanceServiceImpl) GetProfitLoss(ctx context.Context) ([]finance.ProfitLossEntry, error) {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return buildProfitLoss(transactions), nil
}

func (s *FinanceServiceImpl) GetCashFlow(ctx context.Context) ([]finance.CashFlowEntry, error) {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return buildCashFlow(transactions, s.openingBalance), nil
}

func (s *FinanceServiceImpl) GetZisStatement(ctx context.Context) ([]finance.ZisEntry, error) {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return buildZisStatement(transactions), nil
}

func (s *FinanceServiceImpl) GetSummary(ctx context.Context) (finance.SummaryResponse, error) {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return finance.SummaryResponse{}, fmt.Errorf("failed to list transactions: %w", err)
	}
	return summarize(transactions), nil
}

// GetReports reads the log once and derives every statement from the same
// snapshot. The builders are pure, so they run in parallel.
func (s *FinanceServiceImpl) GetReports(ctx context.Context) (finance.ReportsResponse, error) {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return finance.ReportsResponse{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	var reports finance.ReportsResponse

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		reports.Ledger = deriveLedger(transactions)
		return nil
	})
	g.Go(func() error {
		reports.BalanceSheet = buildBalanceSheet(transactions)
		return nil
	})
	g.Go(func() error {
		reports.ProfitLoss = buildProfitLoss(transactions)
		return nil
	})
	g.Go(func() error {
		reports.CashFlow = buildCashFlow(transactions, s.openingBalance)
		return nil
	})
	g.Go(func() error {
		reports.Zis = buildZisStatement(transactions)
		return nil
	})
	g.Go(func() error {
		reports.Summary = summarize(transactions)
		return nil
	})
	if err := g.Wait(); err != nil {
		return finance.ReportsResponse{}, err
	}

	return reports, nil
}
