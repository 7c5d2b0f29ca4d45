package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zafrapp/zafra-backend-go/internal/pkg/validator"
)

// ========== TRANSACTION DTOs ==========

type CreateTransactionRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	AIStatus    string          `json:"ai_status,omitempty"`
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	switch r.Category {
	case CategoryPendapatan, CategoryPendapatanLain, CategoryBebanPokok,
		CategoryBebanOperasional, CategoryAsetTetap, CategoryZIS, CategoryPengeluaranLain:
	default:
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is not a known category"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	AIStatus    string          `json:"ai_status,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

func ToTransactionResponse(t Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.Date.Format("2006-01-02"),
		Description: t.Description,
		Category:    t.Category,
		Amount:      t.Amount,
		AIStatus:    t.AIStatus,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

// ========== STATEMENT DTOs ==========
// Statements are ephemeral: recomputed from the log on every query, never
// persisted.

type LedgerEntry struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

type BalanceEntry struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

type BalanceSheetResponse struct {
	Assets []BalanceEntry `json:"assets"`
	Equity []BalanceEntry `json:"equity"`
}

type ProfitLossEntry struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type CashFlowEntry struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type ZisEntry struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type SummaryResponse struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Zis      decimal.Decimal `json:"zis"`
	Net      decimal.Decimal `json:"net"`
	Cash     decimal.Decimal `json:"cash"`
}

// ReportsResponse bundles every derived statement for the report page.
type ReportsResponse struct {
	Ledger       []LedgerEntry        `json:"ledger"`
	BalanceSheet BalanceSheetResponse `json:"balance_sheet"`
	ProfitLoss   []ProfitLossEntry    `json:"profit_loss"`
	CashFlow     []CashFlowEntry      `json:"cash_flow"`
	Zis          []ZisEntry           `json:"zis"`
	Summary      SummaryResponse      `json:"summary"`
}
