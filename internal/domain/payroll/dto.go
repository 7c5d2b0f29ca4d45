package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zafrapp/zafra-backend-go/internal/pkg/validator"
)

// ========== UPSERT DTOs ==========

type AllowanceInput struct {
	Transport decimal.Decimal `json:"transport"`
	Meals     decimal.Decimal `json:"meals"`
	Housing   decimal.Decimal `json:"housing"`
	Other     decimal.Decimal `json:"other"`
}

type DeductionInput struct {
	BPJS  decimal.Decimal `json:"bpjs"`
	Tax   decimal.Decimal `json:"tax"`
	Loans decimal.Decimal `json:"loans"`
	Other decimal.Decimal `json:"other"`
}

// UpsertPayrollRequest is the explicit update command for a single employee's
// monthly record. Nil fields keep the stored value; absent buckets default to
// all-zero on first creation. Status is ignored on creation (forced to Draft).
type UpsertPayrollRequest struct {
	EmployeeID   string           `json:"-"`
	Month        string           `json:"-"`
	EmployeeName *string          `json:"employee_name,omitempty"`
	Position     *string          `json:"position,omitempty"`
	BasicSalary  *decimal.Decimal `json:"basic_salary,omitempty"`
	Allowances   *AllowanceInput  `json:"allowances,omitempty"`
	Deductions   *DeductionInput  `json:"deductions,omitempty"`
	Status       *PayrollStatus   `json:"status,omitempty"`
	ZakatPaid    *bool            `json:"zakat_paid,omitempty"`
}

func (r *UpsertPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.Status != nil {
		switch *r.Status {
		case PayrollStatusDraft, PayrollStatusPending, PayrollStatusPaid:
		default:
			errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Draft, Pending or Paid"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RECORD DTOs ==========

type PayrollRecordResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	Position        string          `json:"position"`
	Month           string          `json:"month"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	Allowances      AllowanceInput  `json:"allowances"`
	Deductions      DeductionInput  `json:"deductions"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	Zakat           decimal.Decimal `json:"zakat"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	Status          string          `json:"status"`
	PaymentDate     *string         `json:"payment_date,omitempty"`
	ZakatPaid       bool            `json:"zakat_paid"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

func ToRecordResponse(r PayrollRecord) PayrollRecordResponse {
	var paymentDate *string
	if r.PaymentDate != nil {
		str := r.PaymentDate.Format(time.RFC3339)
		paymentDate = &str
	}

	return PayrollRecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Position:     r.Position,
		Month:        r.Month,
		BasicSalary:  r.BasicSalary,
		Allowances: AllowanceInput{
			Transport: r.Allowances.Transport,
			Meals:     r.Allowances.Meals,
			Housing:   r.Allowances.Housing,
			Other:     r.Allowances.Other,
		},
		Deductions: DeductionInput{
			BPJS:  r.Deductions.BPJS,
			Tax:   r.Deductions.Tax,
			Loans: r.Deductions.Loans,
			Other: r.Deductions.Other,
		},
		TotalAllowances: r.TotalAllowances,
		TotalDeductions: r.TotalDeductions,
		Zakat:           r.Zakat,
		NetSalary:       r.NetSalary,
		Status:          string(r.Status),
		PaymentDate:     paymentDate,
		ZakatPaid:       r.ZakatPaid,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToRecordResponses(records []PayrollRecord) []PayrollRecordResponse {
	result := make([]PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToRecordResponse(r))
	}
	return result
}

// ========== GENERATION DTOs ==========

type GenerateFailure struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

// GenerateReport collects per-employee outcomes of a monthly generation pass
// so callers can retry only the failures.
type GenerateReport struct {
	Month   string                  `json:"month"`
	Created []string                `json:"created"`
	Skipped []string                `json:"skipped"`
	Failed  []GenerateFailure       `json:"failed,omitempty"`
	Records []PayrollRecordResponse `json:"records"`
}

// ========== COMPLIANCE DTOs ==========

type NonCompliantEmployee struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	TotalIncome  decimal.Decimal `json:"total_income"`
}

type ComplianceReport struct {
	Month               string                 `json:"month"`
	TotalZakatCollected decimal.Decimal        `json:"total_zakat_collected"`
	AboveNisabCount     int                    `json:"above_nisab_count"`
	ZakatPaidCount      int                    `json:"zakat_paid_count"`
	NonCompliant        []NonCompliantEmployee `json:"non_compliant"`
}

// ========== SUMMARY DTOs ==========

type PayrollSummaryResponse struct {
	Month            string          `json:"month"`
	TotalEmployees   int             `json:"total_employees"`
	TotalBasicSalary decimal.Decimal `json:"total_basic_salary"`
	TotalAllowances  decimal.Decimal `json:"total_allowances"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	TotalZakat       decimal.Decimal `json:"total_zakat"`
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
	DraftCount       int             `json:"draft_count"`
	PendingCount     int             `json:"pending_count"`
	PaidCount        int             `json:"paid_count"`
}
