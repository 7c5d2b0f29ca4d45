package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum. Intended lifecycle: Draft -> Pending -> Paid.
type PayrollStatus string

const (
	PayrollStatusDraft   PayrollStatus = "Draft"
	PayrollStatusPending PayrollStatus = "Pending"
	PayrollStatusPaid    PayrollStatus = "Paid"
)

// AllowanceBucket - the four fixed allowance components. All non-negative.
type AllowanceBucket struct {
	Transport decimal.Decimal
	Meals     decimal.Decimal
	Housing   decimal.Decimal
	Other     decimal.Decimal
}

// DeductionBucket - the four fixed deduction components. All non-negative.
type DeductionBucket struct {
	BPJS  decimal.Decimal
	Tax   decimal.Decimal
	Loans decimal.Decimal
	Other decimal.Decimal
}

// PayrollRecord - one per (employee, month). The composite key
// "employeeID_month" is the record id; there is no surrogate key.
type PayrollRecord struct {
	ID              string
	EmployeeID      string
	EmployeeName    string
	Position        string
	Month           string // "YYYY-MM"
	BasicSalary     decimal.Decimal
	Allowances      AllowanceBucket
	Deductions      DeductionBucket
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	Zakat           decimal.Decimal
	NetSalary       decimal.Decimal
	Status          PayrollStatus
	PaymentDate     *time.Time // set only when Status is Paid
	ZakatPaid       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RecordID builds the composite record key for an employee and month.
func RecordID(employeeID, month string) string {
	return employeeID + "_" + month
}

// TotalIncome is basic salary plus total allowances.
func (r PayrollRecord) TotalIncome() decimal.Decimal {
	return r.BasicSalary.Add(r.TotalAllowances)
}
