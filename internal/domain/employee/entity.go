package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        string
	Name      string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile carries the per-employee default compensation template used when a
// monthly payroll record is first generated. DefaultBasicSalary is nil when
// HR has not configured compensation yet; such employees are skipped by the
// monthly generator.
type Profile struct {
	EmployeeID         string
	Name               string
	Role               string
	DefaultBasicSalary *decimal.Decimal
	DefaultAllowances  *AllowanceDefaults
	DefaultDeductions  *DeductionDefaults
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type AllowanceDefaults struct {
	Transport decimal.Decimal
	Meals     decimal.Decimal
	Housing   decimal.Decimal
	Other     decimal.Decimal
}

type DeductionDefaults struct {
	BPJS  decimal.Decimal
	Tax   decimal.Decimal
	Loans decimal.Decimal
	Other decimal.Decimal
}
