package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/zafrapp/zafra-backend-go/internal/domain/payroll"
	"github.com/zafrapp/zafra-backend-go/internal/domain/zakat"
)

// Calculator performs the pure payroll arithmetic. Stateless and safe for
// concurrent use.
type Calculator struct {
	rule zakat.Rule
}

func NewCalculator(rule zakat.Rule) *Calculator {
	return &Calculator{rule: rule}
}

// TotalAllowances sums the four allowance components. Negative operands are
// clamped to zero at the edge; input validation is the caller's job.
func (c *Calculator) TotalAllowances(b payroll.AllowanceBucket) decimal.Decimal {
	return clampZero(b.Transport).
		Add(clampZero(b.Meals)).
		Add(clampZero(b.Housing)).
		Add(clampZero(b.Other))
}

// TotalDeductions sums the four deduction components, clamping negatives.
func (c *Calculator) TotalDeductions(b payroll.DeductionBucket) decimal.Decimal {
	return clampZero(b.BPJS).
		Add(clampZero(b.Tax)).
		Add(clampZero(b.Loans)).
		Add(clampZero(b.Other))
}

// Zakat returns 2.5% of totalIncome when it is at or above nisab, else zero.
func (c *Calculator) Zakat(totalIncome decimal.Decimal) decimal.Decimal {
	return c.rule.Due(totalIncome)
}

// NetSalary is totalIncome - totalDeductions - zakat. The result may be
// negative; that condition is surfaced, not corrected here.
func (c *Calculator) NetSalary(totalIncome, totalDeductions, zakatDue decimal.Decimal) decimal.Decimal {
	return totalIncome.Sub(totalDeductions).Sub(zakatDue)
}

// Recompute refreshes every derived field of the record from its inputs.
func (c *Calculator) Recompute(r *payroll.PayrollRecord) {
	r.TotalAllowances = c.TotalAllowances(r.Allowances)
	r.TotalDeductions = c.TotalDeductions(r.Deductions)

	totalIncome := r.BasicSalary.Add(r.TotalAllowances)
	r.Zakat = c.Zakat(totalIncome)
	r.NetSalary = c.NetSalary(totalIncome, r.TotalDeductions, r.Zakat)
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
