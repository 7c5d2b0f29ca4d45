package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/zafrapp/zafra-backend-go/internal/domain/payroll"
	"github.com/zafrapp/zafra-backend-go/internal/domain/zakat"
)

// EvaluateCompliance aggregates one month's payroll population into zakat
// compliance statistics. Employees without a record for the month are left
// out of every count: compliance is only evaluated once a payroll exists.
func (s *PayrollServiceImpl) EvaluateCompliance(ctx context.Context, month string) (payroll.ComplianceReport, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return payroll.ComplianceReport{}, payroll.ErrInvalidMonth
	}

	records, err := s.payrollRepo.ListByMonth(ctx, month)
	if err != nil {
		return payroll.ComplianceReport{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	report := evaluateCompliance(records, s.rule)
	report.Month = month
	return report, nil
}

func evaluateCompliance(records []payroll.PayrollRecord, rule zakat.Rule) payroll.ComplianceReport {
	report := payroll.ComplianceReport{
		NonCompliant: []payroll.NonCompliantEmployee{},
	}

	for _, r := range records {
		totalIncome := r.TotalIncome()
		shouldPayZakat := rule.Obligatory(totalIncome)
		if shouldPayZakat {
			report.AboveNisabCount++
		}

		// A positive computed zakat counts as collected no matter where the
		// income sits relative to nisab.
		if r.Zakat.IsPositive() {
			report.TotalZakatCollected = report.TotalZakatCollected.Add(r.Zakat)
			report.ZakatPaidCount++
			continue
		}

		if shouldPayZakat {
			report.NonCompliant = append(report.NonCompliant, payroll.NonCompliantEmployee{
				EmployeeID:   r.EmployeeID,
				EmployeeName: r.EmployeeName,
				TotalIncome:  totalIncome,
			})
		}
	}

	return report
}
