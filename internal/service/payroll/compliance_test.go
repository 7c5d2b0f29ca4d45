package payroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zafrapp/zafra-backend-go/internal/domain/payroll"
)

func TestEvaluateComplianceCounts(t *testing.T) {
	t.Parallel()

	// nisab is 102,000,000 under the test rule
	records := []payroll.PayrollRecord{
		// above nisab, zakat computed: collected
		{EmployeeID: "emp-1", EmployeeName: "Aisyah", BasicSalary: dec("150000000"), TotalAllowances: dec("0"), Zakat: dec("3750000")},
		// above nisab, zakat zero: non-compliant
		{EmployeeID: "emp-2", EmployeeName: "Budi", BasicSalary: dec("110000000"), TotalAllowances: dec("0"), Zakat: dec("0")},
		// below nisab, no zakat: just not obligated
		{EmployeeID: "emp-3", EmployeeName: "Citra", BasicSalary: dec("10000000"), TotalAllowances: dec("0"), Zakat: dec("0")},
		// below nisab but zakat recorded anyway: still counted as collected
		{EmployeeID: "emp-4", EmployeeName: "Dedi", BasicSalary: dec("10000000"), TotalAllowances: dec("0"), Zakat: dec("250000")},
	}

	report := evaluateCompliance(records, testRule())

	assert.Equal(t, 2, report.AboveNisabCount)
	assert.Equal(t, 2, report.ZakatPaidCount)
	assert.True(t, report.TotalZakatCollected.Equal(dec("4000000")),
		"collected = %s", report.TotalZakatCollected)

	require.Len(t, report.NonCompliant, 1)
	assert.Equal(t, "emp-2", report.NonCompliant[0].EmployeeID)
	assert.True(t, report.NonCompliant[0].TotalIncome.Equal(dec("110000000")))
}

func TestEvaluateComplianceUsesTotalIncome(t *testing.T) {
	t.Parallel()

	// Basic salary below nisab, allowances push total income over it.
	records := []payroll.PayrollRecord{
		{EmployeeID: "emp-1", BasicSalary: dec("100000000"), TotalAllowances: dec("5000000"), Zakat: dec("0")},
	}

	report := evaluateCompliance(records, testRule())

	assert.Equal(t, 1, report.AboveNisabCount)
	require.Len(t, report.NonCompliant, 1)
	assert.True(t, report.NonCompliant[0].TotalIncome.Equal(dec("105000000")))
}

func TestEvaluateComplianceEmptyMonth(t *testing.T) {
	t.Parallel()

	report := evaluateCompliance(nil, testRule())

	assert.Equal(t, 0, report.AboveNisabCount)
	assert.Equal(t, 0, report.ZakatPaidCount)
	assert.True(t, report.TotalZakatCollected.IsZero())
	assert.NotNil(t, report.NonCompliant)
	assert.Empty(t, report.NonCompliant)
}

func TestEvaluateComplianceService(t *testing.T) {
	t.Parallel()

	repo := newFakePayrollRepo()
	svc := newTestService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, payroll.UpsertPayrollRequest{
		EmployeeID:  "emp-1",
		Month:       "2025-01",
		BasicSalary: decPtr("150000000"),
	})
	require.NoError(t, err)

	report, err := svc.EvaluateCompliance(ctx, "2025-01")
	require.NoError(t, err)

	assert.Equal(t, "2025-01", report.Month)
	assert.Equal(t, 1, report.AboveNisabCount)
	assert.Equal(t, 1, report.ZakatPaidCount)
	assert.True(t, report.TotalZakatCollected.Equal(dec("3750000")))

	_, err = svc.EvaluateCompliance(ctx, "not-a-month")
	assert.ErrorIs(t, err, payroll.ErrInvalidMonth)
}
