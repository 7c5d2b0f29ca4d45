package payroll

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zafrapp/zafra-backend-go/internal/domain/employee"
	"github.com/zafrapp/zafra-backend-go/internal/domain/payroll"
)

func generatorFixtures() (*fakeEmployeeRepo, *fakeProfileRepo) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Name: "Aisyah", Role: "Bendahara"},
		{ID: "emp-2", Name: "Budi", Role: "Staf"},
		{ID: "emp-3", Name: "Citra", Role: "Relawan"},
		{ID: "emp-4", Name: "Dedi", Role: "Staf"},
	}}
	profiles := &fakeProfileRepo{profiles: map[string]employee.Profile{
		"emp-1": {
			EmployeeID:         "emp-1",
			DefaultBasicSalary: decPtr("150000000"),
			DefaultAllowances:  &employee.AllowanceDefaults{Transport: dec("1000000")},
		},
		"emp-2": {
			EmployeeID:         "emp-2",
			DefaultBasicSalary: decPtr("10000000"),
			DefaultDeductions:  &employee.DeductionDefaults{BPJS: dec("150000")},
		},
		// emp-3 has a profile but no configured salary
		"emp-3": {EmployeeID: "emp-3"},
		// emp-4 has no profile at all
	}}
	return employees, profiles
}

func TestGenerateCreatesRecordsFromProfiles(t *testing.T) {
	t.Parallel()

	repo := newFakePayrollRepo()
	employees, profiles := generatorFixtures()
	svc := newTestService(repo, employees, profiles)

	report, err := svc.Generate(context.Background(), "2025-01")
	require.NoError(t, err)

	assert.Equal(t, "2025-01", report.Month)
	assert.Equal(t, []string{"emp-1", "emp-2"}, report.Created)
	assert.ElementsMatch(t, []string{"emp-3", "emp-4"}, report.Skipped)
	assert.Empty(t, report.Failed)
	require.Len(t, report.Records, 2)

	// All records of the month end the pass as Pending.
	for _, r := range report.Records {
		assert.Equal(t, string(payroll.PayrollStatusPending), r.Status)
	}

	first := report.Records[0]
	assert.Equal(t, "emp-1_2025-01", first.ID)
	assert.Equal(t, "Aisyah", first.EmployeeName)
	assert.True(t, first.TotalAllowances.Equal(dec("1000000")))
	// 151,000,000 total income, above nisab
	assert.True(t, first.Zakat.Equal(dec("3775000")), "zakat = %s", first.Zakat)

	second := report.Records[1]
	assert.True(t, second.TotalDeductions.Equal(dec("150000")))
	assert.True(t, second.Zakat.IsZero())
}

func TestGenerateCreationIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := newFakePayrollRepo()
	employees, profiles := generatorFixtures()
	svc := newTestService(repo, employees, profiles)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "2025-01")
	require.NoError(t, err)

	// Hand-edit one record between passes; the rerun must not rebuild it
	// from the profile defaults.
	_, err = svc.Upsert(ctx, payroll.UpsertPayrollRequest{
		EmployeeID:  "emp-2",
		Month:       "2025-01",
		BasicSalary: decPtr("12000000"),
	})
	require.NoError(t, err)

	report, err := svc.Generate(ctx, "2025-01")
	require.NoError(t, err)

	assert.Empty(t, report.Created)

	record, err := svc.GetRecord(ctx, "emp-2_2025-01")
	require.NoError(t, err)
	assert.True(t, record.BasicSalary.Equal(dec("12000000")))
}

func TestGenerateRestampsPaidRecordsToPending(t *testing.T) {
	t.Parallel()

	repo := newFakePayrollRepo()
	employees, profiles := generatorFixtures()
	svc := newTestService(repo, employees, profiles)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "2025-01")
	require.NoError(t, err)

	paid, err := svc.MarkPaid(ctx, "emp-1_2025-01")
	require.NoError(t, err)
	require.Equal(t, string(payroll.PayrollStatusPaid), paid.Status)

	// The rerun pulls the already-paid record back to Pending. Current
	// behavior, kept until the lifecycle rule is settled.
	_, err = svc.Generate(ctx, "2025-01")
	require.NoError(t, err)

	record, err := svc.GetRecord(ctx, "emp-1_2025-01")
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusPending), record.Status)
}

func TestGenerateCollectsPerEmployeeFailures(t *testing.T) {
	t.Parallel()

	repo := newFakePayrollRepo()
	repo.setErr["emp-2_2025-01"] = errors.New("write refused")
	employees, profiles := generatorFixtures()
	svc := newTestService(repo, employees, profiles)

	report, err := svc.Generate(context.Background(), "2025-01")
	require.NoError(t, err)

	assert.Equal(t, []string{"emp-1"}, report.Created)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "emp-2", report.Failed[0].EmployeeID)
	assert.Contains(t, report.Failed[0].Error, "write refused")

	// The failed employee must not have a record.
	_, getErr := svc.GetRecord(context.Background(), "emp-2_2025-01")
	assert.ErrorIs(t, getErr, payroll.ErrPayrollRecordNotFound)
}

func TestGenerateRejectsBadMonth(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakePayrollRepo(), nil, nil)

	_, err := svc.Generate(context.Background(), "01-2025")
	assert.ErrorIs(t, err, payroll.ErrInvalidMonth)
}
