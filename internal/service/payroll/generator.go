package payroll

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zafrapp/zafra-backend-go/internal/domain/employee"
	"github.com/zafrapp/zafra-backend-go/internal/domain/payroll"
)

// Generate runs one monthly payroll pass over the whole employee population.
//
// Creation is idempotent: employees that already have a record for the month
// are left alone, and employees whose profile has no default basic salary are
// skipped without error. The pass is NOT status-idempotent: after creation,
// every record of the month is unconditionally re-stamped to Pending - a Paid
// record comes back as Pending too. That matches the current business rule as
// observed; whether it is intended is an open stakeholder question.
//
// Each employee is processed as an independent task writing a distinct key.
// Per-employee failures are collected into the report instead of aborting the
// pass, so callers can retry just the failures. There is no compensating
// rollback; a partially failed pass leaves the month partially updated.
func (s *PayrollServiceImpl) Generate(ctx context.Context, month string) (payroll.GenerateReport, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return payroll.GenerateReport{}, payroll.ErrInvalidMonth
	}

	employees, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return payroll.GenerateReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	existing, err := s.payrollRepo.ListByMonth(ctx, month)
	if err != nil {
		return payroll.GenerateReport{}, fmt.Errorf("failed to list payroll records: %w", err)
	}
	hasRecord := make(map[string]bool, len(existing))
	for _, r := range existing {
		hasRecord[r.EmployeeID] = true
	}

	report := payroll.GenerateReport{
		Month:   month,
		Created: []string{},
		Skipped: []string{},
	}
	var mu sync.Mutex

	var g errgroup.Group
	for _, emp := range employees {
		if hasRecord[emp.ID] {
			continue
		}

		emp := emp
		g.Go(func() error {
			outcome := s.createFromProfile(ctx, emp, month)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case outcome.err != nil:
				report.Failed = append(report.Failed, payroll.GenerateFailure{
					EmployeeID: emp.ID,
					Error:      outcome.err.Error(),
				})
			case outcome.skipped:
				report.Skipped = append(report.Skipped, emp.ID)
			default:
				report.Created = append(report.Created, emp.ID)
			}
			return nil
		})
	}
	_ = g.Wait()

	// Bulk transition: every record of the month goes to Pending, including
	// records already further along in the lifecycle.
	refreshed, err := s.payrollRepo.ListByMonth(ctx, month)
	if err != nil {
		return payroll.GenerateReport{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	pending := payroll.PayrollStatusPending
	var sg errgroup.Group
	for _, r := range refreshed {
		r := r
		sg.Go(func() error {
			if err := s.payrollRepo.Update(ctx, r.ID, payroll.RecordPatch{Status: &pending}); err != nil {
				mu.Lock()
				report.Failed = append(report.Failed, payroll.GenerateFailure{
					EmployeeID: r.EmployeeID,
					Error:      err.Error(),
				})
				mu.Unlock()
			}
			return nil
		})
	}
	_ = sg.Wait()

	final, err := s.payrollRepo.ListByMonth(ctx, month)
	if err != nil {
		return payroll.GenerateReport{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	sort.Strings(report.Created)
	sort.Strings(report.Skipped)
	report.Records = payroll.ToRecordResponses(final)

	return report, nil
}

type generateOutcome struct {
	skipped bool
	err     error
}

func (s *PayrollServiceImpl) createFromProfile(ctx context.Context, emp employee.Employee, month string) generateOutcome {
	profile, err := s.profileRepo.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, employee.ErrProfileNotFound) {
			return generateOutcome{skipped: true}
		}
		return generateOutcome{err: err}
	}
	if profile.DefaultBasicSalary == nil {
		return generateOutcome{skipped: true}
	}

	now := time.Now()
	record := payroll.PayrollRecord{
		ID:           payroll.RecordID(emp.ID, month),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Position:     emp.Role,
		Month:        month,
		BasicSalary:  *profile.DefaultBasicSalary,
		Status:       payroll.PayrollStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if profile.DefaultAllowances != nil {
		record.Allowances = payroll.AllowanceBucket{
			Transport: profile.DefaultAllowances.Transport,
			Meals:     profile.DefaultAllowances.Meals,
			Housing:   profile.DefaultAllowances.Housing,
			Other:     profile.DefaultAllowances.Other,
		}
	}
	if profile.DefaultDeductions != nil {
		record.Deductions = payroll.DeductionBucket{
			BPJS:  profile.DefaultDeductions.BPJS,
			Tax:   profile.DefaultDeductions.Tax,
			Loans: profile.DefaultDeductions.Loans,
			Other: profile.DefaultDeductions.Other,
		}
	}

	s.calc.Recompute(&record)

	if _, err := s.payrollRepo.Set(ctx, record); err != nil {
		return generateOutcome{err: err}
	}
	return generateOutcome{}
}
