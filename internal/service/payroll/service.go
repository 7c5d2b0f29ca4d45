package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zafrapp/zafra-backend-go/internal/domain/employee"
	"github.com/zafrapp/zafra-backend-go/internal/domain/payroll"
	"github.com/zafrapp/zafra-backend-go/internal/domain/zakat"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	profileRepo  employee.ProfileRepository
	employeeRepo employee.EmployeeRepository
	calc         *Calculator
	rule         zakat.Rule
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	profileRepo employee.ProfileRepository,
	employeeRepo employee.EmployeeRepository,
	rule zakat.Rule,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		profileRepo:  profileRepo,
		employeeRepo: employeeRepo,
		calc:         NewCalculator(rule),
		rule:         rule,
	}
}

// Upsert creates or merge-updates one employee's record for a month. Derived
// totals are recomputed from the merged fields. A caller-supplied zakat_paid
// wins; otherwise the stored value is kept. First creation always starts at
// Draft no matter what status the caller sent.
func (s *PayrollServiceImpl) Upsert(ctx context.Context, req payroll.UpsertPayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	id := payroll.RecordID(req.EmployeeID, req.Month)

	record, err := s.payrollRepo.Get(ctx, id)
	isNew := false
	if err != nil {
		if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to read payroll record: %w", err)
		}
		isNew = true
		record = payroll.PayrollRecord{
			ID:         id,
			EmployeeID: req.EmployeeID,
			Month:      req.Month,
			Status:     payroll.PayrollStatusDraft,
		}
	}

	if req.EmployeeName != nil {
		record.EmployeeName = *req.EmployeeName
	}
	if req.Position != nil {
		record.Position = *req.Position
	}
	if req.BasicSalary != nil {
		record.BasicSalary = *req.BasicSalary
	}
	if req.Allowances != nil {
		record.Allowances = payroll.AllowanceBucket{
			Transport: req.Allowances.Transport,
			Meals:     req.Allowances.Meals,
			Housing:   req.Allowances.Housing,
			Other:     req.Allowances.Other,
		}
	}
	if req.Deductions != nil {
		record.Deductions = payroll.DeductionBucket{
			BPJS:  req.Deductions.BPJS,
			Tax:   req.Deductions.Tax,
			Loans: req.Deductions.Loans,
			Other: req.Deductions.Other,
		}
	}
	if req.ZakatPaid != nil {
		record.ZakatPaid = *req.ZakatPaid
	}
	if !isNew && req.Status != nil {
		record.Status = *req.Status
	}

	s.calc.Recompute(&record)

	now := time.Now()
	if isNew {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	saved, err := s.payrollRepo.Set(ctx, record)
	if err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to save payroll record: %w", err)
	}

	return payroll.ToRecordResponse(saved), nil
}

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.Get(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return payroll.ToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListByMonth(ctx context.Context, month string) ([]payroll.PayrollRecordResponse, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, payroll.ErrInvalidMonth
	}

	records, err := s.payrollRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	return payroll.ToRecordResponses(records), nil
}

func (s *PayrollServiceImpl) GetSummary(ctx context.Context, month string) (payroll.PayrollSummaryResponse, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return payroll.PayrollSummaryResponse{}, payroll.ErrInvalidMonth
	}

	records, err := s.payrollRepo.ListByMonth(ctx, month)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	summary := payroll.PayrollSummaryResponse{Month: month}
	for _, r := range records {
		summary.TotalEmployees++
		summary.TotalBasicSalary = summary.TotalBasicSalary.Add(r.BasicSalary)
		summary.TotalAllowances = summary.TotalAllowances.Add(r.TotalAllowances)
		summary.TotalDeductions = summary.TotalDeductions.Add(r.TotalDeductions)
		summary.TotalZakat = summary.TotalZakat.Add(r.Zakat)
		summary.TotalNetSalary = summary.TotalNetSalary.Add(r.NetSalary)

		switch r.Status {
		case payroll.PayrollStatusDraft:
			summary.DraftCount++
		case payroll.PayrollStatusPending:
			summary.PendingCount++
		case payroll.PayrollStatusPaid:
			summary.PaidCount++
		}
	}

	return summary, nil
}
