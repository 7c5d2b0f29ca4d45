package payroll

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/zafrapp/zafra-backend-go/internal/domain/employee"
	"github.com/zafrapp/zafra-backend-go/internal/domain/payroll"
)

// fakePayrollRepo is an in-memory PayrollRepository keyed the same way as the
// real table. Per-record errors can be injected through setErr.
type fakePayrollRepo struct {
	mu      sync.Mutex
	records map[string]payroll.PayrollRecord
	setErr  map[string]error
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		records: make(map[string]payroll.PayrollRecord),
		setErr:  make(map[string]error),
	}
}

func (f *fakePayrollRepo) Get(_ context.Context, id string) (payroll.PayrollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return record, nil
}

func (f *fakePayrollRepo) Set(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.setErr[record.ID]; err != nil {
		return payroll.PayrollRecord{}, err
	}
	f.records[record.ID] = record
	return record, nil
}

func (f *fakePayrollRepo) Update(_ context.Context, id string, patch payroll.RecordPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return payroll.ErrPayrollRecordNotFound
	}
	if patch.Status != nil {
		record.Status = *patch.Status
	}
	if patch.PaymentDate != nil {
		record.PaymentDate = patch.PaymentDate
	}
	if patch.ZakatPaid != nil {
		record.ZakatPaid = *patch.ZakatPaid
	}
	record.UpdatedAt = time.Now()
	f.records[id] = record
	return nil
}

func (f *fakePayrollRepo) ListByMonth(_ context.Context, month string) ([]payroll.PayrollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []payroll.PayrollRecord
	for _, record := range f.records {
		if record.Month == month {
			result = append(result, record)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].EmployeeID < result[j].EmployeeID
	})
	return result, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListAll(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

type fakeProfileRepo struct {
	profiles map[string]employee.Profile
}

func (f *fakeProfileRepo) GetByEmployeeID(_ context.Context, employeeID string) (employee.Profile, error) {
	profile, ok := f.profiles[employeeID]
	if !ok {
		return employee.Profile{}, employee.ErrProfileNotFound
	}
	return profile, nil
}
