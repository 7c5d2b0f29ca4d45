package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/zafrapp/zafra-backend-go/internal/domain/payroll"
)

// MarkPaid stamps the record Paid with the current time as payment date.
// There is no precondition on the current status: paying an already-Paid
// record succeeds again with a fresh payment date. Gating re-payment is a
// pending design decision, not something to assume here.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, recordID string) (payroll.PayrollRecordResponse, error) {
	if _, err := s.payrollRepo.Get(ctx, recordID); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	now := time.Now()
	paid := payroll.PayrollStatusPaid
	patch := payroll.RecordPatch{
		Status:      &paid,
		PaymentDate: &now,
	}
	if err := s.payrollRepo.Update(ctx, recordID, patch); err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to mark payroll record paid: %w", err)
	}

	record, err := s.payrollRepo.Get(ctx, recordID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return payroll.ToRecordResponse(record), nil
}

// SetZakatPaid toggles the zakat-paid flag without touching anything else.
func (s *PayrollServiceImpl) SetZakatPaid(ctx context.Context, recordID string, paid bool) error {
	if _, err := s.payrollRepo.Get(ctx, recordID); err != nil {
		return err
	}

	if err := s.payrollRepo.Update(ctx, recordID, payroll.RecordPatch{ZakatPaid: &paid}); err != nil {
		return fmt.Errorf("failed to update zakat paid flag: %w", err)
	}
	return nil
}
