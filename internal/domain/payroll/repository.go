package payroll

import (
	"context"
	"time"
)

// RecordPatch enumerates the payment-sensitive fields that may be updated
// without recomputing the record. Nil fields are left untouched.
type RecordPatch struct {
	Status      *PayrollStatus
	PaymentDate *time.Time
	ZakatPaid   *bool
}

// PayrollRepository defines data access for monthly payroll records.
// Implementations must provide per-document atomic read-modify-write; the
// services assume but do not enforce that guarantee.
type PayrollRepository interface {
	Get(ctx context.Context, id string) (PayrollRecord, error)
	// Set creates or fully replaces the record stored under record.ID.
	Set(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	// Update applies a partial patch and refreshes updated_at.
	Update(ctx context.Context, id string, patch RecordPatch) error
	ListByMonth(ctx context.Context, month string) ([]PayrollRecord, error)
}
