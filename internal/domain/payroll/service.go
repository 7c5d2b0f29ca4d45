package payroll

import "context"

type PayrollService interface {
	// Upsert creates or merge-updates the record for (employee, month),
	// recomputing the derived totals from the merged fields.
	Upsert(ctx context.Context, req UpsertPayrollRequest) (PayrollRecordResponse, error)

	// Generate creates missing records for every employee with configured
	// compensation and re-stamps the whole month to Pending.
	Generate(ctx context.Context, month string) (GenerateReport, error)

	// MarkPaid stamps a record Paid with the current time as payment date.
	MarkPaid(ctx context.Context, recordID string) (PayrollRecordResponse, error)

	// SetZakatPaid toggles the independent zakat-paid flag.
	SetZakatPaid(ctx context.Context, recordID string, paid bool) error

	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListByMonth(ctx context.Context, month string) ([]PayrollRecordResponse, error)
	GetSummary(ctx context.Context, month string) (PayrollSummaryResponse, error)

	// EvaluateCompliance aggregates a month's payroll population into zakat
	// compliance statistics.
	EvaluateCompliance(ctx context.Context, month string) (ComplianceReport, error)
}
