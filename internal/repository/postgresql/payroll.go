package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/zafrapp/zafra-backend-go/internal/domain/payroll"
	"github.com/zafrapp/zafra-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, employee_id, employee_name, position, month,
	basic_salary,
	allowance_transport, allowance_meals, allowance_housing, allowance_other,
	deduction_bpjs, deduction_tax, deduction_loans, deduction_other,
	total_allowances, total_deductions, zakat, net_salary,
	status, payment_date, zakat_paid, created_at, updated_at
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var r payroll.PayrollRecord
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.EmployeeName, &r.Position, &r.Month,
		&r.BasicSalary,
		&r.Allowances.Transport, &r.Allowances.Meals, &r.Allowances.Housing, &r.Allowances.Other,
		&r.Deductions.BPJS, &r.Deductions.Tax, &r.Deductions.Loans, &r.Deductions.Other,
		&r.TotalAllowances, &r.TotalDeductions, &r.Zakat, &r.NetSalary,
		&r.Status, &r.PaymentDate, &r.ZakatPaid, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (r *payrollRepository) Get(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM payroll_records WHERE id = $1`, payrollColumns)

	record, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return record, nil
}

// Set upserts the full document under record.ID in one statement, so the
// write is atomic per record.
func (r *payrollRepository) Set(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO payroll_records (
			id, employee_id, employee_name, position, month,
			basic_salary,
			allowance_transport, allowance_meals, allowance_housing, allowance_other,
			deduction_bpjs, deduction_tax, deduction_loans, deduction_other,
			total_allowances, total_deductions, zakat, net_salary,
			status, payment_date, zakat_paid, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)
		ON CONFLICT (id) DO UPDATE SET
			employee_name = EXCLUDED.employee_name,
			position = EXCLUDED.position,
			basic_salary = EXCLUDED.basic_salary,
			allowance_transport = EXCLUDED.allowance_transport,
			allowance_meals = EXCLUDED.allowance_meals,
			allowance_housing = EXCLUDED.allowance_housing,
			allowance_other = EXCLUDED.allowance_other,
			deduction_bpjs = EXCLUDED.deduction_bpjs,
			deduction_tax = EXCLUDED.deduction_tax,
			deduction_loans = EXCLUDED.deduction_loans,
			deduction_other = EXCLUDED.deduction_other,
			total_allowances = EXCLUDED.total_allowances,
			total_deductions = EXCLUDED.total_deductions,
			zakat = EXCLUDED.zakat,
			net_salary = EXCLUDED.net_salary,
			status = EXCLUDED.status,
			payment_date = EXCLUDED.payment_date,
			zakat_paid = EXCLUDED.zakat_paid,
			updated_at = EXCLUDED.updated_at
		RETURNING %s
	`, payrollColumns)

	saved, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.EmployeeName, record.Position, record.Month,
		record.BasicSalary,
		record.Allowances.Transport, record.Allowances.Meals, record.Allowances.Housing, record.Allowances.Other,
		record.Deductions.BPJS, record.Deductions.Tax, record.Deductions.Loans, record.Deductions.Other,
		record.TotalAllowances, record.TotalDeductions, record.Zakat, record.NetSalary,
		record.Status, record.PaymentDate, record.ZakatPaid, record.CreatedAt, record.UpdatedAt,
	))
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return saved, nil
}

func (r *payrollRepository) Update(ctx context.Context, id string, patch payroll.RecordPatch) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	argIdx := 2

	if patch.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *patch.Status)
		argIdx++
	}
	if patch.PaymentDate != nil {
		setParts = append(setParts, fmt.Sprintf("payment_date = $%d", argIdx))
		args = append(args, *patch.PaymentDate)
		argIdx++
	}
	if patch.ZakatPaid != nil {
		setParts = append(setParts, fmt.Sprintf("zakat_paid = $%d", argIdx))
		args = append(args, *patch.ZakatPaid)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE payroll_records
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollRecordNotFound
		}
		return fmt.Errorf("failed to update payroll record: %w", err)
	}

	return nil
}

func (r *payrollRepository) ListByMonth(ctx context.Context, month string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM payroll_records
		WHERE month = $1
		ORDER BY employee_name, employee_id
	`, payrollColumns)

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		record, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
