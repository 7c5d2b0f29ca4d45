package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zafrapp/zafra-backend-go/internal/domain/employee"
	"github.com/zafrapp/zafra-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, role, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.Role, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) ListAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, role, created_at, updated_at
		FROM employees
		ORDER BY name, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) employee.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, name, role, default_basic_salary,
			   default_allowance_transport, default_allowance_meals,
			   default_allowance_housing, default_allowance_other,
			   default_deduction_bpjs, default_deduction_tax,
			   default_deduction_loans, default_deduction_other,
			   created_at, updated_at
		FROM employee_profiles
		WHERE employee_id = $1
	`

	var p employee.Profile
	var allowances employee.AllowanceDefaults
	var deductions employee.DeductionDefaults
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&p.EmployeeID, &p.Name, &p.Role, &p.DefaultBasicSalary,
		&allowances.Transport, &allowances.Meals, &allowances.Housing, &allowances.Other,
		&deductions.BPJS, &deductions.Tax, &deductions.Loans, &deductions.Other,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Profile{}, employee.ErrProfileNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to get employee profile: %w", err)
	}

	p.DefaultAllowances = &allowances
	p.DefaultDeductions = &deductions

	return p, nil
}
