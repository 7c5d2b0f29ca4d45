package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrInvalidMonth          = errors.New("month must be in YYYY-MM format")
)
