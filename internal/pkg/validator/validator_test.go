package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidMonth(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidMonth("2024-01"))
	assert.True(t, IsValidMonth("2025-12"))
	assert.False(t, IsValidMonth(""))
	assert.False(t, IsValidMonth("2024-13"))
	assert.False(t, IsValidMonth("2024-1"))
	assert.False(t, IsValidMonth("2024-01-05"))
	assert.False(t, IsValidMonth("January 2024"))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)
	_, ok = IsValidDate("2023-02-29")
	assert.False(t, ok)
	_, ok = IsValidDate("2024-1-2")
	assert.False(t, ok)
}

func TestValidationErrorsError(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "month", Message: "must be in YYYY-MM format"},
		{Field: "employee_id", Message: "is required"},
	}

	assert.Equal(t, "month: must be in YYYY-MM format; employee_id: is required", errs.Error())
	assert.Equal(t, map[string]string{
		"month":       "must be in YYYY-MM format",
		"employee_id": "is required",
	}, errs.ToMap())
}
