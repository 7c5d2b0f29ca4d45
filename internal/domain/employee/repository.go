package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	ListAll(ctx context.Context) ([]Employee, error)
}

type ProfileRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Profile, error)
}
