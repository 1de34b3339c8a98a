package repository

import (
	"context"
	"errors"

	"staffdesk/internal/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

var (
	// ErrNotFound is returned when no entity matches the given key.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an account create or update would
	// reuse an email already present (exact, case-sensitive match).
	ErrDuplicateEmail = errors.New("email already exists")
)

type AccountRepo interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	CreateAccount(ctx context.Context, a *models.Account) error
	UpdateAccount(ctx context.Context, email string, a *models.Account) error
	DeleteAccount(ctx context.Context, email string) error
}

type DepartmentRepo interface {
	ListDepartments(ctx context.Context) ([]models.Department, error)
	GetDepartment(ctx context.Context, id int64) (*models.Department, error)
	// CreateDepartment assigns the new id as max existing id + 1 (1 when the
	// list is empty) and returns it.
	CreateDepartment(ctx context.Context, d *models.Department) (int64, error)
	UpdateDepartment(ctx context.Context, id int64, d *models.Department) error
	DeleteDepartment(ctx context.Context, id int64) error
}

type EmployeeRepo interface {
	// ListEmployees resolves account and department references to display
	// names, with a placeholder for dangling references.
	ListEmployees(ctx context.Context) ([]models.EmployeeView, error)
	CreateEmployee(ctx context.Context, e *models.Employee) error
	// Update and delete operate on the first employee matching empID in tree
	// order; empID uniqueness is not enforced.
	UpdateEmployee(ctx context.Context, empID string, e *models.Employee) error
	DeleteEmployee(ctx context.Context, empID string) error
}

type RequestRepo interface {
	// ListRequestsByEmail returns the creator's requests in insertion order.
	ListRequestsByEmail(ctx context.Context, email string) ([]models.Request, error)
	CreateRequest(ctx context.Context, r *models.Request) error
	// Update and delete address a creator's requests by position within the
	// list ListRequestsByEmail returns.
	UpdateRequest(ctx context.Context, email string, index int, r *models.Request) error
	DeleteRequest(ctx context.Context, email string, index int) error
}
