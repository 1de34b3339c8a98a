package mock

import (
	"context"

	"staffdesk/internal/models"
	"staffdesk/pkg/repository"
)

// Ensure the mocks satisfy the public interfaces.
var _ repository.AccountRepo = (*AccountRepo)(nil)
var _ repository.DepartmentRepo = (*DepartmentRepo)(nil)
var _ repository.EmployeeRepo = (*EmployeeRepo)(nil)
var _ repository.RequestRepo = (*RequestRepo)(nil)

// Test helpers and mocks
type Mocks struct {
	Accounts    *AccountRepo
	Departments *DepartmentRepo
	Employees   *EmployeeRepo
	Requests    *RequestRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Accounts:    &AccountRepo{},
		Departments: &DepartmentRepo{},
		Employees:   &EmployeeRepo{},
		Requests:    &RequestRepo{},
	}
}

// AccountRepo is an in-memory AccountRepo with injectable errors.
type AccountRepo struct {
	Stored    []models.Account
	CreateErr error
	UpdateErr error
}

func (m *AccountRepo) ListAccounts(ctx context.Context) ([]models.Account, error) {
	out := make([]models.Account, len(m.Stored))
	copy(out, m.Stored)
	return out, nil
}

func (m *AccountRepo) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	for i := range m.Stored {
		if m.Stored[i].Email == email {
			a := m.Stored[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *AccountRepo) CreateAccount(ctx context.Context, a *models.Account) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	for i := range m.Stored {
		if m.Stored[i].Email == a.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.Stored = append(m.Stored, *a)
	return nil
}

func (m *AccountRepo) UpdateAccount(ctx context.Context, email string, a *models.Account) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Stored {
		if m.Stored[i].Email == email {
			for j := range m.Stored {
				if j != i && m.Stored[j].Email == a.Email {
					return repository.ErrDuplicateEmail
				}
			}
			m.Stored[i] = *a
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *AccountRepo) DeleteAccount(ctx context.Context, email string) error {
	for i := range m.Stored {
		if m.Stored[i].Email == email {
			m.Stored = append(m.Stored[:i], m.Stored[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type DepartmentRepo struct {
	Stored    []models.Department
	CreateErr error
}

func (m *DepartmentRepo) ListDepartments(ctx context.Context) ([]models.Department, error) {
	out := make([]models.Department, len(m.Stored))
	copy(out, m.Stored)
	return out, nil
}

func (m *DepartmentRepo) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			d := m.Stored[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (m *DepartmentRepo) CreateDepartment(ctx context.Context, d *models.Department) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	var max int64
	for i := range m.Stored {
		if m.Stored[i].ID > max {
			max = m.Stored[i].ID
		}
	}
	d.ID = max + 1
	m.Stored = append(m.Stored, *d)
	return d.ID, nil
}

func (m *DepartmentRepo) UpdateDepartment(ctx context.Context, id int64, d *models.Department) error {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			d.ID = id
			m.Stored[i] = *d
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *DepartmentRepo) DeleteDepartment(ctx context.Context, id int64) error {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored = append(m.Stored[:i], m.Stored[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type EmployeeRepo struct {
	Stored  []models.EmployeeView
	ListErr error
}

func (m *EmployeeRepo) ListEmployees(ctx context.Context) ([]models.EmployeeView, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.EmployeeView, len(m.Stored))
	copy(out, m.Stored)
	return out, nil
}

func (m *EmployeeRepo) CreateEmployee(ctx context.Context, e *models.Employee) error {
	m.Stored = append(m.Stored, models.EmployeeView{Employee: *e})
	return nil
}

func (m *EmployeeRepo) UpdateEmployee(ctx context.Context, empID string, e *models.Employee) error {
	for i := range m.Stored {
		if m.Stored[i].EmpID == empID {
			m.Stored[i] = models.EmployeeView{Employee: *e}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *EmployeeRepo) DeleteEmployee(ctx context.Context, empID string) error {
	for i := range m.Stored {
		if m.Stored[i].EmpID == empID {
			m.Stored = append(m.Stored[:i], m.Stored[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type RequestRepo struct {
	Stored    []models.Request
	CreateErr error
}

func (m *RequestRepo) ListRequestsByEmail(ctx context.Context, email string) ([]models.Request, error) {
	out := []models.Request{}
	for _, r := range m.Stored {
		if r.EmployeeEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *RequestRepo) CreateRequest(ctx context.Context, r *models.Request) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Stored = append(m.Stored, *r)
	return nil
}

func (m *RequestRepo) UpdateRequest(ctx context.Context, email string, index int, r *models.Request) error {
	pos := m.position(email, index)
	if pos == -1 {
		return repository.ErrNotFound
	}
	m.Stored[pos].Type = r.Type
	m.Stored[pos].Items = r.Items
	return nil
}

func (m *RequestRepo) DeleteRequest(ctx context.Context, email string, index int) error {
	pos := m.position(email, index)
	if pos == -1 {
		return repository.ErrNotFound
	}
	m.Stored = append(m.Stored[:pos], m.Stored[pos+1:]...)
	return nil
}

func (m *RequestRepo) position(email string, index int) int {
	if index < 0 {
		return -1
	}
	n := 0
	for i := range m.Stored {
		if m.Stored[i].EmployeeEmail != email {
			continue
		}
		if n == index {
			return i
		}
		n++
	}
	return -1
}
