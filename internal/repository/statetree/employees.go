package statetree

import (
	"context"

	"staffdesk/internal/models"
	"staffdesk/pkg/repository"
)

// unresolvedRef is the display value for a dangling account or department
// reference.
const unresolvedRef = "Not found"

func (r *Repo) ListEmployees(ctx context.Context) ([]models.EmployeeView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.EmployeeView, 0, len(r.tree.Employees))
	for _, e := range r.tree.Employees {
		v := models.EmployeeView{
			Employee:       e,
			UserName:       unresolvedRef,
			DepartmentName: unresolvedRef,
		}
		for i := range r.tree.Accounts {
			if r.tree.Accounts[i].Email == e.UserEmail {
				v.UserName = r.tree.Accounts[i].FirstName + " " + r.tree.Accounts[i].LastName
				break
			}
		}
		for i := range r.tree.Departments {
			if r.tree.Departments[i].ID == e.DeptID {
				v.DepartmentName = r.tree.Departments[i].Name
				break
			}
		}
		out = append(out, v)
	}
	return out, nil
}

// CreateEmployee appends the record as given. Neither empId uniqueness nor
// the account/department references are checked.
func (r *Repo) CreateEmployee(ctx context.Context, e *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tree.Employees = append(r.tree.Employees, *e)
	return r.save(ctx)
}

func (r *Repo) UpdateEmployee(ctx context.Context, empID string, e *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tree.Employees {
		if r.tree.Employees[i].EmpID == empID {
			r.tree.Employees[i] = *e
			return r.save(ctx)
		}
	}
	return repository.ErrNotFound
}

func (r *Repo) DeleteEmployee(ctx context.Context, empID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tree.Employees {
		if r.tree.Employees[i].EmpID == empID {
			r.tree.Employees = append(r.tree.Employees[:i], r.tree.Employees[i+1:]...)
			return r.save(ctx)
		}
	}
	return repository.ErrNotFound
}
