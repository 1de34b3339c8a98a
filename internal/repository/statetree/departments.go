package statetree

import (
	"context"

	"staffdesk/internal/models"
	"staffdesk/pkg/repository"
)

func (r *Repo) ListDepartments(ctx context.Context) ([]models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Department, len(r.tree.Departments))
	copy(out, r.tree.Departments)
	return out, nil
}

func (r *Repo) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tree.Departments {
		if r.tree.Departments[i].ID == id {
			d := r.tree.Departments[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (r *Repo) CreateDepartment(ctx context.Context, d *models.Department) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// New id is max existing id + 1, or 1 when no departments exist.
	var max int64
	for i := range r.tree.Departments {
		if r.tree.Departments[i].ID > max {
			max = r.tree.Departments[i].ID
		}
	}
	d.ID = max + 1

	r.tree.Departments = append(r.tree.Departments, *d)
	if err := r.save(ctx); err != nil {
		return 0, err
	}
	return d.ID, nil
}

func (r *Repo) UpdateDepartment(ctx context.Context, id int64, d *models.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tree.Departments {
		if r.tree.Departments[i].ID == id {
			d.ID = id
			r.tree.Departments[i] = *d
			return r.save(ctx)
		}
	}
	return repository.ErrNotFound
}

// DeleteDepartment removes the department only. Employees referencing it keep
// their deptId and show a placeholder name from then on.
func (r *Repo) DeleteDepartment(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tree.Departments {
		if r.tree.Departments[i].ID == id {
			r.tree.Departments = append(r.tree.Departments[:i], r.tree.Departments[i+1:]...)
			return r.save(ctx)
		}
	}
	return repository.ErrNotFound
}
