package statetree

import (
	"context"

	"staffdesk/internal/models"
	"staffdesk/pkg/repository"
)

func (r *Repo) ListRequestsByEmail(ctx context.Context, email string) ([]models.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Request{}
	for _, req := range r.tree.Requests {
		if req.EmployeeEmail == email {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *Repo) CreateRequest(ctx context.Context, req *models.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.Status == "" {
		req.Status = models.StatusPending
	}
	r.tree.Requests = append(r.tree.Requests, *req)
	return r.save(ctx)
}

// UpdateRequest replaces the type and items of the creator's index-th
// request. Status, date, and owner are preserved as stored.
func (r *Repo) UpdateRequest(ctx context.Context, email string, index int, req *models.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos := r.position(email, index)
	if pos == -1 {
		return repository.ErrNotFound
	}
	r.tree.Requests[pos].Type = req.Type
	r.tree.Requests[pos].Items = req.Items
	return r.save(ctx)
}

func (r *Repo) DeleteRequest(ctx context.Context, email string, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos := r.position(email, index)
	if pos == -1 {
		return repository.ErrNotFound
	}
	r.tree.Requests = append(r.tree.Requests[:pos], r.tree.Requests[pos+1:]...)
	return r.save(ctx)
}

// position maps the creator-relative index to the tree-wide position.
// Callers hold r.mu. Returns -1 when the index is out of range.
func (r *Repo) position(email string, index int) int {
	if index < 0 {
		return -1
	}
	n := 0
	for i := range r.tree.Requests {
		if r.tree.Requests[i].EmployeeEmail != email {
			continue
		}
		if n == index {
			return i
		}
		n++
	}
	return -1
}
