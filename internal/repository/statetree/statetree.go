package statetree

import (
	"context"
	"os"
	"sync"

	"log/slog"

	"staffdesk/internal/models"
	"staffdesk/internal/store"
	"staffdesk/pkg/repository"
)

// Repo implements the repository interfaces over the in-memory state tree.
// Every mutation rewrites the whole tree through the store before returning;
// the mutex keeps that read-modify-write atomic under concurrent requests.
type Repo struct {
	mu     sync.Mutex
	tree   *models.StateTree
	store  *store.Store
	logger *slog.Logger
}

// Ensure Repo implements the public interfaces.
var _ repository.AccountRepo = (*Repo)(nil)
var _ repository.DepartmentRepo = (*Repo)(nil)
var _ repository.EmployeeRepo = (*Repo)(nil)
var _ repository.RequestRepo = (*Repo)(nil)

func New(tree *models.StateTree, st *store.Store, logger *slog.Logger) *Repo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &Repo{tree: tree, store: st, logger: logger}
}

// save persists the whole tree. Callers hold r.mu.
func (r *Repo) save(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	return r.store.Save(ctx, r.tree)
}
