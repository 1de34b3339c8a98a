package statetree

import (
	"context"

	"staffdesk/internal/models"
	"staffdesk/pkg/repository"
)

func (r *Repo) ListAccounts(ctx context.Context) ([]models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Account, len(r.tree.Accounts))
	copy(out, r.tree.Accounts)
	return out, nil
}

func (r *Repo) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tree.Accounts {
		if r.tree.Accounts[i].Email == email {
			a := r.tree.Accounts[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *Repo) CreateAccount(ctx context.Context, a *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tree.Accounts {
		if r.tree.Accounts[i].Email == a.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if a.Role == "" {
		a.Role = models.RoleUser
	}
	r.tree.Accounts = append(r.tree.Accounts, *a)
	return r.save(ctx)
}

// UpdateAccount replaces the account stored under email. The duplicate check
// excludes the account itself, so keeping the same email is always allowed.
func (r *Repo) UpdateAccount(ctx context.Context, email string, a *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.tree.Accounts {
		if r.tree.Accounts[i].Email == email {
			idx = i
			break
		}
	}
	if idx == -1 {
		return repository.ErrNotFound
	}

	for i := range r.tree.Accounts {
		if i != idx && r.tree.Accounts[i].Email == a.Email {
			return repository.ErrDuplicateEmail
		}
	}

	r.tree.Accounts[idx] = *a
	return r.save(ctx)
}

func (r *Repo) DeleteAccount(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tree.Accounts {
		if r.tree.Accounts[i].Email == email {
			r.tree.Accounts = append(r.tree.Accounts[:i], r.tree.Accounts[i+1:]...)
			return r.save(ctx)
		}
	}
	return repository.ErrNotFound
}
