// Package session tracks the authenticated identity and the persisted
// session token. The token is a plain string equal to an account's email,
// stored independently of the state tree; restoring from it re-establishes
// the identity without re-checking password or verification.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"log/slog"

	"staffdesk/internal/models"
	"staffdesk/internal/store"
	"staffdesk/pkg/repository"
)

// ErrInvalidCredentials is the single error returned for every
// authentication failure. Wrong password, unknown email, and unverified
// account are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials or email not verified")

// Session is the authenticated identity handed to the router and handlers,
// replacing an ambient current-user global.
type Session struct {
	Email     string
	FirstName string
	Role      string
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == models.RoleAdmin
}

// Guard owns the current-session slot and the persisted token. A nil current
// session means unauthenticated.
type Guard struct {
	accounts repository.AccountRepo
	store    *store.Store
	logger   *slog.Logger

	mu      sync.Mutex
	current *Session
}

func NewGuard(accounts repository.AccountRepo, st *store.Store, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &Guard{accounts: accounts, store: st, logger: logger}
}

func fromAccount(a *models.Account) *Session {
	return &Session{Email: a.Email, FirstName: a.FirstName, Role: a.Role}
}

// Authenticate succeeds only when an account matches email AND password AND
// is verified. On success the current session is replaced and the token slot
// is set to the email.
func (g *Guard) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	a, err := g.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if a == nil || a.Password != password || !a.Verified {
		return nil, ErrInvalidCredentials
	}

	sess := fromAccount(a)
	g.mu.Lock()
	g.current = sess
	g.mu.Unlock()

	if err := g.store.SetSessionToken(ctx, email); err != nil {
		return nil, fmt.Errorf("persist session token: %w", err)
	}
	return sess, nil
}

// Restore re-establishes the session from the persisted token. A token whose
// account no longer exists is silently ignored: the guard stays
// unauthenticated and no error is returned.
func (g *Guard) Restore(ctx context.Context) (*Session, error) {
	token, err := g.store.SessionToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}
	if token == "" {
		return nil, nil
	}

	sess, err := g.SessionFor(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		g.logger.Info("stale session token ignored", slog.String("email", token))
		return nil, nil
	}

	g.mu.Lock()
	g.current = sess
	g.mu.Unlock()
	return sess, nil
}

// SessionFor resolves an email to a session using the restore rule: the
// account only has to exist; password and verification are not re-checked.
// Returns nil, nil when no such account remains.
func (g *Guard) SessionFor(ctx context.Context, email string) (*Session, error) {
	a, err := g.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if a == nil {
		return nil, nil
	}
	return fromAccount(a), nil
}

// Current returns the active session, nil when unauthenticated.
func (g *Guard) Current() *Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// End clears both the token slot and the current session.
func (g *Guard) End(ctx context.Context) error {
	g.mu.Lock()
	g.current = nil
	g.mu.Unlock()
	return g.store.ClearSessionToken(ctx)
}

// MarkPending records email as awaiting verification.
func (g *Guard) MarkPending(ctx context.Context, email string) error {
	return g.store.SetPendingEmail(ctx, email)
}

// Verify flips the pending account to verified and clears the marker.
// Returns false when no marker is set or the marked account no longer
// exists; neither case is an error.
func (g *Guard) Verify(ctx context.Context) (bool, error) {
	email, err := g.store.PendingEmail(ctx)
	if err != nil {
		return false, fmt.Errorf("read pending marker: %w", err)
	}
	if email == "" {
		return false, nil
	}

	a, err := g.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("lookup account: %w", err)
	}
	if a == nil {
		return false, nil
	}

	a.Verified = true
	if err := g.accounts.UpdateAccount(ctx, email, a); err != nil {
		return false, fmt.Errorf("mark verified: %w", err)
	}
	if err := g.store.ClearPendingEmail(ctx); err != nil {
		return false, fmt.Errorf("clear pending marker: %w", err)
	}
	return true, nil
}
