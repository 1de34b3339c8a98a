package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"log/slog"

	"github.com/qri-io/jsonschema"

	"staffdesk/internal/db"
	"staffdesk/internal/models"
)

// Slot keys. The whole state tree lives under one key; the session token and
// the pending-verification marker are independent plain-string slots.
const (
	stateKey   = "staffdesk_state_v1"
	sessionKey = "staffdesk_auth_token"
	pendingKey = "staffdesk_unverified_email"
)

// Store persists the state tree as a single serialized document in a
// key-value slot table. There are no partial writes: Save rewrites the whole
// blob, and Load either returns the stored tree or silently reseeds the
// defaults when the stored value is missing or unusable.
type Store struct {
	conn   *db.DB
	logger *slog.Logger
	schema *jsonschema.Schema
}

// New prepares the slot table and compiles the state-document schema.
func New(ctx context.Context, conn *db.DB, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	if _, err := conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(stateSchema), rs); err != nil {
		return nil, fmt.Errorf("compile state schema: %w", err)
	}

	return &Store{conn: conn, logger: logger, schema: rs}, nil
}

// DefaultTree returns the seed state: one verified admin account and two
// departments, no employees or requests.
func DefaultTree() *models.StateTree {
	return &models.StateTree{
		Accounts: []models.Account{
			{
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@example.com",
				Password:  "Password123!",
				Role:      models.RoleAdmin,
				Verified:  true,
			},
		},
		Departments: []models.Department{
			{ID: 1, Name: "Engineering", Description: "Tech Department"},
			{ID: 2, Name: "HR", Description: "Human Resources"},
		},
		Employees: []models.Employee{},
		Requests:  []models.Request{},
	}
}

// Load returns the stored state tree. A missing, unparsable, or
// schema-rejected value is treated the same way: the defaults are seeded,
// persisted immediately, and returned. No error surfaces for bad data; only
// storage failures are reported.
func (s *Store) Load(ctx context.Context) (*models.StateTree, error) {
	raw, ok, err := s.get(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s.Seed(ctx)
	}

	if keyErrs, err := s.schema.ValidateBytes(ctx, []byte(raw)); err != nil || len(keyErrs) > 0 {
		s.logger.Warn("stored state failed validation, reseeding defaults",
			slog.Int("violations", len(keyErrs)))
		return s.Seed(ctx)
	}

	var tree models.StateTree
	if err := json.Unmarshal([]byte(raw), &tree); err != nil {
		s.logger.Warn("stored state is not valid JSON, reseeding defaults")
		return s.Seed(ctx)
	}

	// Missing array fields default to empty.
	if tree.Accounts == nil {
		tree.Accounts = []models.Account{}
	}
	if tree.Departments == nil {
		tree.Departments = []models.Department{}
	}
	if tree.Employees == nil {
		tree.Employees = []models.Employee{}
	}
	if tree.Requests == nil {
		tree.Requests = []models.Request{}
	}

	return &tree, nil
}

// Save serializes the tree and overwrites the state slot.
func (s *Store) Save(ctx context.Context, tree *models.StateTree) error {
	if tree == nil {
		return errors.New("nil state tree")
	}
	raw, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	return s.set(ctx, stateKey, string(raw))
}

// Seed writes the default tree to the state slot and returns it.
func (s *Store) Seed(ctx context.Context) (*models.StateTree, error) {
	tree := DefaultTree()
	if err := s.Save(ctx, tree); err != nil {
		return nil, fmt.Errorf("seed state: %w", err)
	}
	return tree, nil
}

// SessionToken returns the persisted session token ("" when absent).
func (s *Store) SessionToken(ctx context.Context) (string, error) {
	v, _, err := s.get(ctx, sessionKey)
	return v, err
}

func (s *Store) SetSessionToken(ctx context.Context, email string) error {
	return s.set(ctx, sessionKey, email)
}

func (s *Store) ClearSessionToken(ctx context.Context) error {
	return s.del(ctx, sessionKey)
}

// PendingEmail returns the pending-verification marker ("" when absent).
func (s *Store) PendingEmail(ctx context.Context) (string, error) {
	v, _, err := s.get(ctx, pendingKey)
	return v, err
}

func (s *Store) SetPendingEmail(ctx context.Context, email string) error {
	return s.set(ctx, pendingKey, email)
}

func (s *Store) ClearPendingEmail(ctx context.Context) error {
	return s.del(ctx, pendingKey)
}

func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.conn.QueryRow(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read slot %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) set(ctx context.Context, key, value string) error {
	_, err := s.conn.Exec(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

func (s *Store) del(ctx context.Context, key string) error {
	_, err := s.conn.Exec(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("clear slot %s: %w", key, err)
	}
	return nil
}
