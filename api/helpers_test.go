package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"staffdesk/api"
	"staffdesk/internal/config"
	dbpkg "staffdesk/internal/db"
	"staffdesk/internal/nav"
	"staffdesk/internal/repository/statetree"
	"staffdesk/internal/session"
	"staffdesk/internal/store"
)

const testSecret = "testsecret"

// env wires a full stack over an in-memory database: store, repo, guard,
// and the assembled routes.
type env struct {
	cfg     *config.Config
	store   *store.Store
	repo    *statetree.Repo
	guard   *session.Guard
	handler http.Handler
}

func setupEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	d, err := dbpkg.New(ctx, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	st, err := store.New(ctx, d, nil)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	tree, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}

	repo := statetree.New(tree, st, nil)
	guard := session.NewGuard(repo, st, nil)
	cfg := &config.Config{
		Addr:          ":0",
		JWTSecret:     testSecret,
		APITimeout:    5 * time.Second,
		TokenDuration: time.Hour,
	}

	return &env{
		cfg:     cfg,
		store:   st,
		repo:    repo,
		guard:   guard,
		handler: api.SetupRoutes(cfg, "test", "now", repo, guard, nav.NewRouter()),
	}
}

// token signs a bearer token for email the way the login handler does.
func (e *env) token(t *testing.T, email string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// do runs one request through the assembled routes.
func (e *env) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}
