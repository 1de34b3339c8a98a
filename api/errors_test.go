package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"staffdesk/api"
	"staffdesk/internal/models"
	"staffdesk/internal/session"
	"staffdesk/pkg/repository/mock"
)

// The real stack never fails mid-request, so the repository error paths are
// driven through the injectable mocks instead.

func postJSON(t *testing.T, h http.HandlerFunc, body string, sess *session.Session) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sess != nil {
		req = req.WithContext(api.ContextWithSession(req.Context(), sess))
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestRegisterRepositoryError(t *testing.T) {
	m := mock.NewMocks()
	m.Accounts.CreateErr = errors.New("disk full")
	guard := session.NewGuard(m.Accounts, nil, nil)
	h := api.NewAuthHandler(m.Accounts, guard, testSecret, time.Hour)

	w := postJSON(t, h.Register, `{"firstName":"New","lastName":"Person","email":"new@x.com","password":"abcdef"}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != "Error creating account\n" {
		t.Fatalf("unexpected body %q", got)
	}
	if len(m.Accounts.Stored) != 0 {
		t.Fatalf("no account should be stored on failure: %#v", m.Accounts.Stored)
	}
}

func TestAccountsCreateRepositoryError(t *testing.T) {
	m := mock.NewMocks()
	m.Accounts.CreateErr = errors.New("disk full")
	h := api.NewAccountsHandler(m.Accounts)

	w := postJSON(t, h.Create, `{"firstName":"New","lastName":"Person","email":"new@x.com","password":"abcdef"}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestEmployeesListRepositoryError(t *testing.T) {
	m := mock.NewMocks()
	m.Employees.ListErr = errors.New("disk full")
	h := api.NewEmployeesHandler(m.Employees)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.List(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDepartmentsCreateRepositoryError(t *testing.T) {
	m := mock.NewMocks()
	m.Departments.CreateErr = errors.New("disk full")
	h := api.NewDepartmentsHandler(m.Departments)

	w := postJSON(t, h.Create, `{"name":"Sales"}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	if len(m.Departments.Stored) != 0 {
		t.Fatalf("no department should be stored on failure: %#v", m.Departments.Stored)
	}
}

func TestRequestsCreateRepositoryError(t *testing.T) {
	m := mock.NewMocks()
	m.Requests.CreateErr = errors.New("disk full")
	h := api.NewRequestsHandler(m.Requests)
	sess := &session.Session{Email: "a@x.com", FirstName: "User", Role: models.RoleUser}

	w := postJSON(t, h.Create, `{"type":"Supplies","items":[{"name":"Pens","qty":1}]}`, sess)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProfileUpdateRepositoryError(t *testing.T) {
	m := mock.NewMocks()
	m.Accounts.Stored = []models.Account{{
		FirstName: "Admin", LastName: "User", Email: "admin@example.com",
		Password: "Password123!", Role: models.RoleAdmin, Verified: true,
	}}
	m.Accounts.UpdateErr = errors.New("disk full")
	guard := session.NewGuard(m.Accounts, nil, nil)
	auth := api.NewAuthHandler(m.Accounts, guard, testSecret, time.Hour)
	h := api.NewProfileHandler(m.Accounts, guard, auth)
	sess := &session.Session{Email: "admin@example.com", FirstName: "Admin", Role: models.RoleAdmin}

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(
		`{"firstName":"Root","lastName":"User","email":"admin@example.com"}`))
	req = req.WithContext(api.ContextWithSession(req.Context(), sess))
	w := httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}
