package api_test

import (
	"net/http"
	"testing"

	"staffdesk/internal/models"
)

func TestAccountsCRUD(t *testing.T) {
	e := setupEnv(t)
	admin := e.token(t, "admin@example.com")

	// Create, optionally pre-verified.
	w := e.do(t, http.MethodPost, "/v1/accounts", admin, map[string]any{
		"firstName": "Jane", "lastName": "Doe", "email": "jane@x.com",
		"password": "abcdef", "role": "user", "verified": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d: %s", w.Code, w.Body.String())
	}

	// A pre-verified account can sign in at once.
	if w := e.do(t, http.MethodPost, "/v1/auth/login", "",
		map[string]string{"email": "jane@x.com", "password": "abcdef"}); w.Code != http.StatusOK {
		t.Fatalf("login as created account: got %d", w.Code)
	}

	// Short password rejected.
	if w := e.do(t, http.MethodPost, "/v1/accounts", admin, map[string]any{
		"firstName": "No", "lastName": "Pw", "email": "nopw@x.com", "password": "abc",
	}); w.Code != http.StatusBadRequest {
		t.Fatalf("short password: got %d", w.Code)
	}

	// Duplicate email rejected.
	if w := e.do(t, http.MethodPost, "/v1/accounts", admin, map[string]any{
		"firstName": "Dup", "lastName": "User", "email": "jane@x.com", "password": "abcdef",
	}); w.Code != http.StatusConflict {
		t.Fatalf("duplicate: got %d", w.Code)
	}

	// Update onto another account's email rejected, onto own email fine.
	if w := e.do(t, http.MethodPut, "/v1/accounts/jane@x.com", admin, map[string]any{
		"firstName": "Jane", "lastName": "Doe", "email": "admin@example.com", "role": "user",
	}); w.Code != http.StatusConflict {
		t.Fatalf("update duplicate: got %d", w.Code)
	}
	if w := e.do(t, http.MethodPut, "/v1/accounts/jane@x.com", admin, map[string]any{
		"firstName": "Janet", "lastName": "Doe", "email": "jane@x.com", "role": "admin", "verified": true,
	}); w.Code != http.StatusOK {
		t.Fatalf("update: got %d: %s", w.Code, w.Body.String())
	}

	// List is for admins only.
	if w := e.do(t, http.MethodGet, "/v1/accounts", e.token(t, "jane@x.com"), nil); w.Code != http.StatusOK {
		// jane was just promoted to admin above
		t.Fatalf("list as promoted admin: got %d", w.Code)
	}

	// The active account cannot delete itself.
	if w := e.do(t, http.MethodDelete, "/v1/accounts/admin@example.com", admin, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("self-delete: got %d", w.Code)
	}
	// Deleting another account succeeds.
	if w := e.do(t, http.MethodDelete, "/v1/accounts/jane@x.com", admin, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: got %d", w.Code)
	}
	if w := e.do(t, http.MethodDelete, "/v1/accounts/jane@x.com", admin, nil); w.Code != http.StatusNotFound {
		t.Fatalf("delete absent: got %d", w.Code)
	}
}

func TestAccountsForbiddenForUsers(t *testing.T) {
	e := setupEnv(t)
	admin := e.token(t, "admin@example.com")

	if w := e.do(t, http.MethodPost, "/v1/accounts", admin, map[string]any{
		"firstName": "Plain", "lastName": "User", "email": "plain@x.com", "password": "abcdef", "verified": true,
	}); w.Code != http.StatusCreated {
		t.Fatalf("create: got %d", w.Code)
	}

	user := e.token(t, "plain@x.com")
	for _, path := range []string{"/v1/accounts", "/v1/departments", "/v1/employees"} {
		if w := e.do(t, http.MethodGet, path, user, nil); w.Code != http.StatusForbidden {
			t.Fatalf("%s as user: want 403 got %d", path, w.Code)
		}
	}
}

func TestDepartmentsCRUD(t *testing.T) {
	e := setupEnv(t)
	admin := e.token(t, "admin@example.com")

	// Seeded ids are {1,2}; the next allocation is 3.
	w := e.do(t, http.MethodPost, "/v1/departments", admin, map[string]string{
		"name": "Sales", "description": "Field sales",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d: %s", w.Code, w.Body.String())
	}
	created := decodeBody[models.Department](t, w)
	if created.ID != 3 {
		t.Fatalf("expected id 3, got %d", created.ID)
	}

	if w := e.do(t, http.MethodPost, "/v1/departments", admin, map[string]string{"description": "no name"}); w.Code != http.StatusBadRequest {
		t.Fatalf("missing name: got %d", w.Code)
	}

	if w := e.do(t, http.MethodPut, "/v1/departments/3", admin, map[string]string{"name": "Field Sales"}); w.Code != http.StatusOK {
		t.Fatalf("update: got %d", w.Code)
	}
	if w := e.do(t, http.MethodPut, "/v1/departments/99", admin, map[string]string{"name": "Ghost"}); w.Code != http.StatusNotFound {
		t.Fatalf("update absent: got %d", w.Code)
	}
	if w := e.do(t, http.MethodPut, "/v1/departments/abc", admin, map[string]string{"name": "Bad"}); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: got %d", w.Code)
	}

	if w := e.do(t, http.MethodDelete, "/v1/departments/3", admin, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: got %d", w.Code)
	}

	list := decodeBody[[]models.Department](t, e.do(t, http.MethodGet, "/v1/departments", admin, nil))
	if len(list) != 2 {
		t.Fatalf("expected the two seeded departments, got %#v", list)
	}
}

func TestEmployeesCRUD(t *testing.T) {
	e := setupEnv(t)
	admin := e.token(t, "admin@example.com")

	w := e.do(t, http.MethodPost, "/v1/employees", admin, map[string]any{
		"empId": "E1", "userEmail": "admin@example.com", "position": "Engineer", "deptId": 1, "hireDate": "2024-02-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d: %s", w.Code, w.Body.String())
	}
	// Dangling references are allowed at write time.
	if w := e.do(t, http.MethodPost, "/v1/employees", admin, map[string]any{
		"empId": "E2", "userEmail": "nobody@x.com", "position": "Analyst", "deptId": 99,
	}); w.Code != http.StatusCreated {
		t.Fatalf("create dangling: got %d", w.Code)
	}
	if w := e.do(t, http.MethodPost, "/v1/employees", admin, map[string]any{
		"empId": "", "userEmail": "x@x.com", "position": "None",
	}); w.Code != http.StatusBadRequest {
		t.Fatalf("missing empId: got %d", w.Code)
	}

	// The listing resolves names, with a placeholder for dangling refs.
	views := decodeBody[[]models.EmployeeView](t, e.do(t, http.MethodGet, "/v1/employees", admin, nil))
	if len(views) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(views))
	}
	if views[0].UserName != "Admin User" || views[0].DepartmentName != "Engineering" {
		t.Fatalf("resolved view wrong: %#v", views[0])
	}
	if views[1].UserName != "Not found" || views[1].DepartmentName != "Not found" {
		t.Fatalf("expected placeholders: %#v", views[1])
	}

	if w := e.do(t, http.MethodPut, "/v1/employees/E2", admin, map[string]any{
		"empId": "E2", "userEmail": "nobody@x.com", "position": "Senior Analyst", "deptId": 2,
	}); w.Code != http.StatusOK {
		t.Fatalf("update: got %d", w.Code)
	}
	if w := e.do(t, http.MethodDelete, "/v1/employees/E1", admin, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: got %d", w.Code)
	}
	if w := e.do(t, http.MethodDelete, "/v1/employees/E1", admin, nil); w.Code != http.StatusNotFound {
		t.Fatalf("delete absent: got %d", w.Code)
	}
}

func TestRequestsCRUD(t *testing.T) {
	e := setupEnv(t)
	admin := e.token(t, "admin@example.com")

	// Two users with their own requests.
	for _, email := range []string{"a@x.com", "b@x.com"} {
		if w := e.do(t, http.MethodPost, "/v1/accounts", admin, map[string]any{
			"firstName": "User", "lastName": email, "email": email, "password": "abcdef", "verified": true,
		}); w.Code != http.StatusCreated {
			t.Fatalf("create %s: got %d", email, w.Code)
		}
	}
	userA := e.token(t, "a@x.com")
	userB := e.token(t, "b@x.com")

	w := e.do(t, http.MethodPost, "/v1/requests", userA, map[string]any{
		"type": "Supplies", "items": []map[string]any{{"name": "Pens", "qty": 10}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d: %s", w.Code, w.Body.String())
	}
	created := decodeBody[models.Request](t, w)
	if created.Status != models.StatusPending || created.EmployeeEmail != "a@x.com" || created.Date == "" {
		t.Fatalf("unexpected created request: %#v", created)
	}

	// Validation: empty items, zero quantity.
	if w := e.do(t, http.MethodPost, "/v1/requests", userA, map[string]any{
		"type": "Supplies", "items": []map[string]any{},
	}); w.Code != http.StatusBadRequest {
		t.Fatalf("empty items: got %d", w.Code)
	}
	if w := e.do(t, http.MethodPost, "/v1/requests", userA, map[string]any{
		"type": "Supplies", "items": []map[string]any{{"name": "Pens", "qty": 0}},
	}); w.Code != http.StatusBadRequest {
		t.Fatalf("zero qty: got %d", w.Code)
	}

	if w := e.do(t, http.MethodPost, "/v1/requests", userB, map[string]any{
		"type": "Equipment", "items": []map[string]any{{"name": "Chair", "qty": 1}},
	}); w.Code != http.StatusCreated {
		t.Fatalf("create b: got %d", w.Code)
	}

	// Each caller sees only their own requests.
	mine := decodeBody[[]models.Request](t, e.do(t, http.MethodGet, "/v1/requests", userA, nil))
	if len(mine) != 1 || mine[0].Type != "Supplies" {
		t.Fatalf("owner filter wrong: %#v", mine)
	}

	// Index 0 for user B is B's own request, not A's.
	if w := e.do(t, http.MethodPut, "/v1/requests/0", userB, map[string]any{
		"type": "Furniture", "items": []map[string]any{{"name": "Desk", "qty": 1}},
	}); w.Code != http.StatusOK {
		t.Fatalf("update: got %d", w.Code)
	}
	mine = decodeBody[[]models.Request](t, e.do(t, http.MethodGet, "/v1/requests", userA, nil))
	if mine[0].Type != "Supplies" {
		t.Fatalf("update leaked across owners: %#v", mine[0])
	}

	if w := e.do(t, http.MethodDelete, "/v1/requests/5", userA, nil); w.Code != http.StatusNotFound {
		t.Fatalf("delete out of range: got %d", w.Code)
	}
	if w := e.do(t, http.MethodDelete, "/v1/requests/0", userA, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: got %d", w.Code)
	}
	if left := decodeBody[[]models.Request](t, e.do(t, http.MethodGet, "/v1/requests", userA, nil)); len(left) != 0 {
		t.Fatalf("expected no requests left, got %#v", left)
	}
}

func TestProfile(t *testing.T) {
	e := setupEnv(t)
	admin := e.token(t, "admin@example.com")

	got := decodeBody[map[string]any](t, e.do(t, http.MethodGet, "/v1/profile", admin, nil))
	if got["email"] != "admin@example.com" || got["role"] != "admin" {
		t.Fatalf("unexpected profile: %#v", got)
	}

	// Short replacement password rejected, empty password keeps the old one.
	if w := e.do(t, http.MethodPut, "/v1/profile", admin, map[string]string{
		"firstName": "Admin", "lastName": "User", "email": "admin@example.com", "password": "abc",
	}); w.Code != http.StatusBadRequest {
		t.Fatalf("short password: got %d", w.Code)
	}
	if w := e.do(t, http.MethodPut, "/v1/profile", admin, map[string]string{
		"firstName": "Root", "lastName": "User", "email": "admin@example.com",
	}); w.Code != http.StatusOK {
		t.Fatalf("update: got %d", w.Code)
	}
	if w := e.do(t, http.MethodPost, "/v1/auth/login", "",
		map[string]string{"email": "admin@example.com", "password": "Password123!"}); w.Code != http.StatusOK {
		t.Fatalf("old password must survive a no-password edit: got %d", w.Code)
	}

	// An email change hands back a fresh token for the new identity.
	w := e.do(t, http.MethodPut, "/v1/profile", admin, map[string]string{
		"firstName": "Root", "lastName": "User", "email": "root@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("email change: got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeBody[map[string]any](t, w)
	newToken, _ := resp["token"].(string)
	if newToken == "" {
		t.Fatalf("expected fresh token after email change: %#v", resp)
	}
	// The old token now points at a non-existent account.
	if w := e.do(t, http.MethodGet, "/v1/profile", admin, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("stale token: want 401 got %d", w.Code)
	}
	if w := e.do(t, http.MethodGet, "/v1/profile", newToken, nil); w.Code != http.StatusOK {
		t.Fatalf("fresh token: got %d", w.Code)
	}
}

func TestUnauthenticatedAccess(t *testing.T) {
	e := setupEnv(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/profile"},
		{http.MethodGet, "/v1/requests"},
		{http.MethodGet, "/v1/accounts"},
		{http.MethodGet, "/v1/departments"},
		{http.MethodGet, "/v1/employees"},
	}
	for _, p := range paths {
		if w := e.do(t, p.method, p.path, "", nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: want 401 got %d", p.method, p.path, w.Code)
		}
	}
}
