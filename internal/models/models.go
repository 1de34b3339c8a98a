package models

// Domain models matching the persisted state document described in
// internal/store.

// Account roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Request statuses. Approved and Rejected round-trip through storage but no
// handler currently transitions a request away from Pending.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Account is keyed by Email (exact, case-sensitive match). Passwords are
// stored in plaintext; this is a demo system, not a hardened auth store.
type Account struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Employee references an Account by email and a Department by id. Both are
// weak references: the target may have been deleted and lookups tolerate
// that.
type Employee struct {
	EmpID     string `json:"empId"`
	UserEmail string `json:"userEmail"`
	Position  string `json:"position"`
	DeptID    int64  `json:"deptId"`
	HireDate  string `json:"hireDate,omitempty"`
}

// EmployeeView is the render-ready projection of an Employee with its weak
// references resolved to display names.
type EmployeeView struct {
	Employee
	UserName       string `json:"userName"`
	DepartmentName string `json:"departmentName"`
}

type RequestItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type Request struct {
	Type          string        `json:"type"`
	Items         []RequestItem `json:"items"`
	Status        string        `json:"status"`
	Date          string        `json:"date"`
	EmployeeEmail string        `json:"employeeEmail"`
}

// StateTree is the unit of persistence: the whole tree is serialized and
// rewritten on every mutation.
type StateTree struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}
