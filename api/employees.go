package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"staffdesk/internal/models"
	"staffdesk/pkg/repository"
)

type EmployeesHandler struct {
	employees repository.EmployeeRepo
}

func NewEmployeesHandler(er repository.EmployeeRepo) *EmployeesHandler {
	return &EmployeesHandler{employees: er}
}

func (h *EmployeesHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.ListEmployees(r.Context())
	if err != nil {
		http.Error(w, "Error listing employees", http.StatusInternalServerError)
		return
	}
	writeJSON(w, employees, http.StatusOK)
}

type employeeWriteRequest struct {
	EmpID     string `json:"empId"`
	UserEmail string `json:"userEmail"`
	Position  string `json:"position"`
	DeptID    int64  `json:"deptId"`
	HireDate  string `json:"hireDate"`
}

func (req *employeeWriteRequest) validate() string {
	req.EmpID = strings.TrimSpace(req.EmpID)
	req.UserEmail = strings.TrimSpace(req.UserEmail)
	req.Position = strings.TrimSpace(req.Position)
	if req.EmpID == "" || req.UserEmail == "" || req.Position == "" {
		return "Missing fields"
	}
	// userEmail and deptId are weak references; existence is not checked.
	return ""
}

func (req *employeeWriteRequest) model() *models.Employee {
	return &models.Employee{
		EmpID:     req.EmpID,
		UserEmail: req.UserEmail,
		Position:  req.Position,
		DeptID:    req.DeptID,
		HireDate:  req.HireDate,
	}
}

func (h *EmployeesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employeeWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	e := req.model()
	if err := h.employees.CreateEmployee(r.Context(), e); err != nil {
		http.Error(w, "Error creating employee", http.StatusInternalServerError)
		return
	}

	writeJSON(w, e, http.StatusCreated)
}

// Update rewrites the first employee matching the empId path key.
func (h *EmployeesHandler) Update(w http.ResponseWriter, r *http.Request) {
	empID := mux.Vars(r)["empId"]

	var req employeeWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	e := req.model()
	if err := h.employees.UpdateEmployee(r.Context(), empID, e); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Employee not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error updating employee", http.StatusInternalServerError)
		return
	}

	writeJSON(w, e, http.StatusOK)
}

func (h *EmployeesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	empID := mux.Vars(r)["empId"]

	if err := h.employees.DeleteEmployee(r.Context(), empID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Employee not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error deleting employee", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
