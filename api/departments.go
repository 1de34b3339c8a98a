package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"staffdesk/internal/models"
	"staffdesk/pkg/repository"
)

type DepartmentsHandler struct {
	departments repository.DepartmentRepo
}

func NewDepartmentsHandler(dr repository.DepartmentRepo) *DepartmentsHandler {
	return &DepartmentsHandler{departments: dr}
}

func (h *DepartmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departments.ListDepartments(r.Context())
	if err != nil {
		http.Error(w, "Error listing departments", http.StatusInternalServerError)
		return
	}
	writeJSON(w, departments, http.StatusOK)
}

type departmentWriteRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *DepartmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req departmentWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	d := models.Department{Name: req.Name, Description: req.Description}
	id, err := h.departments.CreateDepartment(r.Context(), &d)
	if err != nil {
		http.Error(w, "Error creating department", http.StatusInternalServerError)
		return
	}
	d.ID = id

	writeJSON(w, d, http.StatusCreated)
}

func (h *DepartmentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid department id", http.StatusBadRequest)
		return
	}

	var req departmentWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	current, err := h.departments.GetDepartment(ctx, id)
	if err != nil {
		http.Error(w, "Error loading department", http.StatusInternalServerError)
		return
	}
	if current == nil {
		http.Error(w, "Department not found", http.StatusNotFound)
		return
	}

	d := models.Department{ID: id, Name: req.Name, Description: req.Description}
	if err := h.departments.UpdateDepartment(ctx, id, &d); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Department not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error updating department", http.StatusInternalServerError)
		return
	}

	writeJSON(w, d, http.StatusOK)
}

// Delete removes the department without touching employees that reference
// it; their listings degrade to the placeholder name.
func (h *DepartmentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid department id", http.StatusBadRequest)
		return
	}

	if err := h.departments.DeleteDepartment(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Department not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error deleting department", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
