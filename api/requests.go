package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"staffdesk/internal/models"
	"staffdesk/pkg/repository"
)

type RequestsHandler struct {
	requests repository.RequestRepo
}

func NewRequestsHandler(rr repository.RequestRepo) *RequestsHandler {
	return &RequestsHandler{requests: rr}
}

// List returns the caller's own requests.
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	requests, err := h.requests.ListRequestsByEmail(r.Context(), sess.Email)
	if err != nil {
		http.Error(w, "Error listing requests", http.StatusInternalServerError)
		return
	}
	writeJSON(w, requests, http.StatusOK)
}

type requestWriteRequest struct {
	Type  string               `json:"type"`
	Items []models.RequestItem `json:"items"`
}

func (req *requestWriteRequest) validate() string {
	req.Type = strings.TrimSpace(req.Type)
	if req.Type == "" {
		return "Missing fields"
	}
	if len(req.Items) == 0 {
		return "At least one item is required."
	}
	for i := range req.Items {
		req.Items[i].Name = strings.TrimSpace(req.Items[i].Name)
		if req.Items[i].Name == "" {
			return "Item name is required."
		}
		if req.Items[i].Qty < 1 {
			return "Quantity must be a positive number."
		}
	}
	return ""
}

// Create records a supply request for the caller. New requests are always
// Pending; nothing transitions them further in this build.
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req requestWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	sess := sessionFrom(r)
	request := models.Request{
		Type:          req.Type,
		Items:         req.Items,
		Status:        models.StatusPending,
		Date:          time.Now().Format("2006-01-02"),
		EmployeeEmail: sess.Email,
	}
	if err := h.requests.CreateRequest(r.Context(), &request); err != nil {
		http.Error(w, "Error creating request", http.StatusInternalServerError)
		return
	}

	writeJSON(w, request, http.StatusCreated)
}

// Update edits the type and items of the caller's index-th request.
func (h *RequestsHandler) Update(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || index < 0 {
		http.Error(w, "Invalid request index", http.StatusBadRequest)
		return
	}

	var req requestWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	sess := sessionFrom(r)
	update := models.Request{Type: req.Type, Items: req.Items}
	if err := h.requests.UpdateRequest(r.Context(), sess.Email, index, &update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Request not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error updating request", http.StatusInternalServerError)
		return
	}

	requests, err := h.requests.ListRequestsByEmail(r.Context(), sess.Email)
	if err != nil || index >= len(requests) {
		http.Error(w, "Error updating request", http.StatusInternalServerError)
		return
	}
	writeJSON(w, requests[index], http.StatusOK)
}

func (h *RequestsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || index < 0 {
		http.Error(w, "Invalid request index", http.StatusBadRequest)
		return
	}

	sess := sessionFrom(r)
	if err := h.requests.DeleteRequest(r.Context(), sess.Email, index); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Request not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error deleting request", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
