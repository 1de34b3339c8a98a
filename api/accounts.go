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

type AccountsHandler struct {
	accounts repository.AccountRepo
}

func NewAccountsHandler(ar repository.AccountRepo) *AccountsHandler {
	return &AccountsHandler{accounts: ar}
}

type accountView struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.ListAccounts(r.Context())
	if err != nil {
		http.Error(w, "Error listing accounts", http.StatusInternalServerError)
		return
	}

	out := make([]accountView, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountView{
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
			Role:      a.Role,
			Verified:  a.Verified,
		})
	}
	writeJSON(w, out, http.StatusOK)
}

type accountWriteRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

// Create lets an admin add an account directly, optionally pre-verified.
func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req accountWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 6 {
		http.Error(w, "Password must be at least 6 characters.", http.StatusBadRequest)
		return
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}
	if req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	account := models.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Verified:  req.Verified,
	}
	if err := h.accounts.CreateAccount(r.Context(), &account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			http.Error(w, "Email already exists.", http.StatusConflict)
			return
		}
		http.Error(w, "Error creating account", http.StatusInternalServerError)
		return
	}

	writeJSON(w, accountView{
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Role:      account.Role,
		Verified:  account.Verified,
	}, http.StatusCreated)
}

func (h *AccountsHandler) Update(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var req accountWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}
	if req.Password != "" && len(req.Password) < 6 {
		http.Error(w, "Password must be at least 6 characters.", http.StatusBadRequest)
		return
	}
	if req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	current, err := h.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		http.Error(w, "Error loading account", http.StatusInternalServerError)
		return
	}
	if current == nil {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}

	updated := models.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  current.Password,
		Role:      req.Role,
		Verified:  req.Verified,
	}
	if req.Password != "" {
		updated.Password = req.Password
	}

	if err := h.accounts.UpdateAccount(ctx, email, &updated); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			http.Error(w, "Email already exists.", http.StatusConflict)
		case errors.Is(err, repository.ErrNotFound):
			http.Error(w, "Account not found", http.StatusNotFound)
		default:
			http.Error(w, "Error updating account", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, accountView{
		FirstName: updated.FirstName,
		LastName:  updated.LastName,
		Email:     updated.Email,
		Role:      updated.Role,
		Verified:  updated.Verified,
	}, http.StatusOK)
}

// Delete removes an account. The active account cannot delete itself.
func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	if sess := sessionFrom(r); sess != nil && sess.Email == email {
		http.Error(w, "You cannot delete your own account.", http.StatusBadRequest)
		return
	}

	if err := h.accounts.DeleteAccount(r.Context(), email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Account not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error deleting account", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
