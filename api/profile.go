package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"staffdesk/internal/models"
	"staffdesk/internal/session"
	"staffdesk/pkg/repository"
)

type ProfileHandler struct {
	accounts repository.AccountRepo
	guard    *session.Guard
	auth     *AuthHandler
}

func NewProfileHandler(ar repository.AccountRepo, g *session.Guard, auth *AuthHandler) *ProfileHandler {
	return &ProfileHandler{accounts: ar, guard: g, auth: auth}
}

type profileResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
	// Token is set when a profile edit changed the email; the old bearer
	// token stops resolving to an account at that point.
	Token string `json:"token,omitempty"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	a, err := h.accounts.GetAccountByEmail(r.Context(), sess.Email)
	if err != nil || a == nil {
		http.Error(w, "Error loading profile", http.StatusInternalServerError)
		return
	}

	writeJSON(w, profileResponse{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Role:      a.Role,
		Verified:  a.Verified,
	}, http.StatusOK)
}

type profileUpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	// Empty password means keep the current one.
	Password string `json:"password"`
}

// Update edits the caller's own account. Role and verified flag are not
// editable here; the accounts admin screen owns those.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
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

	ctx := r.Context()
	sess := sessionFrom(r)

	current, err := h.accounts.GetAccountByEmail(ctx, sess.Email)
	if err != nil || current == nil {
		http.Error(w, "Error loading profile", http.StatusInternalServerError)
		return
	}

	updated := models.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  current.Password,
		Role:      current.Role,
		Verified:  current.Verified,
	}
	if req.Password != "" {
		updated.Password = req.Password
	}

	if err := h.accounts.UpdateAccount(ctx, sess.Email, &updated); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			http.Error(w, "Email already exists.", http.StatusConflict)
			return
		}
		http.Error(w, "Error updating profile", http.StatusInternalServerError)
		return
	}

	resp := profileResponse{
		FirstName: updated.FirstName,
		LastName:  updated.LastName,
		Email:     updated.Email,
		Role:      updated.Role,
		Verified:  updated.Verified,
	}
	if updated.Email != sess.Email {
		token, err := h.auth.issueToken(updated.Email)
		if err != nil {
			http.Error(w, "Error signing token", http.StatusInternalServerError)
			return
		}
		resp.Token = token
	}

	writeJSON(w, resp, http.StatusOK)
}
