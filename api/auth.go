package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"staffdesk/internal/models"
	"staffdesk/internal/nav"
	"staffdesk/internal/session"
	"staffdesk/pkg/repository"
)

type AuthHandler struct {
	accounts      repository.AccountRepo
	guard         *session.Guard
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ar repository.AccountRepo, g *session.Guard, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{accounts: ar, guard: g, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token    string `json:"token,omitempty"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// Register creates an unverified user account and marks its email as pending
// verification. Validation failures leave the store untouched.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
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

	ctx := r.Context()

	account := models.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      models.RoleUser,
		Verified:  false,
	}
	if err := h.accounts.CreateAccount(ctx, &account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			http.Error(w, "Email already exists.", http.StatusConflict)
			return
		}
		http.Error(w, "Error creating account", http.StatusInternalServerError)
		return
	}

	if err := h.guard.MarkPending(ctx, req.Email); err != nil {
		http.Error(w, "Error creating account", http.StatusInternalServerError)
		return
	}

	writeJSON(w, authResponse{
		Message:  "Account created. Verify your email to sign in.",
		Redirect: nav.PathVerifyEmail,
	}, http.StatusCreated)
}

// Verify simulates the email-verification click for the pending account.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	verified, err := h.guard.Verify(r.Context())
	if err != nil {
		http.Error(w, "Error verifying account", http.StatusInternalServerError)
		return
	}
	if !verified {
		http.Error(w, "No pending verification", http.StatusNotFound)
		return
	}

	writeJSON(w, authResponse{
		Message:  "Email verified.",
		Redirect: nav.PathLogin,
	}, http.StatusOK)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	sess, err := h.guard.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			// One undifferentiated message for wrong password, unknown
			// email, and unverified account.
			http.Error(w, "Invalid credentials or email not verified.", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}

	tokenStr, err := h.issueToken(sess.Email)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, authResponse{Token: tokenStr, Redirect: nav.PathProfile}, http.StatusOK)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.guard.End(r.Context()); err != nil {
		http.Error(w, "Error signing out", http.StatusInternalServerError)
		return
	}
	writeJSON(w, authResponse{Message: "signed out", Redirect: nav.PathHome}, http.StatusOK)
}

func (h *AuthHandler) issueToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(h.tokenDuration).Unix(),
	})
	return token.SignedString([]byte(h.jwtSecret))
}
