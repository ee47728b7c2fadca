package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/evmarsh/blogforge-be/internal/auth"
	"github.com/evmarsh/blogforge-be/internal/services"
)

// UserHandler handles HTTP requests for registration, login and sessions.
type UserHandler struct {
	service  services.UserServiceProvider
	sessions *auth.Sessions
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, sessions *auth.Sessions) *UserHandler {
	return &UserHandler{service: service, sessions: sessions}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic"`
}

// AuthPayload defines the structure for login requests.
type AuthPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new user registration and logs the new account in.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Email == "" || payload.Password == "" || payload.Name == "" {
		http.Error(w, "Email, password and name are required", http.StatusBadRequest)
		return
	}

	user, err := h.service.Register(r.Context(), payload.Email, payload.Password, payload.Name, payload.ProfilePic)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			http.Error(w, "There is already an account registered with this email", http.StatusConflict)
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	// Registration doubles as the first login.
	token, err := h.sessions.Issue(user)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to issue session token")
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}
	h.sessions.SetCookie(w, token)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Login handles user authentication and session creation. An unknown email
// and a wrong password are reported differently on purpose, so the frontend
// can point unregistered visitors at the signup form.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload AuthPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.service.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNoSuchAccount):
			http.Error(w, "No account exists for this email, maybe try registering instead", http.StatusNotFound)
		case errors.Is(err, auth.ErrBadCredential):
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			http.Error(w, "The password is incorrect", http.StatusUnauthorized)
		default:
			// Ambiguous accounts and corrupt digests land here; the service
			// has already logged the integrity details.
			log.Error().Err(err).Str("email", payload.Email).Msg("Login failed")
			http.Error(w, "Something went wrong, contact support for help", http.StatusInternalServerError)
		}
		return
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to issue session token")
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}
	h.sessions.SetCookie(w, token)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Logout drops the session cookie. Safe to call while already logged out.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// GetMe returns the account behind the current session.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())
	if user == nil {
		// The guard keeps anonymous requests out of this route.
		log.Error().Msg("No resolved user on guarded route")
		http.Error(w, "Could not resolve current user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
