package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chris/statement-ledger/pkg/api"
	"github.com/chris/statement-ledger/pkg/mapping"
	"github.com/chris/statement-ledger/pkg/middleware"
	"github.com/chris/statement-ledger/pkg/storage"
	"github.com/chris/statement-ledger/pkg/users"
)

// UsersHandler holds the dependencies for user-related handlers.
type UsersHandler struct {
	Service *users.Service
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(service *users.Service) *UsersHandler {
	return &UsersHandler{Service: service}
}

// CreateUser handles the logic for registering a new user.
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var newUser api.NewUser
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if newUser.Name == "" || newUser.Email == "" || newUser.Password == "" {
		http.Error(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}

	createdUser, err := h.Service.Register(r.Context(), newUser.Name, newUser.Email, newUser.Password)
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			http.Error(w, "User with this email already exists", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create user: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiUser := mapping.ToApiUser(createdUser)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiUser); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// CreateSession handles the logic for authenticating a user.
func (h *UsersHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var newSession api.NewSession
	if err := json.NewDecoder(r.Body).Decode(&newSession); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	user, token, err := h.Service.Authenticate(r.Context(), newSession.Email, newSession.Password)
	if err != nil {
		if errors.Is(err, users.ErrIncorrectCredentials) {
			http.Error(w, "Incorrect email or password", http.StatusUnauthorized)
		} else {
			http.Error(w, fmt.Sprintf("Failed to authenticate: %v", err), http.StatusInternalServerError)
		}
		return
	}

	session := api.Session{User: mapping.ToApiUser(user), Token: token}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(session); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetProfile handles the logic for retrieving the authenticated user's profile.
func (h *UsersHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.Service.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve profile: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiUser := mapping.ToApiUser(user)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiUser); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
