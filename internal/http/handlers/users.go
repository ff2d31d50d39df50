package handlers

import (
	"net/http"
	"strconv"

	"logistics-dashboard-service/internal/domain"
)

// UserHandler serves HTTP endpoints for user resources.
type UserHandler struct{ store userStore }

// NewUserHandler wires a user store into HTTP handlers.
func NewUserHandler(store userStore) *UserHandler { return &UserHandler{store: store} }

// GetByID handles GET /users/{id}.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	u, ok := h.store.GetUser(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, r, http.StatusOK, u)
}

// GetByUsername handles GET /users/by-username/{username}.
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username, err := keyFromURL(r, "username")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid username")
		return
	}
	u, ok := h.store.GetUserByUsername(username)
	if !ok {
		writeError(w, r, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, r, http.StatusOK, u)
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.InsertUser
	if ok := decodeJSON(w, r, &in); !ok {
		return
	}
	if err := in.Validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}
	if _, ok := h.store.GetUserByUsername(in.Username); ok {
		writeError(w, r, http.StatusConflict, "username already exists")
		return
	}
	if in.Email != nil {
		if _, ok := h.store.GetUserByEmail(*in.Email); ok {
			writeError(w, r, http.StatusConflict, "email already exists")
			return
		}
	}
	if in.GoogleID != nil {
		if _, ok := h.store.GetUserByGoogleID(*in.GoogleID); ok {
			writeError(w, r, http.StatusConflict, "googleId already exists")
			return
		}
	}
	u := h.store.CreateUser(in)
	w.Header().Set("Location", "/api/users/"+strconv.FormatInt(u.ID, 10))
	writeJSON(w, r, http.StatusCreated, u)
}
