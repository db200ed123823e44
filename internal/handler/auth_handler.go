package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"healthmate-api/internal/auth"
	"healthmate-api/internal/model"
	"healthmate-api/internal/store"
)

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	// pre-check keeps the common duplicate off the insert error path;
	// the unique index on email still backs the race
	if _, err := h.store.UserByEmail(r.Context(), req.Email); err == nil {
		writeError(w, http.StatusBadRequest, "Email already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.FullName,
	}
	if err := h.store.CreateUser(r.Context(), u); err != nil {
		if store.IsUniqueViolation(err) {
			// lost the race against a concurrent registration
			writeError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	writeSuccess(w)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	u, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil || !auth.CheckPassword(u.PasswordHash, req.Password) {
		// identical response for unknown email and wrong password
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sid, sidHash, err := auth.NewSessionID()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	expiresAt := time.Now().Add(auth.SessionTTL)
	if _, err := h.store.CreateSession(r.Context(), u.ID, sidHash, expiresAt); err != nil {
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	tok, err := auth.MakeSessionToken(u.ID, sid, h.secret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	auth.SetSessionCookie(w, tok, h.secure)
	writeSuccess(w)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	// best effort: drop the server-side session so the token stops resolving
	if c, err := r.Cookie(auth.CookieName); err == nil && c.Value != "" {
		if claims, err := auth.ParseSessionToken(c.Value, h.secret); err == nil {
			_ = h.store.DeleteSessionByTokenHash(r.Context(), auth.HashSessionID(claims.SessionID))
		}
	}
	auth.ClearSessionCookie(w, h.secure)
	writeSuccess(w)
}
