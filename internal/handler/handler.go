package handler

import (
	"encoding/json"
	"net/http"

	"healthmate-api/internal/advice"
	"healthmate-api/internal/middleware"
	"healthmate-api/internal/store"
)

type Handler struct {
	store  *store.Store
	secret string
	secure bool // mark session cookies Secure (production)
	ai     *advice.Client
}

func New(st *store.Store, secret string, secure bool, ai *advice.Client) *Handler {
	return &Handler{store: st, secret: secret, secure: secure, ai: ai}
}

// Routes wires every endpoint. API routes answer 401 JSON without a valid
// session; page routes redirect to login instead.
func (h *Handler) Routes() *http.ServeMux {
	sessions := &middleware.Sessions{Store: h.store, Secret: h.secret}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /auth/logout", h.Logout)

	mux.HandleFunc("GET /booking", sessions.RequirePage(h.BookingPage))
	mux.HandleFunc("POST /booking", sessions.RequireSession(h.CreateBooking))
	mux.HandleFunc("DELETE /booking", sessions.RequireSession(h.CancelBooking))

	mux.HandleFunc("GET /dashboard", sessions.RequirePage(h.DashboardPage))
	mux.HandleFunc("POST /dashboard", sessions.RequireSession(h.AddHealthRecord))
	mux.HandleFunc("DELETE /dashboard", sessions.RequireSession(h.DeleteHealthRecord))

	mux.HandleFunc("POST /advice", sessions.RequireSession(h.Advice))
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
