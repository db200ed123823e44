package handler

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"healthmate-api/internal/middleware"
	"healthmate-api/internal/model"
)

type healthRequest struct {
	// legacy field kept for older clients; ownership always comes from
	// the session, never from the body
	Email         string   `json:"email"`
	Weight        *float64 `json:"weight"`
	BloodPressure *string  `json:"bloodPressure"`
	Steps         *int     `json:"steps"`
	Notes         *string  `json:"notes"`
}

func (h *Handler) AddHealthRecord(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req healthRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec := &model.HealthRecord{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		Weight:        req.Weight,
		BloodPressure: req.BloodPressure,
		Steps:         req.Steps,
		Notes:         req.Notes,
	}
	if err := h.store.CreateHealthRecord(r.Context(), rec); err != nil {
		log.Printf("save health record: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save health data")
		return
	}

	writeSuccess(w)
}

func (h *Handler) DeleteHealthRecord(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req idRequest
	if err := decode(r, &req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "Record id is required")
		return
	}

	n, err := h.store.DeleteHealthRecord(r.Context(), req.ID, user.ID)
	if err != nil {
		log.Printf("delete health record: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete entry")
		return
	}
	if n == 0 {
		// nonexistent or owned by someone else; don't reveal which
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}

	writeSuccess(w)
}

// DashboardPage serves the data behind the dashboard: the visitor and
// their health records, newest date first.
func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	records, err := h.store.ListHealthRecords(r.Context(), user.ID)
	if err != nil {
		// degrade to an empty list so the page still renders
		log.Printf("list health records: %v", err)
		records = nil
	}
	if records == nil {
		records = []model.HealthRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":       user,
		"healthData": records,
	})
}
