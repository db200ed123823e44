package handler

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"healthmate-api/internal/middleware"
	"healthmate-api/internal/model"
)

type bookingRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

type idRequest struct {
	ID string `json:"id"`
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req bookingRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Address == "" || req.Date == "" || req.Time == "" {
		writeError(w, http.StatusBadRequest, "Address, date and time are required")
		return
	}

	b := &model.Booking{
		ID:      uuid.New().String(),
		UserID:  user.ID,
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Date:    req.Date,
		Time:    req.Time,
	}
	if err := h.store.CreateBooking(r.Context(), b); err != nil {
		log.Printf("create booking: %v", err)
		writeError(w, http.StatusInternalServerError, "Booking failed")
		return
	}

	writeSuccess(w)
}

func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req idRequest
	if err := decode(r, &req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "Booking id is required")
		return
	}

	n, err := h.store.CancelBooking(r.Context(), req.ID, user.ID)
	if err != nil {
		log.Printf("cancel booking: %v", err)
		writeError(w, http.StatusInternalServerError, "Cancellation failed")
		return
	}
	if n == 0 {
		// missing, not owned, or already cancelled — tell the caller apart
		// from a real cancellation instead of claiming success
		writeError(w, http.StatusConflict, "Booking already cancelled or not found")
		return
	}

	writeSuccess(w)
}

// BookingPage serves the data behind the booking page: the visitor and
// their bookings, newest date first.
func (h *Handler) BookingPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	bookings, err := h.store.ListBookings(r.Context(), user.ID)
	if err != nil {
		// degrade to an empty list so the page still renders
		log.Printf("list bookings: %v", err)
		bookings = nil
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":     user,
		"bookings": bookings,
	})
}
