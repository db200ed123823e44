package handler

import (
	"log"
	"net/http"
)

type adviceRequest struct {
	Prompt string `json:"prompt"`
}

func (h *Handler) Advice(w http.ResponseWriter, r *http.Request) {
	if h.ai == nil {
		writeError(w, http.StatusServiceUnavailable, "AI advice is not configured")
		return
	}

	var req adviceRequest
	if err := decode(r, &req); err != nil || req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	text, err := h.ai.Generate(r.Context(), req.Prompt)
	if err != nil {
		log.Printf("advice: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get AI response")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": text})
}
