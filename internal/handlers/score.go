package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"yecs-backend/internal/scoring"
)

type ScoreHandler struct {
	engine *scoring.Engine
}

func NewScoreHandler(engine *scoring.Engine) *ScoreHandler {
	return &ScoreHandler{
		engine: engine,
	}
}

// --- POST /api/calculate-score ---

func (h *ScoreHandler) CalculateScore(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No data provided"})
		return
	}

	// An empty object is treated the same as a missing body.
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil || len(doc) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No data provided"})
		return
	}

	var input scoring.Input
	if err := json.Unmarshal(body, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.engine.Compute(input)
	if err != nil {
		log.Printf("Error computing score: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}
