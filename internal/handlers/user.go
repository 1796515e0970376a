package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"yecs-backend/internal/models"
	"yecs-backend/internal/repository"
)

type UserHandler struct {
	userRepo *repository.UserRepo
}

func NewUserHandler(userRepo *repository.UserRepo) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

// --- POST /api/user ---

func (h *UserHandler) SyncUser(w http.ResponseWriter, r *http.Request) {
	var doc models.ProfileSync
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.userRepo.Sync(r.Context(), doc); err != nil {
		if errors.Is(err, repository.ErrMissingUserID) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "User ID is required"})
			return
		}
		log.Printf("Error syncing user profile: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to sync user profile",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "User profile synced successfully",
	})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
