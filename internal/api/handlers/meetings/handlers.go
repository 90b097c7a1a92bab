package meetings

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"OneSlot/internal/api/middleware"
	"OneSlot/internal/core/meetings"
)

// Handler serves the meeting type CRUD endpoints
type Handler struct {
	service *meetings.Service
}

// NewHandler creates a new meeting types handler
func NewHandler(service *meetings.Service) *Handler {
	return &Handler{service: service}
}

// HandleList lists the user's meeting types
// GET /api/meeting-types
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"meetingTypes": h.service.List(userID),
	})
}

// HandleCreate creates a meeting type
// POST /api/meeting-types
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var req meetings.CreateMeetingTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	mt, err := h.service.Create(userID, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, mt)
}

// HandleUpdate updates an existing meeting type
// PUT /api/meeting-types/{typeID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var req meetings.CreateMeetingTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	mt, err := h.service.Update(userID, chi.URLParam(r, "typeID"), req)
	if err != nil {
		if errors.Is(err, meetings.ErrMeetingTypeNotFound) {
			writeError(w, http.StatusNotFound, "NotFound", "Meeting type not found")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, mt)
}

// HandleDelete removes a meeting type
// DELETE /api/meeting-types/{typeID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Delete(userID, chi.URLParam(r, "typeID")); err != nil {
		writeError(w, http.StatusNotFound, "NotFound", "Meeting type not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeError writes a standardized JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	writeJSON(w, statusCode, map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}
