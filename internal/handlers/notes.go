package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	applog "foodlog/internal/log"
	"foodlog/models"
)

type notePayload struct {
	DayID uint    `json:"day_id"`
	Time  *string `json:"time"`
	Body  string  `json:"body"`
}

// NoteResource serves the free-text day notes under /app/api/notes.
func NoteResource(w http.ResponseWriter, r *http.Request) {
	id, _, hasID := resourceID(r, "/app/api/notes")

	switch {
	case r.Method == http.MethodPost && !hasID:
		saveNote(w, r, nil)
	case r.Method == http.MethodGet && hasID:
		showNote(w, r, id)
	case r.Method == http.MethodPut:
		saveNote(w, r, &id)
	case r.Method == http.MethodDelete:
		deleteNote(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func showNote(w http.ResponseWriter, r *http.Request, id uint) {
	var note models.Note
	if err := database.WithContext(r.Context()).First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load note", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load note")
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func saveNote(w http.ResponseWriter, r *http.Request, id *uint) {
	var payload notePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid note payload")
		return
	}
	if payload.DayID == 0 {
		writeJSONError(w, http.StatusBadRequest, "day_id is required")
		return
	}
	body := strings.TrimSpace(payload.Body)
	if body == "" {
		writeJSONError(w, http.StatusBadRequest, "body is required")
		return
	}
	clock, ok := optionalClock(payload.Time)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "time must be formatted as HH:MM")
		return
	}

	note := models.Note{}
	if id != nil {
		if err := database.WithContext(r.Context()).First(&note, *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				http.NotFound(w, r)
				return
			}
			applog.Error(r.Context(), "failed to load note", "id", *id, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "unable to load note")
			return
		}
	}

	note.DayID = payload.DayID
	note.Time = clock
	note.Body = body

	if err := database.WithContext(r.Context()).Save(&note).Error; err != nil {
		applog.Error(r.Context(), "failed to save note", "day", payload.DayID, "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to save note; check the day reference")
		return
	}

	status := http.StatusOK
	if id == nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, note)
}

func deleteNote(w http.ResponseWriter, r *http.Request, id uint) {
	result := database.WithContext(r.Context()).Delete(&models.Note{}, id)
	switch {
	case result.Error != nil:
		applog.Error(r.Context(), "failed to delete note", "id", id, "error", result.Error)
		writeJSONError(w, http.StatusInternalServerError, "unable to delete note")
	case result.RowsAffected == 0:
		http.NotFound(w, r)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
