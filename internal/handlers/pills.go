package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"foodlog/internal/diary"
	applog "foodlog/internal/log"
	"foodlog/models"
)

type pillPayload struct {
	Title string `json:"title"`
	Note  string `json:"note"`
}

// PillResource serves the medication catalog under /app/api/pills.
func PillResource(w http.ResponseWriter, r *http.Request) {
	id, _, hasID := resourceID(r, "/app/api/pills")

	switch {
	case r.Method == http.MethodGet && !hasID:
		var pills []models.Pill
		if err := database.WithContext(r.Context()).Order("title asc").Find(&pills).Error; err != nil {
			applog.Error(r.Context(), "failed to list pills", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "unable to list pills")
			return
		}
		writeJSON(w, http.StatusOK, pills)
	case r.Method == http.MethodPost && !hasID:
		savePill(w, r, nil)
	case r.Method == http.MethodPut:
		savePill(w, r, &id)
	case r.Method == http.MethodDelete:
		writeDeleteResult(w, r, diary.DeletePill(r.Context(), database, id), "pill")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func savePill(w http.ResponseWriter, r *http.Request, id *uint) {
	var payload pillPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid pill payload")
		return
	}
	title := strings.TrimSpace(payload.Title)
	if title == "" {
		writeJSONError(w, http.StatusBadRequest, "title is required")
		return
	}

	pill := models.Pill{}
	if id != nil {
		if err := database.WithContext(r.Context()).First(&pill, *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				http.NotFound(w, r)
				return
			}
			applog.Error(r.Context(), "failed to load pill", "id", *id, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "unable to load pill")
			return
		}
	}

	pill.Title = title
	pill.Note = strings.TrimSpace(payload.Note)

	if err := database.WithContext(r.Context()).Save(&pill).Error; err != nil {
		applog.Error(r.Context(), "failed to save pill", "title", title, "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to save pill; it may already exist")
		return
	}

	status := http.StatusOK
	if id == nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, pill)
}

type takingPillPayload struct {
	DayID   uint    `json:"day_id"`
	PillID  uint    `json:"pill_id"`
	Time    *string `json:"time"`
	IsTaken bool    `json:"is_taken"`
	Note    string  `json:"note"`
}

// TakingPillResource serves the per-day pill schedule under
// /app/api/taking-pills.
func TakingPillResource(w http.ResponseWriter, r *http.Request) {
	id, _, hasID := resourceID(r, "/app/api/taking-pills")

	switch {
	case r.Method == http.MethodPost && !hasID:
		saveTakingPill(w, r, nil)
	case r.Method == http.MethodGet && hasID:
		showTakingPill(w, r, id)
	case r.Method == http.MethodPut:
		saveTakingPill(w, r, &id)
	case r.Method == http.MethodDelete:
		deleteTakingPill(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func showTakingPill(w http.ResponseWriter, r *http.Request, id uint) {
	var taking models.TakingPill
	if err := database.WithContext(r.Context()).Preload("Pill").First(&taking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load pill taking", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load pill taking")
		return
	}
	writeJSON(w, http.StatusOK, taking)
}

func saveTakingPill(w http.ResponseWriter, r *http.Request, id *uint) {
	var payload takingPillPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid pill taking payload")
		return
	}
	if payload.DayID == 0 || payload.PillID == 0 {
		writeJSONError(w, http.StatusBadRequest, "day_id and pill_id are required")
		return
	}
	clock, ok := optionalClock(payload.Time)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "time must be formatted as HH:MM")
		return
	}

	taking := models.TakingPill{}
	if id != nil {
		if err := database.WithContext(r.Context()).First(&taking, *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				http.NotFound(w, r)
				return
			}
			applog.Error(r.Context(), "failed to load pill taking", "id", *id, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "unable to load pill taking")
			return
		}
	}

	taking.DayID = payload.DayID
	taking.PillID = payload.PillID
	taking.Time = clock
	taking.IsTaken = payload.IsTaken
	taking.Note = strings.TrimSpace(payload.Note)

	if err := database.WithContext(r.Context()).Save(&taking).Error; err != nil {
		applog.Error(r.Context(), "failed to save pill taking", "day", payload.DayID, "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to save pill taking; check the day and pill references")
		return
	}

	status := http.StatusOK
	if id == nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, taking)
}

func deleteTakingPill(w http.ResponseWriter, r *http.Request, id uint) {
	result := database.WithContext(r.Context()).Delete(&models.TakingPill{}, id)
	switch {
	case result.Error != nil:
		applog.Error(r.Context(), "failed to delete pill taking", "id", id, "error", result.Error)
		writeJSONError(w, http.StatusInternalServerError, "unable to delete pill taking")
	case result.RowsAffected == 0:
		http.NotFound(w, r)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
