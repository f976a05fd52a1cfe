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

type intakePayload struct {
	Title    string   `json:"title"`
	Default  bool     `json:"default"`
	Energy   *float64 `json:"energy"`
	Proteins *float64 `json:"proteins"`
	Fats     *float64 `json:"fats"`
	Carbs    *float64 `json:"carbs"`
	Sugar    *float64 `json:"sugar"`
	Salt     *float64 `json:"salt"`
	Note     string   `json:"note"`
}

func (p intakePayload) validate() string {
	if strings.TrimSpace(p.Title) == "" {
		return "title is required"
	}
	if p.Energy == nil || p.Proteins == nil || p.Fats == nil || p.Carbs == nil {
		return "energy, proteins, fats and carbs are required"
	}
	for _, v := range []float64{*p.Energy, *p.Proteins, *p.Fats, *p.Carbs} {
		if v < 0 {
			return "intake targets must not be negative"
		}
	}
	return ""
}

func (p intakePayload) apply(intake *models.DailyIntake) {
	intake.Title = strings.TrimSpace(p.Title)
	intake.Default = p.Default
	intake.Energy = *p.Energy
	intake.Proteins = *p.Proteins
	intake.Fats = *p.Fats
	intake.Carbs = *p.Carbs
	intake.Sugar = p.Sugar
	intake.Salt = p.Salt
	intake.Note = strings.TrimSpace(p.Note)
}

// DailyIntakeResource serves the intake profiles under /app/api/daily-intakes.
// Every save goes through the diary service so the default flag stays a
// singleton.
func DailyIntakeResource(w http.ResponseWriter, r *http.Request) {
	id, _, hasID := resourceID(r, "/app/api/daily-intakes")

	switch {
	case r.Method == http.MethodGet && !hasID:
		listIntakes(w, r)
	case r.Method == http.MethodPost && !hasID:
		saveIntake(w, r, nil)
	case r.Method == http.MethodGet:
		showIntake(w, r, id)
	case r.Method == http.MethodPut:
		saveIntake(w, r, &id)
	case r.Method == http.MethodDelete:
		writeDeleteResult(w, r, diary.DeleteDailyIntake(r.Context(), database, id), "daily intake")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func listIntakes(w http.ResponseWriter, r *http.Request) {
	var intakes []models.DailyIntake
	if err := database.WithContext(r.Context()).Order("title asc").Find(&intakes).Error; err != nil {
		applog.Error(r.Context(), "failed to list daily intakes", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to list daily intakes")
		return
	}
	writeJSON(w, http.StatusOK, intakes)
}

func showIntake(w http.ResponseWriter, r *http.Request, id uint) {
	var intake models.DailyIntake
	if err := database.WithContext(r.Context()).First(&intake, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load daily intake", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load daily intake")
		return
	}
	writeJSON(w, http.StatusOK, intake)
}

func saveIntake(w http.ResponseWriter, r *http.Request, id *uint) {
	var payload intakePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid daily intake payload")
		return
	}
	if msg := payload.validate(); msg != "" {
		writeJSONError(w, http.StatusBadRequest, msg)
		return
	}

	intake := models.DailyIntake{}
	if id != nil {
		if err := database.WithContext(r.Context()).First(&intake, *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				http.NotFound(w, r)
				return
			}
			applog.Error(r.Context(), "failed to load daily intake", "id", *id, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "unable to load daily intake")
			return
		}
	}

	payload.apply(&intake)
	if err := diary.SaveDailyIntake(r.Context(), database, &intake); err != nil {
		applog.Error(r.Context(), "failed to save daily intake", "title", intake.Title, "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to save daily intake; the title may already exist")
		return
	}

	status := http.StatusOK
	if id == nil {
		status = http.StatusCreated
		applog.Info(r.Context(), "daily intake created", "id", intake.ID, "title", intake.Title, "default", intake.Default)
	}
	writeJSON(w, status, intake)
}
