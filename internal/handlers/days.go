package handlers

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"foodlog/internal/diary"
	applog "foodlog/internal/log"
	"foodlog/models"
)

type dayPayload struct {
	Date          string `json:"date"`
	DailyIntakeID *uint  `json:"daily_intake_id"`
	CopyFrom      *uint  `json:"copy_from"`
}

// DayResource serves the diary days under /app/api/days. Creation accepts an
// optional copy_from day whose meals and pill schedule are cloned into the
// new day.
func DayResource(w http.ResponseWriter, r *http.Request) {
	id, rest, hasID := resourceID(r, "/app/api/days")

	switch {
	case r.Method == http.MethodGet && !hasID:
		listDays(w, r)
	case r.Method == http.MethodPost && !hasID:
		createDay(w, r)
	case r.Method == http.MethodGet && rest == "summary":
		showDaySummary(w, r, id)
	case r.Method == http.MethodGet && rest == "":
		showDay(w, r, id)
	case r.Method == http.MethodPut && rest == "":
		updateDay(w, r, id)
	case r.Method == http.MethodDelete && rest == "":
		writeDeleteResult(w, r, diary.DeleteDay(r.Context(), database, id), "day")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// loadDayWithChildren fetches a day with everything the summary needs in one
// preloaded graph.
func loadDayWithChildren(r *http.Request, id uint) (models.Day, error) {
	var day models.Day
	err := database.WithContext(r.Context()).
		Preload("DailyIntake").
		Preload("Meals.MealTitle").
		Preload("Meals.Dishes.Product").
		Preload("TakingPills.Pill").
		Preload("Notes").
		First(&day, id).Error
	return day, err
}

func listDays(w http.ResponseWriter, r *http.Request) {
	var days []models.Day
	if err := database.WithContext(r.Context()).Preload("DailyIntake").Order("date desc").Find(&days).Error; err != nil {
		applog.Error(r.Context(), "failed to list days", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to list days")
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func createDay(w http.ResponseWriter, r *http.Request) {
	var payload dayPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid day payload")
		return
	}

	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}

	day := models.Day{Date: date, DailyIntakeID: payload.DailyIntakeID}
	if err := database.WithContext(r.Context()).Create(&day).Error; err != nil {
		applog.Error(r.Context(), "failed to create day", "date", payload.Date, "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to create day; the date may already exist")
		return
	}

	applog.Info(r.Context(), "day created", "id", day.ID, "date", payload.Date)

	if payload.CopyFrom != nil {
		if err := diary.CloneDay(r.Context(), database, *payload.CopyFrom, day.ID); err != nil {
			// The empty day stays; the caller can retry the copy or fill it in
			// by hand.
			applog.Error(r.Context(), "failed to clone day", "source", *payload.CopyFrom, "target", day.ID, "error", err)
			writeJSON(w, http.StatusCreated, map[string]any{
				"day":        day,
				"copy_error": "the day was created but copying meals from the source day failed",
			})
			return
		}
		applog.Info(r.Context(), "day cloned", "source", *payload.CopyFrom, "target", day.ID)
	}

	writeJSON(w, http.StatusCreated, day)
}

func showDay(w http.ResponseWriter, r *http.Request, id uint) {
	day, err := loadDayWithChildren(r, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load day", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load day")
		return
	}
	writeJSON(w, http.StatusOK, day)
}

type summaryResponse struct {
	Day       models.Day     `json:"day"`
	HasIntake bool           `json:"has_intake"`
	Totals    diary.MacroRow `json:"totals"`
	Targets   diary.MacroRow `json:"targets,omitempty"`
	Diff      diary.MacroRow `json:"diff,omitempty"`
	Weight    float64        `json:"weight"`
}

func showDaySummary(w http.ResponseWriter, r *http.Request, id uint) {
	day, err := loadDayWithChildren(r, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load day for summary", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load day")
		return
	}

	summary := diary.BuildSummary(day)
	writeJSON(w, http.StatusOK, summaryResponse{
		Day:       summary.Day,
		HasIntake: summary.HasIntake,
		Totals:    summary.Totals,
		Targets:   summary.Targets,
		Diff:      summary.Diff,
		Weight:    day.WeightGrams(),
	})
}

func updateDay(w http.ResponseWriter, r *http.Request, id uint) {
	var payload dayPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid day payload")
		return
	}

	var day models.Day
	if err := database.WithContext(r.Context()).First(&day, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load day", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load day")
		return
	}

	if payload.Date != "" {
		date, err := time.Parse("2006-01-02", payload.Date)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
			return
		}
		day.Date = date
	}
	day.DailyIntakeID = payload.DailyIntakeID

	if err := database.WithContext(r.Context()).Save(&day).Error; err != nil {
		applog.Error(r.Context(), "failed to update day", "id", id, "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to update day; the date may already exist")
		return
	}

	writeJSON(w, http.StatusOK, day)
}
