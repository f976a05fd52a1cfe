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

type mealTitlePayload struct {
	Title string `json:"title"`
}

// MealTitleResource serves the reusable meal labels under /app/api/meal-titles.
func MealTitleResource(w http.ResponseWriter, r *http.Request) {
	id, _, hasID := resourceID(r, "/app/api/meal-titles")

	switch {
	case r.Method == http.MethodGet && !hasID:
		var titles []models.MealTitle
		if err := database.WithContext(r.Context()).Order("title asc").Find(&titles).Error; err != nil {
			applog.Error(r.Context(), "failed to list meal titles", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "unable to list meal titles")
			return
		}
		writeJSON(w, http.StatusOK, titles)
	case r.Method == http.MethodPost && !hasID:
		saveMealTitle(w, r, nil)
	case r.Method == http.MethodPut:
		saveMealTitle(w, r, &id)
	case r.Method == http.MethodDelete:
		writeDeleteResult(w, r, diary.DeleteMealTitle(r.Context(), database, id), "meal title")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func saveMealTitle(w http.ResponseWriter, r *http.Request, id *uint) {
	var payload mealTitlePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid meal title payload")
		return
	}
	title := strings.TrimSpace(payload.Title)
	if title == "" {
		writeJSONError(w, http.StatusBadRequest, "title is required")
		return
	}

	record := models.MealTitle{}
	if id != nil {
		if err := database.WithContext(r.Context()).First(&record, *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				http.NotFound(w, r)
				return
			}
			applog.Error(r.Context(), "failed to load meal title", "id", *id, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "unable to load meal title")
			return
		}
	}

	record.Title = title
	if err := database.WithContext(r.Context()).Save(&record).Error; err != nil {
		applog.Error(r.Context(), "failed to save meal title", "title", title, "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to save meal title; it may already exist")
		return
	}

	status := http.StatusOK
	if id == nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, record)
}

type mealPayload struct {
	DayID       uint    `json:"day_id"`
	MealTitleID uint    `json:"meal_title_id"`
	Time        *string `json:"time"`
}

// MealResource serves meals under /app/api/meals. Nutrition values on a meal
// are derived from its dishes and only ever appear in responses.
func MealResource(w http.ResponseWriter, r *http.Request) {
	id, _, hasID := resourceID(r, "/app/api/meals")

	switch {
	case r.Method == http.MethodPost && !hasID:
		saveMeal(w, r, nil)
	case r.Method == http.MethodGet && hasID:
		showMeal(w, r, id)
	case r.Method == http.MethodPut:
		saveMeal(w, r, &id)
	case r.Method == http.MethodDelete:
		writeDeleteResult(w, r, diary.DeleteMeal(r.Context(), database, id), "meal")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func showMeal(w http.ResponseWriter, r *http.Request, id uint) {
	var meal models.Meal
	err := database.WithContext(r.Context()).
		Preload("MealTitle").
		Preload("Dishes.Product").
		First(&meal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load meal", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load meal")
		return
	}
	writeJSON(w, http.StatusOK, meal)
}

func saveMeal(w http.ResponseWriter, r *http.Request, id *uint) {
	var payload mealPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid meal payload")
		return
	}
	if payload.DayID == 0 || payload.MealTitleID == 0 {
		writeJSONError(w, http.StatusBadRequest, "day_id and meal_title_id are required")
		return
	}
	clock, ok := optionalClock(payload.Time)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "time must be formatted as HH:MM")
		return
	}

	meal := models.Meal{}
	if id != nil {
		if err := database.WithContext(r.Context()).First(&meal, *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				http.NotFound(w, r)
				return
			}
			applog.Error(r.Context(), "failed to load meal", "id", *id, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "unable to load meal")
			return
		}
	}

	meal.DayID = payload.DayID
	meal.MealTitleID = payload.MealTitleID
	meal.Time = clock

	if err := database.WithContext(r.Context()).Save(&meal).Error; err != nil {
		applog.Error(r.Context(), "failed to save meal", "day", payload.DayID, "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to save meal; check the day and title references")
		return
	}

	status := http.StatusOK
	if id == nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, meal)
}
