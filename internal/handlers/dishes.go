package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	applog "foodlog/internal/log"
	"foodlog/models"
)

type dishPayload struct {
	MealID    uint   `json:"meal_id"`
	ProductID uint   `json:"product_id"`
	Weight    *int   `json:"weight"`
	Note      string `json:"note"`
}

// DishResource serves dishes under /app/api/dishes. Weight is grams and must
// not be negative; zero is a legal placeholder that contributes nothing.
func DishResource(w http.ResponseWriter, r *http.Request) {
	id, _, hasID := resourceID(r, "/app/api/dishes")

	switch {
	case r.Method == http.MethodPost && !hasID:
		saveDish(w, r, nil)
	case r.Method == http.MethodGet && hasID:
		showDish(w, r, id)
	case r.Method == http.MethodPut:
		saveDish(w, r, &id)
	case r.Method == http.MethodDelete:
		deleteDish(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func showDish(w http.ResponseWriter, r *http.Request, id uint) {
	var dish models.Dish
	if err := database.WithContext(r.Context()).Preload("Product").First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load dish", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load dish")
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func saveDish(w http.ResponseWriter, r *http.Request, id *uint) {
	var payload dishPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid dish payload")
		return
	}
	if payload.MealID == 0 || payload.ProductID == 0 {
		writeJSONError(w, http.StatusBadRequest, "meal_id and product_id are required")
		return
	}
	if payload.Weight == nil || *payload.Weight < 0 {
		writeJSONError(w, http.StatusBadRequest, "weight must be zero or a positive number of grams")
		return
	}

	dish := models.Dish{}
	if id != nil {
		if err := database.WithContext(r.Context()).First(&dish, *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				http.NotFound(w, r)
				return
			}
			applog.Error(r.Context(), "failed to load dish", "id", *id, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "unable to load dish")
			return
		}
	}

	dish.MealID = payload.MealID
	dish.ProductID = payload.ProductID
	dish.Weight = *payload.Weight
	dish.Note = strings.TrimSpace(payload.Note)

	if err := database.WithContext(r.Context()).Save(&dish).Error; err != nil {
		applog.Error(r.Context(), "failed to save dish", "meal", payload.MealID, "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to save dish; check the meal and product references")
		return
	}

	status := http.StatusOK
	if id == nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, dish)
}

func deleteDish(w http.ResponseWriter, r *http.Request, id uint) {
	result := database.WithContext(r.Context()).Delete(&models.Dish{}, id)
	switch {
	case result.Error != nil:
		applog.Error(r.Context(), "failed to delete dish", "id", id, "error", result.Error)
		writeJSONError(w, http.StatusInternalServerError, "unable to delete dish")
	case result.RowsAffected == 0:
		http.NotFound(w, r)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
