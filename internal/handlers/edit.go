package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"gorm.io/gorm"

	applog "foodlog/internal/log"
	"foodlog/internal/views/pages"
	"foodlog/models"
)

// The edit screens below are reached from a day page with ?next= carrying
// the return target; a successful save redirects straight back ("save and
// return"), a failed one re-renders the form.

// MealEditPage renders and processes the meal edit form.
func MealEditPage(w http.ResponseWriter, r *http.Request) {
	id, rest, ok := resourceID(r, "/app/meals")
	if !ok || rest != "edit" {
		http.NotFound(w, r)
		return
	}

	var meal models.Meal
	if !loadForEdit(w, r, &meal, id, "meal") {
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		var titles []models.MealTitle
		if err := database.WithContext(r.Context()).Order("title asc").Find(&titles).Error; err != nil {
			applog.Error(r.Context(), "failed to load meal titles", "error", err)
			http.Error(w, "unable to load the form", http.StatusInternalServerError)
			return
		}
		renderEdit(w, r, pages.MealEdit(meal, titles, nextTarget(r), currentTheme(r), currentUserName(r)))
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		titleID, err := strconv.ParseUint(r.PostFormValue("meal_title_id"), 10, 64)
		if err != nil || titleID == 0 {
			http.Error(w, "a meal title is required", http.StatusBadRequest)
			return
		}
		clock, ok := optionalClock(formClock(r))
		if !ok {
			http.Error(w, "time must be formatted as HH:MM", http.StatusBadRequest)
			return
		}

		meal.MealTitleID = uint(titleID)
		meal.Time = clock
		saveAndReturn(w, r, &meal, "/app/days/"+strconv.FormatUint(uint64(meal.DayID), 10))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// DishEditPage renders and processes the dish edit form.
func DishEditPage(w http.ResponseWriter, r *http.Request) {
	id, rest, ok := resourceID(r, "/app/dishes")
	if !ok || rest != "edit" {
		http.NotFound(w, r)
		return
	}

	var dish models.Dish
	if !loadForEdit(w, r, &dish, id, "dish") {
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		var products []models.Product
		if err := database.WithContext(r.Context()).Order("title asc").Find(&products).Error; err != nil {
			applog.Error(r.Context(), "failed to load products", "error", err)
			http.Error(w, "unable to load the form", http.StatusInternalServerError)
			return
		}
		renderEdit(w, r, pages.DishEdit(dish, products, nextTarget(r), currentTheme(r), currentUserName(r)))
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		productID, err := strconv.ParseUint(r.PostFormValue("product_id"), 10, 64)
		if err != nil || productID == 0 {
			http.Error(w, "a product is required", http.StatusBadRequest)
			return
		}
		weight, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("weight")))
		if err != nil || weight < 0 {
			http.Error(w, "weight must be zero or a positive number of grams", http.StatusBadRequest)
			return
		}

		dish.ProductID = uint(productID)
		dish.Weight = weight
		dish.Note = strings.TrimSpace(r.PostFormValue("note"))
		saveAndReturn(w, r, &dish, mealReturnTarget(r, dish.MealID))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// TakingPillEditPage renders and processes the pill taking edit form.
func TakingPillEditPage(w http.ResponseWriter, r *http.Request) {
	id, rest, ok := resourceID(r, "/app/taking-pills")
	if !ok || rest != "edit" {
		http.NotFound(w, r)
		return
	}

	var taking models.TakingPill
	if !loadForEdit(w, r, &taking, id, "pill taking") {
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		var pills []models.Pill
		if err := database.WithContext(r.Context()).Order("title asc").Find(&pills).Error; err != nil {
			applog.Error(r.Context(), "failed to load pills", "error", err)
			http.Error(w, "unable to load the form", http.StatusInternalServerError)
			return
		}
		renderEdit(w, r, pages.TakingPillEdit(taking, pills, nextTarget(r), currentTheme(r), currentUserName(r)))
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		pillID, err := strconv.ParseUint(r.PostFormValue("pill_id"), 10, 64)
		if err != nil || pillID == 0 {
			http.Error(w, "a pill is required", http.StatusBadRequest)
			return
		}
		clock, ok := optionalClock(formClock(r))
		if !ok {
			http.Error(w, "time must be formatted as HH:MM", http.StatusBadRequest)
			return
		}

		taking.PillID = uint(pillID)
		taking.Time = clock
		taking.IsTaken = r.PostFormValue("is_taken") == "true"
		taking.Note = strings.TrimSpace(r.PostFormValue("note"))
		saveAndReturn(w, r, &taking, "/app/days/"+strconv.FormatUint(uint64(taking.DayID), 10))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// NoteEditPage renders and processes the day note edit form.
func NoteEditPage(w http.ResponseWriter, r *http.Request) {
	id, rest, ok := resourceID(r, "/app/notes")
	if !ok || rest != "edit" {
		http.NotFound(w, r)
		return
	}

	var note models.Note
	if !loadForEdit(w, r, &note, id, "note") {
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		renderEdit(w, r, pages.NoteEdit(note, nextTarget(r), currentTheme(r), currentUserName(r)))
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		body := strings.TrimSpace(r.PostFormValue("body"))
		if body == "" {
			http.Error(w, "the note body is required", http.StatusBadRequest)
			return
		}
		clock, ok := optionalClock(formClock(r))
		if !ok {
			http.Error(w, "time must be formatted as HH:MM", http.StatusBadRequest)
			return
		}

		note.Body = body
		note.Time = clock
		saveAndReturn(w, r, &note, "/app/days/"+strconv.FormatUint(uint64(note.DayID), 10))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func loadForEdit(w http.ResponseWriter, r *http.Request, record any, id uint, label string) bool {
	if err := database.WithContext(r.Context()).First(record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return false
		}
		applog.Error(r.Context(), "failed to load record for editing", "resource", label, "id", id, "error", err)
		http.Error(w, "unable to load the "+label, http.StatusInternalServerError)
		return false
	}
	return true
}

func renderEdit(w http.ResponseWriter, r *http.Request, page templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render edit form", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func saveAndReturn(w http.ResponseWriter, r *http.Request, record any, fallback string) {
	if err := database.WithContext(r.Context()).Save(record).Error; err != nil {
		applog.Error(r.Context(), "failed to save edited record", "error", err)
		http.Error(w, "unable to save the changes", http.StatusBadRequest)
		return
	}
	target := nextTarget(r)
	if target == "" {
		target = fallback
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func formClock(r *http.Request) *string {
	value := r.PostFormValue("time")
	return &value
}

// mealReturnTarget resolves the day page for a dish's parent meal when the
// request carries no explicit return target.
func mealReturnTarget(r *http.Request, mealID uint) string {
	var meal models.Meal
	if err := database.WithContext(r.Context()).First(&meal, mealID).Error; err != nil {
		return "/app"
	}
	return "/app/days/" + strconv.FormatUint(uint64(meal.DayID), 10)
}
