package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"foodlog/internal/diary"
	applog "foodlog/internal/log"
	"foodlog/internal/views/pages"
	"foodlog/models"
)

// Home routes the bare domain to the diary or the login screen.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if ActiveSession(r) {
		redirectToApp(w, r)
		return
	}
	redirectToLogin(w, r)
}

// DayListPage renders the diary overview and accepts the new-day form.
func DayListPage(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		renderDayList(w, r)
	case http.MethodPost:
		createDayFromForm(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func renderDayList(w http.ResponseWriter, r *http.Request) {
	var days []models.Day
	err := database.WithContext(r.Context()).
		Preload("DailyIntake").
		Preload("Meals.Dishes.Product").
		Order("date desc").
		Find(&days).Error
	if err != nil {
		applog.Error(r.Context(), "failed to load days for dashboard", "error", err)
		http.Error(w, "unable to load the diary", http.StatusInternalServerError)
		return
	}

	var intakes []models.DailyIntake
	if err := database.WithContext(r.Context()).Order("title asc").Find(&intakes).Error; err != nil {
		applog.Error(r.Context(), "failed to load daily intakes for dashboard", "error", err)
		http.Error(w, "unable to load the diary", http.StatusInternalServerError)
		return
	}

	defaultIntakeID := uint(0)
	if def, err := diary.DefaultDailyIntake(r.Context(), database); err != nil {
		applog.Error(r.Context(), "failed to resolve default daily intake", "error", err)
	} else if def != nil {
		defaultIntakeID = def.ID
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := pages.DayList(days, intakes, defaultIntakeID, currentTheme(r), currentUserName(r))
	if err := page.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render day list", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// createDayFromForm handles the new-day form on the dashboard: create the
// day, optionally clone another day's meals and pill schedule into it, then
// land on the new day's page.
func createDayFromForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(r.PostFormValue("date")))
	if err != nil {
		http.Error(w, "date must be formatted as YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	day := models.Day{Date: date}
	if raw := strings.TrimSpace(r.PostFormValue("daily_intake_id")); raw != "" {
		intakeID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid daily intake selection", http.StatusBadRequest)
			return
		}
		id := uint(intakeID)
		day.DailyIntakeID = &id
	}

	if err := database.WithContext(r.Context()).Create(&day).Error; err != nil {
		applog.Error(r.Context(), "failed to create day", "error", err)
		http.Error(w, "unable to create the day; it may already exist", http.StatusBadRequest)
		return
	}

	if raw := strings.TrimSpace(r.PostFormValue("copy_from")); raw != "" {
		sourceID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid source day selection", http.StatusBadRequest)
			return
		}
		if err := diary.CloneDay(r.Context(), database, uint(sourceID), day.ID); err != nil {
			applog.Error(r.Context(), "failed to clone day", "source", sourceID, "target", day.ID, "error", err)
			// The empty day was created; land there so the user can retry.
		}
	}

	http.Redirect(w, r, "/app/days/"+strconv.FormatUint(uint64(day.ID), 10), http.StatusSeeOther)
}

// DayDetailPage renders one day's combined chronological table. The bare
// table fragment is served when HTMX asks for a refresh.
func DayDetailPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, _, ok := resourceID(r, "/app/days")
	if !ok {
		http.NotFound(w, r)
		return
	}

	day, err := loadDayWithChildren(r, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		applog.Error(r.Context(), "failed to load day page", "id", id, "error", err)
		http.Error(w, "unable to load the day", http.StatusInternalServerError)
		return
	}

	summary := diary.BuildSummary(day)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var renderErr error
	if isHTMX(r) {
		renderErr = pages.DayTable(summary).Render(r.Context(), w)
	} else {
		renderErr = pages.DayDetail(summary, currentTheme(r), currentUserName(r)).Render(r.Context(), w)
	}
	if renderErr != nil {
		applog.Error(r.Context(), "failed to render day page", "id", id, "error", renderErr)
		http.Error(w, renderErr.Error(), http.StatusInternalServerError)
	}
}
