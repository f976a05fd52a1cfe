package handlers

import (
	"net/http"

	applog "foodlog/internal/log"
	"foodlog/internal/views/pages"
	"foodlog/models"
)

// Preferences renders the settings page and persists theme changes to both
// the account record and the live session.
func Preferences(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := pages.Preferences(currentTheme(r), currentUserName(r))
		if err := page.Render(r.Context(), w); err != nil {
			applog.Error(r.Context(), "failed to render preferences", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		theme := r.PostFormValue("theme")
		if !models.ValidTheme(theme) {
			http.Error(w, "unknown theme", http.StatusBadRequest)
			return
		}

		user, err := loadCurrentUser(r)
		if err != nil {
			applog.Error(r.Context(), "failed to load user for preferences", "error", err)
			http.Error(w, "unable to save preferences", http.StatusInternalServerError)
			return
		}

		user.Theme = theme
		if err := database.WithContext(r.Context()).Save(user).Error; err != nil {
			applog.Error(r.Context(), "failed to save theme preference", "error", err)
			http.Error(w, "unable to save preferences", http.StatusInternalServerError)
			return
		}
		if sessionManager != nil {
			sessionManager.Put(r.Context(), sessionThemeKey, theme)
		}

		applog.Info(r.Context(), "theme preference updated", "theme", theme)
		http.Redirect(w, r, "/app/preferences", http.StatusSeeOther)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
