// Package handlers contains the HTTP surface of the diary: server-rendered
// pages and the JSON resource API under /app/api.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"foodlog/internal/diary"
	applog "foodlog/internal/log"
	"foodlog/models"
)

const (
	sessionAuthenticatedKey = "auth:authenticated"
	sessionLoginMessageKey  = "auth:message"
	sessionUserIDKey        = "auth:user:id"
	sessionUserNameKey      = "auth:user:name"
	sessionThemeKey         = "prefs:theme"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB) {
	sessionManager = sm
	database = db
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// resourceID extracts the trailing numeric identifier from an API path such
// as /app/api/products/42. ok is false when the path carries no identifier.
func resourceID(r *http.Request, prefix string) (uint, string, bool) {
	path := strings.TrimPrefix(r.URL.Path, prefix)
	path = strings.Trim(path, "/")
	if path == "" {
		return 0, "", false
	}
	segments := strings.SplitN(path, "/", 2)
	idValue, err := strconv.ParseUint(segments[0], 10, 64)
	if err != nil {
		return 0, "", false
	}
	rest := ""
	if len(segments) > 1 {
		rest = segments[1]
	}
	return uint(idValue), rest, true
}

// writeDeleteResult maps domain delete errors onto HTTP statuses: guarded
// deletes come back as 409, missing records as 404.
func writeDeleteResult(w http.ResponseWriter, r *http.Request, err error, label string) {
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, diary.ErrInUse):
		applog.Debug(r.Context(), "delete rejected: record in use", "resource", label)
		writeJSONError(w, http.StatusConflict, label+" is still referenced and cannot be deleted")
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.NotFound(w, r)
	default:
		applog.Error(r.Context(), "delete failed", "resource", label, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to delete "+label)
	}
}

// nextTarget returns a safe same-site redirect target from the ?next=
// parameter, used by the save-and-return affordance on child edit screens.
func nextTarget(r *http.Request) string {
	next := strings.TrimSpace(r.URL.Query().Get("next"))
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}

// decodeJSON reads a request body into dst, rejecting unknown fields so that
// clients cannot smuggle derived values into write payloads.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// optionalClock validates an optional "HH:MM" value. ok is false when the
// value is present but malformed.
func optionalClock(value *string) (*string, bool) {
	if value == nil {
		return nil, true
	}
	normalized := models.NormalizeClockTime(*value)
	if normalized == nil {
		return nil, true
	}
	if !models.ValidClockTime(*normalized) {
		return nil, false
	}
	return normalized, true
}
