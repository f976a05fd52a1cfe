package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"foodlog/models"
)

// configureTestDeps opens a per-test in-memory database, wires it into the
// package globals and returns it together with the session manager.
func configureTestDeps(t *testing.T) (*gorm.DB, *scs.SessionManager) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.DailyIntake{},
		&models.Day{},
		&models.MealTitle{},
		&models.Meal{},
		&models.Dish{},
		&models.Pill{},
		&models.TakingPill{},
		&models.Note{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	sm := scs.New()
	Configure(sm, db)
	t.Cleanup(func() {
		Configure(nil, nil)
	})

	return db, sm
}

func mustSeed(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to seed %T: %v", value, err)
	}
}

// jsonRequest builds a request with a JSON body for the resource handlers.
func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// serveWithSession runs a handler inside the session middleware, which the
// page handlers need for theme and user lookups.
func serveWithSession(sm *scs.SessionManager, handler http.HandlerFunc, rr *httptest.ResponseRecorder, req *http.Request) {
	sm.LoadAndSave(handler).ServeHTTP(rr, req)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
}

func clockPtr(value string) *string {
	return &value
}

func dateValue(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", value, err)
	}
	return date
}
