package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"foodlog/models"
)

// seedDayGraph builds a day with one meal, one dish, one pill taking and one
// note, returning the day.
func seedDayGraph(t *testing.T, date string) models.Day {
	t.Helper()

	product := models.Product{Title: "Oatmeal " + date, Energy: 389, Proteins: 16.9, Fats: 6.9, Carbs: 66.3}
	mustSeed(t, database, &product)
	title := models.MealTitle{Title: "Breakfast " + date}
	mustSeed(t, database, &title)
	pill := models.Pill{Title: "Vitamin D " + date}
	mustSeed(t, database, &pill)

	day := models.Day{Date: dateValue(t, date)}
	mustSeed(t, database, &day)
	meal := models.Meal{DayID: day.ID, MealTitleID: title.ID, Time: clockPtr("08:00")}
	mustSeed(t, database, &meal)
	mustSeed(t, database, &models.Dish{MealID: meal.ID, ProductID: product.ID, Weight: 50})
	mustSeed(t, database, &models.TakingPill{DayID: day.ID, PillID: pill.ID, Time: clockPtr("08:30"), IsTaken: true})
	mustSeed(t, database, &models.Note{DayID: day.ID, Body: "slept badly"})

	return day
}

func TestDayResourceCreateWithClone(t *testing.T) {
	db, _ := configureTestDeps(t)

	source := seedDayGraph(t, "2026-03-03")

	payload := map[string]any{"date": "2026-03-04", "copy_from": source.ID}
	rr := httptest.NewRecorder()
	DayResource(rr, jsonRequest(t, http.MethodPost, "/app/api/days", payload))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var created models.Day
	decodeBody(t, rr, &created)

	var meals int64
	if err := db.Model(&models.Meal{}).Where("day_id = ?", created.ID).Count(&meals).Error; err != nil {
		t.Fatalf("count cloned meals: %v", err)
	}
	if meals != 1 {
		t.Fatalf("expected 1 cloned meal, got %d", meals)
	}

	var taking models.TakingPill
	if err := db.Where("day_id = ?", created.ID).First(&taking).Error; err != nil {
		t.Fatalf("fetch cloned taking: %v", err)
	}
	if taking.IsTaken {
		t.Fatal("expected the cloned pill taking to start untaken")
	}

	var notes int64
	if err := db.Model(&models.Note{}).Where("day_id = ?", created.ID).Count(&notes).Error; err != nil {
		t.Fatalf("count notes: %v", err)
	}
	if notes != 0 {
		t.Fatal("expected notes to stay behind on the source day")
	}
}

func TestDayResourceCreateReportsCloneFailure(t *testing.T) {
	db, _ := configureTestDeps(t)

	payload := map[string]any{"date": "2026-03-05", "copy_from": 999}
	rr := httptest.NewRecorder()
	DayResource(rr, jsonRequest(t, http.MethodPost, "/app/api/days", payload))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 with copy error, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]any
	decodeBody(t, rr, &resp)
	if _, ok := resp["copy_error"]; !ok {
		t.Fatalf("expected copy_error in response, got %v", resp)
	}

	// The empty target day survives so the user can retry.
	var days int64
	if err := db.Model(&models.Day{}).Count(&days).Error; err != nil {
		t.Fatalf("count days: %v", err)
	}
	if days != 1 {
		t.Fatalf("expected the empty day to remain, got %d days", days)
	}
}

func TestDayResourceRejectsBadDate(t *testing.T) {
	configureTestDeps(t)

	rr := httptest.NewRecorder()
	DayResource(rr, jsonRequest(t, http.MethodPost, "/app/api/days", map[string]any{"date": "03/04/2026"}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", rr.Code)
	}
}

func TestDayResourceSummaryEndpoint(t *testing.T) {
	db, _ := configureTestDeps(t)

	day := seedDayGraph(t, "2026-03-06")
	intake := models.DailyIntake{Title: "Maintenance", Default: true, Energy: 2000, Proteins: 90, Fats: 70, Carbs: 250}
	mustSeed(t, db, &intake)
	if err := db.Model(&models.Day{}).Where("id = ?", day.ID).Update("daily_intake_id", intake.ID).Error; err != nil {
		t.Fatalf("link intake: %v", err)
	}

	rr := httptest.NewRecorder()
	DayResource(rr, httptest.NewRequest(http.MethodGet, "/app/api/days/1/summary", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp summaryResponse
	decodeBody(t, rr, &resp)
	if !resp.HasIntake {
		t.Fatal("expected summary to include comparison rows")
	}
	// 50g of oatmeal: 389 * 0.5 = 194.5 kcal.
	if resp.Totals.Energy.Value != 194.5 {
		t.Fatalf("expected total energy 194.5, got %v", resp.Totals.Energy.Value)
	}
	if resp.Diff.Energy.Value != 1805.5 {
		t.Fatalf("expected diff energy 1805.5, got %v", resp.Diff.Energy.Value)
	}
	if resp.Targets.Energy.Value != 2000 {
		t.Fatalf("expected raw target 2000, got %v", resp.Targets.Energy.Value)
	}
}

func TestDayResourceDeleteGuard(t *testing.T) {
	db, _ := configureTestDeps(t)

	day := seedDayGraph(t, "2026-03-07")

	rr := httptest.NewRecorder()
	DayResource(rr, httptest.NewRequest(http.MethodDelete, "/app/api/days/1", nil))
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 while the day owns entries, got %d", rr.Code)
	}

	for _, model := range []any{&models.Dish{}, &models.Meal{}, &models.TakingPill{}, &models.Note{}} {
		if err := db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			t.Fatalf("failed to clear %T: %v", model, err)
		}
	}

	rr = httptest.NewRecorder()
	DayResource(rr, httptest.NewRequest(http.MethodDelete, "/app/api/days/1", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 once empty, got %d", rr.Code)
	}
	var count int64
	if err := db.Model(&models.Day{}).Where("id = ?", day.ID).Count(&count).Error; err != nil {
		t.Fatalf("count days: %v", err)
	}
	if count != 0 {
		t.Fatal("expected the day to be gone")
	}
}
