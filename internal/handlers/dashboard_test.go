package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"foodlog/models"
)

func TestDayListPageRendersDaysAndForm(t *testing.T) {
	db, sm := configureTestDeps(t)

	intake := models.DailyIntake{Title: "Maintenance", Default: true, Energy: 2000, Proteins: 90, Fats: 70, Carbs: 250}
	mustSeed(t, db, &intake)
	day := seedDayGraph(t, "2026-03-15")
	if err := db.Model(&models.Day{}).Where("id = ?", day.ID).Update("daily_intake_id", intake.ID).Error; err != nil {
		t.Fatalf("link intake: %v", err)
	}

	rr := httptest.NewRecorder()
	serveWithSession(sm, DayListPage, rr, httptest.NewRequest(http.MethodGet, "/app", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, "2026-03-15") {
		t.Fatal("expected the seeded day in the list")
	}
	if !strings.Contains(body, `<option value="1" selected>Maintenance</option>`) {
		t.Fatal("expected the default intake to be preselected on the new-day form")
	}
	if !strings.Contains(body, "copy_from") {
		t.Fatal("expected the copy-from selector on the new-day form")
	}
}

func TestDayListPageCreatesDayWithClone(t *testing.T) {
	db, sm := configureTestDeps(t)
	source := seedDayGraph(t, "2026-03-16")

	data := url.Values{}
	data.Set("date", "2026-03-17")
	data.Set("copy_from", "1")

	rr := httptest.NewRecorder()
	serveWithSession(sm, DayListPage, rr, formRequest(http.MethodPost, "/app/days", data))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect to the new day, got %d: %s", rr.Code, rr.Body.String())
	}
	if loc := rr.Header().Get("Location"); loc != "/app/days/2" {
		t.Fatalf("expected redirect to /app/days/2, got %q", loc)
	}

	var meals int64
	if err := db.Model(&models.Meal{}).Where("day_id <> ?", source.ID).Count(&meals).Error; err != nil {
		t.Fatalf("count cloned meals: %v", err)
	}
	if meals != 1 {
		t.Fatalf("expected the source meals to be cloned, got %d", meals)
	}
}

func TestDayDetailPageRendersSummaryRows(t *testing.T) {
	db, sm := configureTestDeps(t)

	day := seedDayGraph(t, "2026-03-18")
	intake := models.DailyIntake{Title: "Maintenance", Default: true, Energy: 2000, Proteins: 90, Fats: 70, Carbs: 250}
	mustSeed(t, db, &intake)
	if err := db.Model(&models.Day{}).Where("id = ?", day.ID).Update("daily_intake_id", intake.ID).Error; err != nil {
		t.Fatalf("link intake: %v", err)
	}

	rr := httptest.NewRecorder()
	serveWithSession(sm, DayDetailPage, rr, httptest.NewRequest(http.MethodGet, "/app/days/1", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	for _, fragment := range []string{"Total", "Maintenance", "Diff", "band-far-under", "slept badly"} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("expected day page to contain %q", fragment)
		}
	}
}

func TestDayDetailPageServesTableFragmentForHTMX(t *testing.T) {
	_, sm := configureTestDeps(t)
	seedDayGraph(t, "2026-03-19")

	req := httptest.NewRequest(http.MethodGet, "/app/days/1", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	serveWithSession(sm, DayDetailPage, rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatal("expected a bare fragment for HTMX, not a full page")
	}
	if !strings.Contains(body, `id="day-table"`) {
		t.Fatal("expected the day table fragment")
	}
}

func TestDayDetailPageMissingDay(t *testing.T) {
	_, sm := configureTestDeps(t)

	rr := httptest.NewRecorder()
	serveWithSession(sm, DayDetailPage, rr, httptest.NewRequest(http.MethodGet, "/app/days/42", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
