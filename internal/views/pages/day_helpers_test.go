package pages

import (
	"testing"

	"foodlog/internal/diary"
	"foodlog/models"
)

func TestBandClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell diary.Cell
		want string
	}{
		{"unclassified", diary.Cell{Value: 10}, ""},
		{"on target", diary.Cell{Value: 10, Band: diary.BandOnTarget, Classified: true}, "band-on-target"},
		{"far over", diary.Cell{Value: 10, Band: diary.BandFarOver, Classified: true}, "band-far-over"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := BandClass(tt.cell); got != tt.want {
				t.Fatalf("BandClass(%+v) = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	t.Parallel()

	if got := FormatClock(nil); got != "--:--" {
		t.Fatalf("FormatClock(nil) = %q", got)
	}
	value := "08:15"
	if got := FormatClock(&value); got != "08:15" {
		t.Fatalf("FormatClock = %q", got)
	}
}

func TestLactoseBadge(t *testing.T) {
	t.Parallel()

	yes := true
	no := false
	if got := LactoseBadge(nil); got != "unknown" {
		t.Fatalf("LactoseBadge(nil) = %q", got)
	}
	if got := LactoseBadge(&yes); got != "yes" {
		t.Fatalf("LactoseBadge(true) = %q", got)
	}
	if got := LactoseBadge(&no); got != "no" {
		t.Fatalf("LactoseBadge(false) = %q", got)
	}
}

func TestMealLabelFallsBack(t *testing.T) {
	t.Parallel()

	if got := MealLabel(models.Meal{}); got != "Meal" {
		t.Fatalf("MealLabel fallback = %q", got)
	}
	meal := models.Meal{MealTitle: &models.MealTitle{Title: "Breakfast"}}
	if got := MealLabel(meal); got != "Breakfast" {
		t.Fatalf("MealLabel = %q", got)
	}
}

func TestFormatMacro(t *testing.T) {
	t.Parallel()

	if got := FormatMacro(194.5); got != "194.50" {
		t.Fatalf("FormatMacro(194.5) = %q", got)
	}
	if got := FormatMacro(0); got != "0.00" {
		t.Fatalf("FormatMacro(0) = %q", got)
	}
}
