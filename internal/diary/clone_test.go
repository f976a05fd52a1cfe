package diary

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"foodlog/models"
)

type cloneFixture struct {
	source  models.Day
	target  models.Day
	oatmeal models.Product
	title   models.MealTitle
	pill    models.Pill
}

func seedCloneFixture(t *testing.T, db *gorm.DB) cloneFixture {
	t.Helper()

	fx := cloneFixture{
		oatmeal: models.Product{Title: "Oatmeal", Energy: 389, Proteins: 16.9, Fats: 6.9, Carbs: 66.3},
		title:   models.MealTitle{Title: "Breakfast"},
		pill:    models.Pill{Title: "VitaminD"},
	}
	mustCreate(t, db, &fx.oatmeal)
	mustCreate(t, db, &fx.title)
	mustCreate(t, db, &fx.pill)

	fx.source = models.Day{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	fx.target = models.Day{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)}
	mustCreate(t, db, &fx.source)
	mustCreate(t, db, &fx.target)

	meal := models.Meal{DayID: fx.source.ID, MealTitleID: fx.title.ID, Time: clock("08:00")}
	mustCreate(t, db, &meal)
	mustCreate(t, db, &models.Dish{MealID: meal.ID, ProductID: fx.oatmeal.ID, Weight: 50, Note: "with berries"})
	mustCreate(t, db, &models.TakingPill{DayID: fx.source.ID, PillID: fx.pill.ID, Time: clock("08:30"), IsTaken: true})
	mustCreate(t, db, &models.Note{DayID: fx.source.ID, Body: "slept badly"})

	return fx
}

func TestCloneDay(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	fx := seedCloneFixture(t, db)

	if err := CloneDay(ctx, db, fx.source.ID, fx.target.ID); err != nil {
		t.Fatalf("CloneDay failed: %v", err)
	}

	var target models.Day
	if err := db.Preload("Meals.Dishes").Preload("TakingPills").Preload("Notes").First(&target, fx.target.ID).Error; err != nil {
		t.Fatalf("reload target: %v", err)
	}

	if len(target.Meals) != 1 {
		t.Fatalf("expected 1 meal on target, got %d", len(target.Meals))
	}
	meal := target.Meals[0]
	if meal.MealTitleID != fx.title.ID {
		t.Fatalf("meal title reference not copied, got %d", meal.MealTitleID)
	}
	if meal.Time == nil || *meal.Time != "08:00" {
		t.Fatalf("meal time not copied, got %v", meal.Time)
	}

	if len(meal.Dishes) != 1 {
		t.Fatalf("expected 1 dish on copied meal, got %d", len(meal.Dishes))
	}
	dish := meal.Dishes[0]
	if dish.ProductID != fx.oatmeal.ID || dish.Weight != 50 || dish.Note != "with berries" {
		t.Fatalf("dish not copied faithfully: %+v", dish)
	}

	if len(target.TakingPills) != 1 {
		t.Fatalf("expected 1 pill taking on target, got %d", len(target.TakingPills))
	}
	taking := target.TakingPills[0]
	if taking.PillID != fx.pill.ID {
		t.Fatalf("pill reference not copied, got %d", taking.PillID)
	}
	if taking.IsTaken {
		t.Fatal("copied pill taking must start with IsTaken=false")
	}

	if len(target.Notes) != 0 {
		t.Fatalf("notes must not be copied, got %d", len(target.Notes))
	}
}

func TestCloneDayLeavesSourceUntouched(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	fx := seedCloneFixture(t, db)

	if err := CloneDay(ctx, db, fx.source.ID, fx.target.ID); err != nil {
		t.Fatalf("CloneDay failed: %v", err)
	}

	var source models.Day
	if err := db.Preload("Meals.Dishes").Preload("TakingPills").Preload("Notes").First(&source, fx.source.ID).Error; err != nil {
		t.Fatalf("reload source: %v", err)
	}
	if len(source.Meals) != 1 || len(source.TakingPills) != 1 || len(source.Notes) != 1 {
		t.Fatalf("source day changed by clone: %d meals, %d takings, %d notes",
			len(source.Meals), len(source.TakingPills), len(source.Notes))
	}
	if !source.TakingPills[0].IsTaken {
		t.Fatal("source pill taking lost its IsTaken flag")
	}
}

func TestCloneDayTwiceProducesIndependentCopies(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	fx := seedCloneFixture(t, db)

	if err := CloneDay(ctx, db, fx.source.ID, fx.target.ID); err != nil {
		t.Fatalf("first clone: %v", err)
	}
	if err := CloneDay(ctx, db, fx.source.ID, fx.target.ID); err != nil {
		t.Fatalf("second clone: %v", err)
	}

	var meals int64
	if err := db.Model(&models.Meal{}).Where("day_id = ?", fx.target.ID).Count(&meals).Error; err != nil {
		t.Fatalf("count meals: %v", err)
	}
	if meals != 2 {
		t.Fatalf("expected 2 meals after cloning twice, got %d", meals)
	}
}

func TestCloneDayPreservesMealOrder(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	fx := seedCloneFixture(t, db)

	lunch := models.MealTitle{Title: "Lunch"}
	snack := models.MealTitle{Title: "Snack"}
	mustCreate(t, db, &lunch)
	mustCreate(t, db, &snack)

	// A meal without a time sorts after every timed meal.
	mustCreate(t, db, &models.Meal{DayID: fx.source.ID, MealTitleID: snack.ID})
	mustCreate(t, db, &models.Meal{DayID: fx.source.ID, MealTitleID: lunch.ID, Time: clock("13:00")})

	if err := CloneDay(ctx, db, fx.source.ID, fx.target.ID); err != nil {
		t.Fatalf("CloneDay failed: %v", err)
	}

	var copied []models.Meal
	if err := db.Where("day_id = ?", fx.target.ID).Order("id asc").Find(&copied).Error; err != nil {
		t.Fatalf("load copied meals: %v", err)
	}
	if len(copied) != 3 {
		t.Fatalf("expected 3 copied meals, got %d", len(copied))
	}
	wantTitles := []uint{fx.title.ID, lunch.ID, snack.ID}
	for i, meal := range copied {
		if meal.MealTitleID != wantTitles[i] {
			t.Fatalf("copied meal %d has title %d, want %d", i, meal.MealTitleID, wantTitles[i])
		}
	}
}

func TestCloneDayRejectsSelfClone(t *testing.T) {
	db := testDB(t)
	fx := seedCloneFixture(t, db)

	if err := CloneDay(context.Background(), db, fx.source.ID, fx.source.ID); err == nil {
		t.Fatal("cloning a day onto itself should fail")
	}
}

func TestCloneDayMissingSourceRollsBack(t *testing.T) {
	db := testDB(t)
	fx := seedCloneFixture(t, db)

	if err := CloneDay(context.Background(), db, 9999, fx.target.ID); err == nil {
		t.Fatal("cloning from a missing day should fail")
	}

	var meals int64
	if err := db.Model(&models.Meal{}).Where("day_id = ?", fx.target.ID).Count(&meals).Error; err != nil {
		t.Fatalf("count meals: %v", err)
	}
	if meals != 0 {
		t.Fatalf("failed clone left %d meals behind", meals)
	}
}
