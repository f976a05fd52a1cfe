package diary

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodlog/models"
)

func TestDeleteProductRejectedWhileReferenced(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	fx := seedCloneFixture(t, db)

	err := DeleteProduct(ctx, db, fx.oatmeal.ID)
	if !errors.Is(err, ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}

	// Product and dish must be left unchanged.
	var product models.Product
	if err := db.First(&product, fx.oatmeal.ID).Error; err != nil {
		t.Fatalf("product disappeared: %v", err)
	}
	var dishes int64
	if err := db.Model(&models.Dish{}).Where("product_id = ?", fx.oatmeal.ID).Count(&dishes).Error; err != nil {
		t.Fatalf("count dishes: %v", err)
	}
	if dishes != 1 {
		t.Fatalf("expected dish untouched, got %d", dishes)
	}
}

func TestDeleteProductSucceedsWhenUnreferenced(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	product := models.Product{Title: "Quark", Energy: 68, Proteins: 12, Fats: 0.2, Carbs: 3.5}
	mustCreate(t, db, &product)

	if err := DeleteProduct(ctx, db, product.ID); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Count(&count).Error; err != nil {
		t.Fatalf("count products: %v", err)
	}
	if count != 0 {
		t.Fatal("product should be gone")
	}
}

func TestDeleteMealTitleRejectedWhileReferenced(t *testing.T) {
	db := testDB(t)
	fx := seedCloneFixture(t, db)

	if err := DeleteMealTitle(context.Background(), db, fx.title.ID); !errors.Is(err, ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}
}

func TestDeletePillRejectedWhileReferenced(t *testing.T) {
	db := testDB(t)
	fx := seedCloneFixture(t, db)

	if err := DeletePill(context.Background(), db, fx.pill.ID); !errors.Is(err, ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}
}

func TestDeleteMealRejectedWhileOwningDishes(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	fx := seedCloneFixture(t, db)

	var meal models.Meal
	if err := db.Where("day_id = ?", fx.source.ID).First(&meal).Error; err != nil {
		t.Fatalf("load meal: %v", err)
	}

	if err := DeleteMeal(ctx, db, meal.ID); !errors.Is(err, ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}

	// After removing the dish the meal can go.
	if err := db.Where("meal_id = ?", meal.ID).Delete(&models.Dish{}).Error; err != nil {
		t.Fatalf("delete dish: %v", err)
	}
	if err := DeleteMeal(ctx, db, meal.ID); err != nil {
		t.Fatalf("DeleteMeal after clearing dishes: %v", err)
	}
}

func TestDeleteDayRejectedWhileOwningChildren(t *testing.T) {
	db := testDB(t)
	fx := seedCloneFixture(t, db)

	if err := DeleteDay(context.Background(), db, fx.source.ID); !errors.Is(err, ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}
}

func TestDeleteDailyIntakeDetachesDays(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	intake := models.DailyIntake{Title: "Cut", Default: true, Energy: 2000, Proteins: 120, Fats: 70, Carbs: 250}
	mustCreate(t, db, &intake)

	day := models.Day{Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), DailyIntakeID: &intake.ID}
	mustCreate(t, db, &day)

	if err := DeleteDailyIntake(ctx, db, intake.ID); err != nil {
		t.Fatalf("DeleteDailyIntake failed: %v", err)
	}

	var reloaded models.Day
	if err := db.First(&reloaded, day.ID).Error; err != nil {
		t.Fatalf("reload day: %v", err)
	}
	if reloaded.DailyIntakeID != nil {
		t.Fatalf("day still references deleted intake: %v", *reloaded.DailyIntakeID)
	}
}

func TestDeleteMissingRecord(t *testing.T) {
	db := testDB(t)

	if err := DeleteProduct(context.Background(), db, 4242); err == nil {
		t.Fatal("deleting a missing product should fail")
	}
}
