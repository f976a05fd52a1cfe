package diary

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"foodlog/models"
)

// ErrInUse is returned when a delete is rejected because other records still
// reference the target.
var ErrInUse = errors.New("record is still referenced")

// DeleteProduct removes a product unless a dish still references it.
func DeleteProduct(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := rejectWhenReferenced(tx, &models.Dish{}, "product_id", id, "product"); err != nil {
			return err
		}
		return deleteByID(tx, &models.Product{}, id, "product")
	})
}

// DeleteMealTitle removes a meal title unless a meal still references it.
func DeleteMealTitle(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := rejectWhenReferenced(tx, &models.Meal{}, "meal_title_id", id, "meal title"); err != nil {
			return err
		}
		return deleteByID(tx, &models.MealTitle{}, id, "meal title")
	})
}

// DeletePill removes a pill unless a pill taking still references it.
func DeletePill(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := rejectWhenReferenced(tx, &models.TakingPill{}, "pill_id", id, "pill"); err != nil {
			return err
		}
		return deleteByID(tx, &models.Pill{}, id, "pill")
	})
}

// DeleteMeal removes a meal unless it still owns dishes. Dishes must be
// deleted or reassigned first; nothing cascades.
func DeleteMeal(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := rejectWhenReferenced(tx, &models.Dish{}, "meal_id", id, "meal"); err != nil {
			return err
		}
		return deleteByID(tx, &models.Meal{}, id, "meal")
	})
}

// DeleteDay removes a day unless it still owns meals, pill takings or notes.
func DeleteDay(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []struct {
			model any
			label string
		}{
			{&models.Meal{}, "day"},
			{&models.TakingPill{}, "day"},
			{&models.Note{}, "day"},
		} {
			if err := rejectWhenReferenced(tx, child.model, "day_id", id, child.label); err != nil {
				return err
			}
		}
		return deleteByID(tx, &models.Day{}, id, "day")
	})
}

// DeleteDailyIntake removes an intake profile and nulls the reference on any
// day pointing at it, in the same transaction.
func DeleteDailyIntake(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Day{}).
			Where("daily_intake_id = ?", id).
			Update("daily_intake_id", nil).Error; err != nil {
			return fmt.Errorf("detach days from daily intake %d: %w", id, err)
		}
		return deleteByID(tx, &models.DailyIntake{}, id, "daily intake")
	})
}

func rejectWhenReferenced(tx *gorm.DB, model any, column string, id uint, label string) error {
	var count int64
	if err := tx.Model(model).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("count references to %s %d: %w", label, id, err)
	}
	if count > 0 {
		return fmt.Errorf("%s %d: %w", label, id, ErrInUse)
	}
	return nil
}

func deleteByID(tx *gorm.DB, model any, id uint, label string) error {
	result := tx.Delete(model, id)
	if result.Error != nil {
		return fmt.Errorf("delete %s %d: %w", label, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete %s %d: %w", label, id, gorm.ErrRecordNotFound)
	}
	return nil
}
