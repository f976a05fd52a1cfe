package diary

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	applog "foodlog/internal/log"
	"foodlog/models"
)

// CloneDay copies the meal/dish tree and the pill schedule of the source day
// onto the target day. The target must already exist; its date and intake
// reference are left untouched. Copied pill takings always start with
// IsTaken=false, and notes are never copied.
//
// The whole copy runs in one transaction: either every row lands or none do.
// Cloning twice from the same source produces two independent copies.
func CloneDay(ctx context.Context, db *gorm.DB, sourceID, targetID uint) error {
	if sourceID == targetID {
		return fmt.Errorf("cannot clone day %d onto itself", sourceID)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var source models.Day
		if err := tx.Preload("Meals.Dishes").Preload("TakingPills").First(&source, sourceID).Error; err != nil {
			return fmt.Errorf("load source day %d: %w", sourceID, err)
		}

		var target models.Day
		if err := tx.First(&target, targetID).Error; err != nil {
			return fmt.Errorf("load target day %d: %w", targetID, err)
		}

		meals := source.Meals
		sort.SliceStable(meals, func(i, j int) bool {
			return earlier(meals[i].Time, meals[i].ID, meals[j].Time, meals[j].ID)
		})

		for _, meal := range meals {
			applog.Debug(ctx, "cloning meal", "source_meal", meal.ID, "target_day", target.ID)
			copied := models.Meal{
				DayID:       target.ID,
				MealTitleID: meal.MealTitleID,
				Time:        meal.Time,
			}
			if err := tx.Create(&copied).Error; err != nil {
				return fmt.Errorf("copy meal %d: %w", meal.ID, err)
			}

			dishes := meal.Dishes
			sort.SliceStable(dishes, func(i, j int) bool {
				return dishes[i].ID < dishes[j].ID
			})
			for _, dish := range dishes {
				applog.Debug(ctx, "cloning dish", "source_dish", dish.ID, "target_meal", copied.ID)
				if err := tx.Create(&models.Dish{
					MealID:    copied.ID,
					ProductID: dish.ProductID,
					Weight:    dish.Weight,
					Note:      dish.Note,
				}).Error; err != nil {
					return fmt.Errorf("copy dish %d: %w", dish.ID, err)
				}
			}
		}

		takings := source.TakingPills
		sort.SliceStable(takings, func(i, j int) bool {
			return earlier(takings[i].Time, takings[i].ID, takings[j].Time, takings[j].ID)
		})
		for _, taking := range takings {
			applog.Debug(ctx, "cloning pill taking", "source_taking", taking.ID, "target_day", target.ID)
			if err := tx.Create(&models.TakingPill{
				DayID:  target.ID,
				PillID: taking.PillID,
				Time:   taking.Time,
				// A fresh day starts with nothing taken.
				IsTaken: false,
				Note:    taking.Note,
			}).Error; err != nil {
				return fmt.Errorf("copy pill taking %d: %w", taking.ID, err)
			}
		}

		return nil
	})
}
