package diary

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"foodlog/models"
)

// SaveDailyIntake persists an intake profile while keeping the default-flag
// invariant: at most one profile is the default, and once any profile exists
// at least one is. The enforcement is self-healing and never rejects a save.
//
// It runs in a single transaction with the write it guards.
func SaveDailyIntake(ctx context.Context, db *gorm.DB, intake *models.DailyIntake) error {
	if intake == nil {
		return fmt.Errorf("daily intake must not be nil")
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if intake.Default {
			// Clear every other flag unconditionally, even if history left
			// more than one set.
			if err := tx.Model(&models.DailyIntake{}).
				Where("is_default = ?", true).
				Update("is_default", false).Error; err != nil {
				return fmt.Errorf("clear default flags: %w", err)
			}
		} else {
			var others int64
			if err := tx.Model(&models.DailyIntake{}).
				Where("is_default = ? AND id <> ?", true, intake.ID).
				Count(&others).Error; err != nil {
				return fmt.Errorf("count default profiles: %w", err)
			}
			if others == 0 {
				intake.Default = true
			}
		}

		if err := tx.Save(intake).Error; err != nil {
			return fmt.Errorf("save daily intake: %w", err)
		}
		return nil
	})
}

// DefaultDailyIntake returns the current default profile, or nil when no
// profile exists yet.
func DefaultDailyIntake(ctx context.Context, db *gorm.DB) (*models.DailyIntake, error) {
	var intake models.DailyIntake
	err := db.WithContext(ctx).Where("is_default = ?", true).First(&intake).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("load default daily intake: %w", err)
	}
	return &intake, nil
}
