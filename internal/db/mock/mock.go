// Package mock provides a seeded in-memory database for local development
// and UI work without a PostgreSQL instance.
package mock

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"foodlog/internal/diary"
	applog "foodlog/internal/log"
	"foodlog/models"
)

// New returns an in-memory sqlite database seeded with a representative week
// of diary data.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:foodlog-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

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
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	password, err := bcrypt.GenerateFromPassword([]byte("pantry"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         "Dana Keeper",
		Email:        "dana@foodlog.local",
		PasswordHash: string(password),
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}

	lactoseFree := true
	hasLactose := false

	oatmeal := models.Product{Title: "Oatmeal", Energy: 389, Proteins: 16.9, Fats: 6.9, Carbs: 66.3, LactoseFree: &lactoseFree}
	milk := models.Product{Title: "Whole Milk", Energy: 64, Proteins: 3.3, Fats: 3.6, Carbs: 4.7, LactoseFree: &hasLactose}
	chicken := models.Product{Title: "Chicken Breast", Energy: 165, Proteins: 31, Fats: 3.6, Carbs: 0}
	rice := models.Product{Title: "Basmati Rice", Energy: 349, Proteins: 8.1, Fats: 0.6, Carbs: 77.1}

	for _, product := range []*models.Product{&oatmeal, &milk, &chicken, &rice} {
		if err := db.WithContext(ctx).Create(product).Error; err != nil {
			return err
		}
	}

	intake := &models.DailyIntake{
		Title:    "Maintenance",
		Energy:   2200,
		Proteins: 130,
		Fats:     75,
		Carbs:    250,
	}
	if err := diary.SaveDailyIntake(ctx, db, intake); err != nil {
		return err
	}

	breakfast := models.MealTitle{Title: "Breakfast"}
	lunch := models.MealTitle{Title: "Lunch"}
	dinner := models.MealTitle{Title: "Dinner"}
	for _, title := range []*models.MealTitle{&breakfast, &lunch, &dinner} {
		if err := db.WithContext(ctx).Create(title).Error; err != nil {
			return err
		}
	}

	vitaminD := models.Pill{Title: "Vitamin D", Note: "2000 IU"}
	magnesium := models.Pill{Title: "Magnesium"}
	for _, pill := range []*models.Pill{&vitaminD, &magnesium} {
		if err := db.WithContext(ctx).Create(pill).Error; err != nil {
			return err
		}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	day := models.Day{Date: today, DailyIntakeID: &intake.ID}
	if err := db.WithContext(ctx).Create(&day).Error; err != nil {
		return err
	}

	eight := "08:00"
	half := "13:30"
	morning := models.Meal{DayID: day.ID, MealTitleID: breakfast.ID, Time: &eight}
	midday := models.Meal{DayID: day.ID, MealTitleID: lunch.ID, Time: &half}
	for _, meal := range []*models.Meal{&morning, &midday} {
		if err := db.WithContext(ctx).Create(meal).Error; err != nil {
			return err
		}
	}

	dishes := []models.Dish{
		{MealID: morning.ID, ProductID: oatmeal.ID, Weight: 60},
		{MealID: morning.ID, ProductID: milk.ID, Weight: 200},
		{MealID: midday.ID, ProductID: chicken.ID, Weight: 150},
		{MealID: midday.ID, ProductID: rice.ID, Weight: 80, Note: "dry weight"},
	}
	for _, dish := range dishes {
		dishCopy := dish
		if err := db.WithContext(ctx).Create(&dishCopy).Error; err != nil {
			return err
		}
	}

	nine := "09:00"
	if err := db.WithContext(ctx).Create(&models.TakingPill{
		DayID:  day.ID,
		PillID: vitaminD.ID,
		Time:   &nine,
	}).Error; err != nil {
		return err
	}

	if err := db.WithContext(ctx).Create(&models.Note{
		DayID: day.ID,
		Body:  "Slept well, light training day.",
	}).Error; err != nil {
		return err
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
