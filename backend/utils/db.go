package utils

import (
	"fmt"

	"confidencecompass/backend/config"
	"confidencecompass/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// MigrateDB creates or updates the schema for every model.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Child{},
		&models.Pillar{},
		&models.Activity{},
		&models.Challenge{},
		&models.Progress{},
		&models.ActivityCompletion{},
		&models.ChallengeCompletion{},
		&models.Achievement{},
		&models.MonthlyAssessment{},
		&models.DailyHabit{},
		&models.Notification{},
	)
}
