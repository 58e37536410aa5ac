package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"talent-match/internal/logger"
	"talent-match/internal/models"
)

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	logLevel := gormlogger.Silent
	if cfg.Server.Env == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info().Msg("✅ Database connected successfully")

	// Auto migrate
	if err := db.AutoMigrate(
		&models.Recruiter{},
		&models.Job{},
		&models.Candidate{},
		&models.CVDocument{},
		&models.Skill{},
		&models.Ranking{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedDefaultRecruiter(db); err != nil {
		return nil, err
	}

	logger.Info().Msg("✅ Database migration completed")

	return db, nil
}

// seedDefaultRecruiter makes sure at least one recruiter exists so jobs
// created without an explicit recruiter have an owner.
func seedDefaultRecruiter(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Recruiter{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count recruiters: %w", err)
	}
	if count > 0 {
		return nil
	}

	recruiter := models.Recruiter{
		Name:  "Default Recruiter",
		Email: "recruiter@talent-match.local",
	}
	if err := db.Create(&recruiter).Error; err != nil {
		return fmt.Errorf("failed to seed default recruiter: %w", err)
	}
	return nil
}
