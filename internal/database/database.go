package database

import (
	"fmt"

	"jobstreet_backend/internal/config"
	"jobstreet_backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database selected by config (postgres by default,
// mysql when database.driver is "mysql"). TranslateError is on so
// duplicate-key violations surface as gorm.ErrDuplicatedKey across
// drivers.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres", "":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs the schema migration for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.JobStat{},
		&models.Benefit{},
		&models.Salary{},
		&models.Application{},
		&models.Bookmark{},
		&models.Interview{},
		&models.Skill{},
		&models.JobSkill{},
		&models.UserSkill{},
	)
}
