package repositories_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"jobstreet_backend/internal/database"
	"jobstreet_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedCompany(t *testing.T, db *gorm.DB) *models.Company {
	t.Helper()
	company := &models.Company{
		Name:               fmt.Sprintf("Company-%d", time.Now().UnixNano()),
		RegistrationNumber: fmt.Sprintf("reg-%d", time.Now().UnixNano()),
		Status:             models.CompanyStatusActive,
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    email,
		Password: "hash",
		Name:     "Seed User",
		Status:   models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedJob(t *testing.T, db *gorm.DB, companyID uint, title string, mutate func(*models.Job)) *models.Job {
	t.Helper()
	job := &models.Job{
		CompanyID:       companyID,
		Title:           title,
		Status:          models.JobStatusActive,
		ExperienceLevel: "mid",
	}
	if mutate != nil {
		mutate(job)
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func techStack(t *testing.T, techs ...string) datatypes.JSON {
	t.Helper()
	b, err := json.Marshal(techs)
	require.NoError(t, err)
	return datatypes.JSON(b)
}

func ctx() context.Context {
	return context.Background()
}
