package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"jobstreet_backend/internal/models"
	"jobstreet_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatRefresh(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewJobStatRepository(db)
	company := seedCompany(t, db)
	job := seedJob(t, db, company.ID, "Measured", func(j *models.Job) { j.Views = 12 })

	for i := 0; i < 3; i++ {
		user := seedUser(t, db, fmt.Sprintf("u%d@example.com", i))
		require.NoError(t, db.Create(&models.Application{
			UserID: user.ID, JobID: job.ID,
			Status: models.ApplicationStatusPending, AppliedAt: time.Now(),
		}).Error)
		if i < 2 {
			require.NoError(t, db.Create(&models.Bookmark{UserID: user.ID, JobID: job.ID}).Error)
		}
	}

	stat, err := repo.Refresh(ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, stat.Views)
	assert.Equal(t, 3, stat.Applications)
	assert.Equal(t, 2, stat.Bookmarks)

	// A second refresh updates the same row instead of inserting.
	stat2, err := repo.Refresh(ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, stat.ID, stat2.ID)
}

func TestJobStatRefresh_UnknownJob(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewJobStatRepository(db)

	_, err := repo.Refresh(ctx(), 999)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
}

func TestRefreshAllActive_SkipsClosed(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewJobStatRepository(db)
	company := seedCompany(t, db)

	seedJob(t, db, company.ID, "Active", nil)
	seedJob(t, db, company.ID, "Closed", func(j *models.Job) { j.Status = models.JobStatusClosed })

	refreshed, err := repo.RefreshAllActive(ctx())
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed)
}
