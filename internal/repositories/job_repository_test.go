package repositories_test

import (
	"testing"

	"jobstreet_backend/internal/models"
	"jobstreet_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobList_TechStackOverlap(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewJobRepository(db)
	company := seedCompany(t, db)

	seedJob(t, db, company.ID, "Go Job", func(j *models.Job) {
		j.TechStack = techStack(t, "Go", "PostgreSQL")
	})
	seedJob(t, db, company.ID, "JS Job", func(j *models.Job) {
		j.TechStack = techStack(t, "TypeScript", "React")
	})

	jobs, total, err := repo.List(ctx(), repositories.JobFilter{
		TechStack: []string{"Go", "Rust"},
		Page:      1,
		Limit:     20,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Go Job", jobs[0].Title)
}

func TestJobList_SalaryRange(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewJobRepository(db)
	company := seedCompany(t, db)

	seedJob(t, db, company.ID, "Low", func(j *models.Job) {
		j.SalaryMin = 30000000
		j.SalaryMax = 40000000
	})
	seedJob(t, db, company.ID, "High", func(j *models.Job) {
		j.SalaryMin = 60000000
		j.SalaryMax = 90000000
	})

	min := 50000000
	jobs, _, err := repo.List(ctx(), repositories.JobFilter{
		SalaryMin: &min,
		Page:      1,
		Limit:     20,
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "High", jobs[0].Title)
}

func TestJobList_SortAllowList(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewJobRepository(db)
	company := seedCompany(t, db)

	seedJob(t, db, company.ID, "Alpha", func(j *models.Job) { j.Views = 5 })
	seedJob(t, db, company.ID, "Beta", func(j *models.Job) { j.Views = 50 })

	jobs, _, err := repo.List(ctx(), repositories.JobFilter{
		SortBy: "views", SortOrder: "asc",
		Page: 1, Limit: 20,
	})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Alpha", jobs[0].Title)

	// Unknown column falls back rather than erroring.
	_, _, err = repo.List(ctx(), repositories.JobFilter{
		SortBy: "1;DROP TABLE jobs",
		Page:   1, Limit: 20,
	})
	require.NoError(t, err)
}

func TestIncrementViews(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewJobRepository(db)
	company := seedCompany(t, db)
	job := seedJob(t, db, company.ID, "Counted", nil)

	for i := 0; i < 10; i++ {
		require.NoError(t, repo.IncrementViews(ctx(), job.ID))
	}

	var stored models.Job
	require.NoError(t, db.First(&stored, job.ID).Error)
	assert.Equal(t, 10, stored.Views)
}

func TestJobDelete_RemovesDependents(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewJobRepository(db)
	company := seedCompany(t, db)
	user := seedUser(t, db, "dep@example.com")
	job := seedJob(t, db, company.ID, "Doomed", nil)

	require.NoError(t, db.Create(&models.Bookmark{UserID: user.ID, JobID: job.ID}).Error)
	require.NoError(t, db.Create(&models.JobStat{JobID: job.ID}).Error)
	require.NoError(t, db.Create(&models.Benefit{JobID: job.ID, Name: "Lunch"}).Error)

	require.NoError(t, repo.Delete(ctx(), job.ID))

	for _, dependent := range []interface{}{&models.Bookmark{}, &models.JobStat{}, &models.Benefit{}} {
		var count int64
		db.Model(dependent).Where("job_id = ?", job.ID).Count(&count)
		assert.Zero(t, count)
	}

	_, err := repo.FindByID(ctx(), job.ID)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
}

func TestJobDelete_Missing(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewJobRepository(db)

	err := repo.Delete(ctx(), 12345)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
}
