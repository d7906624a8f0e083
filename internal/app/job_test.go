package app_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"jobstreet_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJob(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.createUser(t, "recruiter@example.com")
	company := ts.createCompany(t, "Acme")

	deadline := time.Now().Add(14 * 24 * time.Hour).Format(time.RFC3339)
	rec, body := ts.request(t, "POST", "/api/v1/jobs", token, map[string]interface{}{
		"company_id":      company.ID,
		"title":           "Backend Engineer",
		"description":     "Build APIs",
		"employment_type": "full-time",
		"salary_min":      50000000,
		"salary_max":      80000000,
		"tech_stack":      []string{"Go", "PostgreSQL"},
		"deadline":        deadline,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %v", body)

	job := dataField(t, body)["job"].(map[string]interface{})
	assert.Equal(t, "Backend Engineer", job["title"])
	assert.Equal(t, "active", job["status"])
}

func TestCreateJob_PastDeadline(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.createUser(t, "recruiter@example.com")
	company := ts.createCompany(t, "Acme")

	deadline := time.Now().Add(-24 * time.Hour).Format(time.RFC3339)
	rec, body := ts.request(t, "POST", "/api/v1/jobs", token, map[string]interface{}{
		"company_id": company.ID,
		"title":      "Backend Engineer",
		"deadline":   deadline,
	})
	assertErrorCode(t, rec, body, http.StatusBadRequest, "INVALID_DEADLINE")
}

func TestCreateJob_UnknownCompany(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.createUser(t, "recruiter@example.com")

	rec, body := ts.request(t, "POST", "/api/v1/jobs", token, map[string]interface{}{
		"company_id": 9999,
		"title":      "Backend Engineer",
	})
	assertErrorCode(t, rec, body, http.StatusNotFound, "COMPANY_NOT_FOUND")
}

func TestListJobs_PaginationEnvelope(t *testing.T) {
	ts := newTestServer(t)
	company := ts.createCompany(t, "Acme")
	for i := 0; i < 25; i++ {
		ts.createJob(t, company.ID, fmt.Sprintf("Job %02d", i))
	}

	rec, body := ts.request(t, "GET", "/api/v1/jobs?page=2&limit=10", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)

	jobs := dataField(t, body)["jobs"].([]interface{})
	assert.Len(t, jobs, 10)

	pagination := body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 2, pagination["current_page"])
	assert.EqualValues(t, 3, pagination["total_pages"])
	assert.EqualValues(t, 25, pagination["total_items"])
}

func TestListJobs_Filters(t *testing.T) {
	ts := newTestServer(t)
	company := ts.createCompany(t, "Acme")

	match := ts.createJob(t, company.ID, "Senior Go Developer")
	require.NoError(t, ts.db.Model(match).Updates(map[string]interface{}{
		"location":   "Busan",
		"salary_min": 60000000,
	}).Error)

	other := ts.createJob(t, company.ID, "Frontend Developer")
	require.NoError(t, ts.db.Model(other).Update("location", "Seoul").Error)

	closed := ts.createJob(t, company.ID, "Go Platform Engineer")
	require.NoError(t, ts.db.Model(closed).Update("status", models.JobStatusClosed).Error)

	rec, body := ts.request(t, "GET", "/api/v1/jobs?search=Go&location=Busan", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)

	jobs := dataField(t, body)["jobs"].([]interface{})
	require.Len(t, jobs, 1)
	assert.Equal(t, "Senior Go Developer", jobs[0].(map[string]interface{})["title"])
}

func TestListJobs_ClosedExcluded(t *testing.T) {
	ts := newTestServer(t)
	company := ts.createCompany(t, "Acme")
	job := ts.createJob(t, company.ID, "Soon Closed")
	require.NoError(t, ts.db.Model(job).Update("status", models.JobStatusClosed).Error)

	rec, body := ts.request(t, "GET", "/api/v1/jobs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	jobs := dataField(t, body)["jobs"].([]interface{})
	assert.Empty(t, jobs)
}

func TestListJobs_InvalidSortFallsBack(t *testing.T) {
	ts := newTestServer(t)
	company := ts.createCompany(t, "Acme")
	ts.createJob(t, company.ID, "A")
	ts.createJob(t, company.ID, "B")

	rec, body := ts.request(t, "GET", "/api/v1/jobs?sortBy=password;drop", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)
	jobs := dataField(t, body)["jobs"].([]interface{})
	assert.Len(t, jobs, 2)
}

func TestGetJob_IncrementsViews(t *testing.T) {
	ts := newTestServer(t)
	company := ts.createCompany(t, "Acme")
	job := ts.createJob(t, company.ID, "Viewed Job")

	const n = 5
	for i := 0; i < n; i++ {
		rec, _ := ts.request(t, "GET", fmt.Sprintf("/api/v1/jobs/%d", job.ID), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	var stored models.Job
	require.NoError(t, ts.db.First(&stored, job.ID).Error)
	assert.Equal(t, n, stored.Views)
}

func TestGetJob_NotFound(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.request(t, "GET", "/api/v1/jobs/424242", "", nil)
	assertErrorCode(t, rec, body, http.StatusNotFound, "JOB_NOT_FOUND")
}

func TestGetJob_RelatedJobs(t *testing.T) {
	ts := newTestServer(t)
	acme := ts.createCompany(t, "Acme")
	globex := ts.createCompany(t, "Globex")

	job := ts.createJob(t, acme.ID, "Main Job")
	sameCompany := ts.createJob(t, acme.ID, "Same Company Job")

	sameLevel := ts.createJob(t, globex.ID, "Same Level Job")

	unrelated := ts.createJob(t, globex.ID, "Unrelated Job")
	require.NoError(t, ts.db.Model(unrelated).Update("experience_level", "senior").Error)

	rec, body := ts.request(t, "GET", fmt.Sprintf("/api/v1/jobs/%d", job.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)

	related := dataField(t, body)["related_jobs"].([]interface{})
	ids := make(map[float64]bool)
	for _, r := range related {
		ids[r.(map[string]interface{})["id"].(float64)] = true
	}
	assert.True(t, ids[float64(sameCompany.ID)])
	assert.True(t, ids[float64(sameLevel.ID)])
	assert.False(t, ids[float64(job.ID)], "job must not relate to itself")
	assert.False(t, ids[float64(unrelated.ID)])
	assert.LessOrEqual(t, len(related), 5)
}

func TestDeleteJob_Cascades(t *testing.T) {
	ts := newTestServer(t)
	user, token := ts.createUser(t, "owner@example.com")
	company := ts.createCompany(t, "Acme")
	job := ts.createJob(t, company.ID, "Doomed Job")

	require.NoError(t, ts.db.Create(&models.Application{
		UserID: user.ID, JobID: job.ID, AppliedAt: time.Now(),
		Status: models.ApplicationStatusPending,
	}).Error)
	require.NoError(t, ts.db.Create(&models.Bookmark{UserID: user.ID, JobID: job.ID}).Error)

	rec, body := ts.request(t, "DELETE", fmt.Sprintf("/api/v1/jobs/%d", job.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)

	var applications, bookmarks int64
	ts.db.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&applications)
	ts.db.Model(&models.Bookmark{}).Where("job_id = ?", job.ID).Count(&bookmarks)
	assert.Zero(t, applications)
	assert.Zero(t, bookmarks)
}

func TestJobStats_Refresh(t *testing.T) {
	ts := newTestServer(t)
	user, _ := ts.createUser(t, "viewer@example.com")
	company := ts.createCompany(t, "Acme")
	job := ts.createJob(t, company.ID, "Counted Job")

	require.NoError(t, ts.db.Model(job).Update("views", 7).Error)
	require.NoError(t, ts.db.Create(&models.Application{
		UserID: user.ID, JobID: job.ID, AppliedAt: time.Now(),
		Status: models.ApplicationStatusPending,
	}).Error)
	require.NoError(t, ts.db.Create(&models.Bookmark{UserID: user.ID, JobID: job.ID}).Error)

	rec, body := ts.request(t, "GET", fmt.Sprintf("/api/v1/jobs/%d/stats", job.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)

	stats := dataField(t, body)["stats"].(map[string]interface{})
	assert.EqualValues(t, 7, stats["views"])
	assert.EqualValues(t, 1, stats["applications"])
	assert.EqualValues(t, 1, stats["bookmarks"])
}

func TestUpdateJob(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.createUser(t, "owner@example.com")
	company := ts.createCompany(t, "Acme")
	job := ts.createJob(t, company.ID, "Old Title")

	rec, body := ts.request(t, "PUT", fmt.Sprintf("/api/v1/jobs/%d", job.ID), token, map[string]interface{}{
		"title":  "New Title",
		"status": "closed",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)

	updated := dataField(t, body)["job"].(map[string]interface{})
	assert.Equal(t, "New Title", updated["title"])
	assert.Equal(t, "closed", updated["status"])
	// Untouched fields survive the partial update.
	assert.Equal(t, "Seoul", updated["location"])
}
