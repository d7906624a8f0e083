package app_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCompany(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.createUser(t, "founder@example.com")

	rec, body := ts.request(t, "POST", "/api/v1/companies", token, map[string]interface{}{
		"name":                "Initech",
		"registration_number": "110-81-12345",
		"industry":            "Software",
		"size":                "medium",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %v", body)

	company := dataField(t, body)["company"].(map[string]interface{})
	assert.Equal(t, "Initech", company["name"])
	assert.Equal(t, "active", company["status"])
}

func TestCreateCompany_Duplicate(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.createUser(t, "founder@example.com")
	existing := ts.createCompany(t, "Initech")

	rec, body := ts.request(t, "POST", "/api/v1/companies", token, map[string]interface{}{
		"name":                existing.Name,
		"registration_number": "999-99-99999",
	})
	assertErrorCode(t, rec, body, http.StatusBadRequest, "COMPANY_EXISTS")
}

func TestListCompanies_Search(t *testing.T) {
	ts := newTestServer(t)
	ts.createCompany(t, "Initech Software")
	ts.createCompany(t, "Hooli")

	rec, body := ts.request(t, "GET", "/api/v1/companies?search=Initech", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)

	companies := dataField(t, body)["companies"].([]interface{})
	require.Len(t, companies, 1)
	assert.Equal(t, "Initech Software", companies[0].(map[string]interface{})["name"])
}

func TestGetCompany_WithJobs(t *testing.T) {
	ts := newTestServer(t)
	company := ts.createCompany(t, "Acme")
	ts.createJob(t, company.ID, "Open Role")

	rec, body := ts.request(t, "GET", fmt.Sprintf("/api/v1/companies/%d", company.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)

	got := dataField(t, body)["company"].(map[string]interface{})
	jobs := got["jobs"].([]interface{})
	assert.Len(t, jobs, 1)
}

func TestSkills_CreateAndAttach(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.createUser(t, "dev@example.com")
	company := ts.createCompany(t, "Acme")
	job := ts.createJob(t, company.ID, "Open Role")

	rec, body := ts.request(t, "POST", "/api/v1/skills", token, map[string]interface{}{
		"name":     "Go",
		"category": "language",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %v", body)
	skill := dataField(t, body)["skill"].(map[string]interface{})
	skillID := uint(skill["id"].(float64))

	// Duplicate name rejected.
	rec, body = ts.request(t, "POST", "/api/v1/skills", token, map[string]interface{}{
		"name": "Go",
	})
	assertErrorCode(t, rec, body, http.StatusBadRequest, "SKILL_EXISTS")

	rec, body = ts.request(t, "POST", fmt.Sprintf("/api/v1/jobs/%d/skills", job.ID), token, map[string]interface{}{
		"skill_id": skillID,
		"level":    "advanced",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %v", body)

	rec, body = ts.request(t, "GET", fmt.Sprintf("/api/v1/jobs/%d/skills", job.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)
	attached := dataField(t, body)["skills"].([]interface{})
	require.Len(t, attached, 1)
	assert.Equal(t, "advanced", attached[0].(map[string]interface{})["level"])
}

func TestUserSkills_UpsertAndDelete(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.createUser(t, "dev@example.com")

	rec, body := ts.request(t, "POST", "/api/v1/skills", token, map[string]interface{}{
		"name": "PostgreSQL",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	skillID := uint(dataField(t, body)["skill"].(map[string]interface{})["id"].(float64))

	rec, body = ts.request(t, "PUT", "/api/v1/users/me/skills", token, map[string]interface{}{
		"skill_id":            skillID,
		"level":               "beginner",
		"years_of_experience": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)

	// Upsert updates in place rather than duplicating.
	rec, body = ts.request(t, "PUT", "/api/v1/users/me/skills", token, map[string]interface{}{
		"skill_id":            skillID,
		"level":               "advanced",
		"years_of_experience": 3,
		"is_main_skill":       true,
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)

	rec, body = ts.request(t, "GET", "/api/v1/users/me/skills", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	skills := dataField(t, body)["skills"].([]interface{})
	require.Len(t, skills, 1)
	assert.Equal(t, "advanced", skills[0].(map[string]interface{})["level"])

	rec, _ = ts.request(t, "DELETE", fmt.Sprintf("/api/v1/users/me/skills/%d", skillID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = ts.request(t, "GET", "/api/v1/users/me/skills", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, dataField(t, body)["skills"])
}
