package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"jobstreet_backend/internal/app"
	"jobstreet_backend/internal/auth"
	"jobstreet_backend/internal/config"
	"jobstreet_backend/internal/database"
	"jobstreet_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{}
	config.AppConfig.Server.Env = "test"
	config.AppConfig.JWT.Secret = "test_secret_key_1234567890"
	config.AppConfig.JWT.TTL = 60
	config.AppConfig.Redis.TTL = 600

	// A named in-memory DB keeps all pooled connections on the same
	// database while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return &testServer{
		router: app.SetupRouter(config.AppConfig, db),
		db:     db,
	}
}

func (ts *testServer) request(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	var parsed map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed),
			"response is not valid JSON: %s", rec.Body.String())
	}
	return rec, parsed
}

// createUser inserts a user directly and returns a valid access token.
func (ts *testServer) createUser(t *testing.T, email string) (*models.User, string) {
	t.Helper()

	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	user := &models.User{
		Email:    email,
		Password: hashed,
		Name:     "Test User",
		Status:   models.UserStatusActive,
	}
	require.NoError(t, ts.db.Create(user).Error)

	token, err := auth.GenerateToken(user.ID, user.Email)
	require.NoError(t, err)
	return user, token
}

func (ts *testServer) createCompany(t *testing.T, name string) *models.Company {
	t.Helper()

	company := &models.Company{
		Name:               name,
		RegistrationNumber: fmt.Sprintf("reg-%s-%d", name, time.Now().UnixNano()),
		Location:           "Seoul",
		Status:             models.CompanyStatusActive,
	}
	require.NoError(t, ts.db.Create(company).Error)
	return company
}

func (ts *testServer) createJob(t *testing.T, companyID uint, title string) *models.Job {
	t.Helper()

	deadline := time.Now().Add(30 * 24 * time.Hour)
	job := &models.Job{
		CompanyID:       companyID,
		Title:           title,
		Description:     "Backend development",
		Location:        "Seoul",
		EmploymentType:  "full-time",
		ExperienceLevel: "mid",
		SalaryMin:       50000000,
		SalaryMax:       70000000,
		Deadline:        &deadline,
		Status:          models.JobStatusActive,
	}
	require.NoError(t, ts.db.Create(job).Error)
	return job
}

func dataField(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return data
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, body map[string]interface{}, status int, code string) {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %v", body)
	require.Equal(t, "error", body["status"])
	require.Equal(t, code, body["code"])
}
