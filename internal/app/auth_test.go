package app_test

import (
	"net/http"
	"testing"

	"jobstreet_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.request(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret123",
		"name":     "Alice",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %v", body)
	assert.Equal(t, "success", body["status"])

	user := dataField(t, body)["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "Alice", user["name"])
	assert.NotContains(t, user, "password")

	rec, body = ts.request(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)
	data := dataField(t, body)
	assert.NotEmpty(t, data["access_token"])
	loginUser := data["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", loginUser["email"])
}

func TestRegister_SingleCharacterName(t *testing.T) {
	ts := newTestServer(t)

	payload := map[string]interface{}{
		"email":    "a@b.com",
		"password": "secret1",
		"name":     "A",
	}

	rec, body := ts.request(t, "POST", "/api/v1/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %v", body)
	assert.Equal(t, "success", body["status"])
	user := dataField(t, body)["user"].(map[string]interface{})
	assert.Equal(t, "A", user["name"])

	rec, body = ts.request(t, "POST", "/api/v1/auth/register", "", payload)
	assertErrorCode(t, rec, body, http.StatusBadRequest, "EMAIL_EXISTS")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "taken@example.com")

	rec, body := ts.request(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "taken@example.com",
		"password": "secret123",
		"name":     "Second",
	})
	assertErrorCode(t, rec, body, http.StatusBadRequest, "EMAIL_EXISTS")
}

func TestRegister_WeakPassword(t *testing.T) {
	ts := newTestServer(t)

	// Digits only, no letters
	rec, body := ts.request(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "weak@example.com",
		"password": "12345678",
		"name":     "Weak",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", body["status"])
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "bob@example.com")

	rec, body := ts.request(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "bob@example.com",
		"password": "wrongpass1",
	})
	assertErrorCode(t, rec, body, http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

func TestLogin_UnknownEmail(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.request(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assertErrorCode(t, rec, body, http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

func TestLogin_InactiveAccount(t *testing.T) {
	ts := newTestServer(t)
	user, _ := ts.createUser(t, "inactive@example.com")
	require.NoError(t, ts.db.Model(user).Update("status", models.UserStatusSuspended).Error)

	rec, body := ts.request(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "inactive@example.com",
		"password": "secret123",
	})
	assertErrorCode(t, rec, body, http.StatusForbidden, "INACTIVE_ACCOUNT")
}

func TestProfile_RequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.request(t, "GET", "/api/v1/auth/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "error", body["status"])
}

func TestProfile_GetAndUpdate(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.createUser(t, "carol@example.com")

	rec, body := ts.request(t, "GET", "/api/v1/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)
	user := dataField(t, body)["user"].(map[string]interface{})
	assert.Equal(t, "carol@example.com", user["email"])

	rec, body = ts.request(t, "PUT", "/api/v1/auth/profile", token, map[string]interface{}{
		"name":   "Carol Updated",
		"resume": "10 years of Go",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)
	user = dataField(t, body)["user"].(map[string]interface{})
	assert.Equal(t, "Carol Updated", user["name"])
	assert.Equal(t, "10 years of Go", user["resume"])
	// Email stays immutable through this endpoint.
	assert.Equal(t, "carol@example.com", user["email"])
}
