package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/db"
	"github.com/inkwell-dev/inkwell/internal/models"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTest(t)

	registerUser(t, r, "Ada", "ada@example.com", "correct-horse")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", `{"name": "Imposter", "email": "ada@example.com", "password": "battery-staple"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists", decodeBody(t, w)["error"])

	var count int64
	require.NoError(t, db.DB.Model(&models.User{}).Where("email = ?", "ada@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", `{"name": "A", "email": "a@x.com", "password": "p-not-short"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	registered := decodeBody(t, w)["user"].(map[string]interface{})

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email": "a@x.com", "password": "p-not-short"}`)
	require.Equal(t, http.StatusOK, w.Code)
	loggedIn := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, registered["id"], loggedIn["id"])

	cookie := sessionCookie(t, w)
	w = doJSON(t, r, http.MethodGet, "/api/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, registered["id"], me["id"])
	assert.Equal(t, "a@x.com", me["email"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r := setupTest(t)

	registerUser(t, r, "Ada", "ada@example.com", "correct-horse")

	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email": "ada@example.com", "password": "wrong-password"}`)
	unknownEmail := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email": "nobody@example.com", "password": "whatever-pw"}`)

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, wrongPassword)["error"])
	assert.Equal(t, decodeBody(t, wrongPassword)["error"], decodeBody(t, unknownEmail)["error"])

	// No session is established on failure.
	for _, cookie := range wrongPassword.Result().Cookies() {
		assert.NotEqual(t, "token", cookie.Name)
	}
}

func TestRegisterFieldValidation(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", `{"name": "Ada", "email": "not-an-email", "password": "short"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	fields := decodeBody(t, w)["errors"].(map[string]interface{})
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")

	var count int64
	require.NoError(t, db.DB.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFirstRegisteredUserIsAdmin(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", `{"name": "First", "email": "first@example.com", "password": "first-pass"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.RoleAdmin, decodeBody(t, w)["user"].(map[string]interface{})["role"])

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", `{"name": "Second", "email": "second@example.com", "password": "second-pass"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.RoleAuthor, decodeBody(t, w)["user"].(map[string]interface{})["role"])
}

func TestPasswordStoredHashed(t *testing.T) {
	r := setupTest(t)

	registerUser(t, r, "Ada", "ada@example.com", "correct-horse")

	var user models.User
	require.NoError(t, db.DB.First(&user, "email = ?", "ada@example.com").Error)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "correct-horse")
}

func TestLogoutIsIdempotent(t *testing.T) {
	r := setupTest(t)

	cookie := registerUser(t, r, "Ada", "ada@example.com", "correct-horse")

	w := doJSON(t, r, http.MethodPost, "/api/auth/logout", "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			cleared = c.Value == "" && c.MaxAge < 0
		}
	}
	assert.True(t, cleared, "logout should expire the session cookie")

	// A second logout with no session is still fine.
	w = doJSON(t, r, http.MethodPost, "/api/auth/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMeRequiresSession(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
