package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inkwell-dev/inkwell/db"
	"github.com/inkwell-dev/inkwell/internal/auth"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/router"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest points the global connection at a fresh in-memory sqlite store
// named after the test, so tests never share state.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	db.DB = gdb
	require.NoError(t, db.DB.AutoMigrate(&models.User{}, &models.BlogPost{}, &models.Comment{}))
	require.NoError(t, auth.InitSecret())

	return router.NewRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" && cookie.Value != "" {
			return cookie
		}
	}

	t.Fatal("expected a session cookie in the response")
	return nil
}

func registerUser(t *testing.T, r *gin.Engine, name, email, password string) *http.Cookie {
	t.Helper()

	body := fmt.Sprintf(`{"name": %q, "email": %q, "password": %q}`, name, email, password)
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code, "register failed: %s", w.Body.String())

	return sessionCookie(t, w)
}

func createPost(t *testing.T, r *gin.Engine, cookie *http.Cookie, title string) uint {
	t.Helper()

	body := fmt.Sprintf(`{"title": %q, "subtitle": "sub", "img_url": "https://example.com/cover.png", "body": "<p>hello</p>"}`, title)
	w := doJSON(t, r, http.MethodPost, "/api/posts", body, cookie)
	require.Equal(t, http.StatusCreated, w.Code, "create post failed: %s", w.Body.String())

	resp := decodeBody(t, w)
	return uint(resp["id"].(float64))
}
