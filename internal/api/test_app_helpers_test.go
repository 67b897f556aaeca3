package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/db"
	"gorm.io/gorm"
)

const testUserPassword = "StrongPass1"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "inmotion-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, method string, target string, payload any, authCookie string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
	}
	request := httptest.NewRequest(method, target, &body)
	request.Header.Set("Content-Type", "application/json")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}
	return request
}

// registerTestAccount registers a fresh user through the public endpoint
// and returns the session cookie in "name=value" form.
func registerTestAccount(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/register", fiber.Map{
		"email":     email,
		"password":  testUserPassword,
		"firstName": "Test",
	}, "")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want %d", response.StatusCode, http.StatusCreated)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("register response did not set an auth cookie")
	return ""
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSONBody(t, response, &payload)
	return payload["error"]
}
