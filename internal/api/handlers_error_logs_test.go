package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/models"
)

func TestErrorLogAcceptedWithoutSession(t *testing.T) {
	app, _ := newTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/api/error-logs", fiber.Map{
		"blockType":    "sync",
		"errorMessage": "failed to push queue",
		"errorDetails": fiber.Map{"attempt": 3},
	}, "")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("error log request failed: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("error log status = %d, want 201", response.StatusCode)
	}

	var entry models.ErrorLog
	decodeJSONBody(t, response, &entry)
	if entry.UserID != nil {
		t.Fatalf("anonymous report attributed to user %d", *entry.UserID)
	}
	if entry.ErrorDetails["attempt"] != float64(3) {
		t.Fatalf("details not preserved: %v", entry.ErrorDetails)
	}
}

func TestErrorLogAttributedWhenSessionPresent(t *testing.T) {
	app, _ := newTestApp(t)
	authCookie := registerTestAccount(t, app, "crash@example.com")

	request := jsonRequest(t, http.MethodPost, "/api/error-logs", fiber.Map{
		"blockType":    "ui",
		"errorMessage": "render failed",
	}, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("error log request failed: %v", err)
	}

	var entry models.ErrorLog
	decodeJSONBody(t, response, &entry)
	if entry.UserID == nil {
		t.Fatal("authenticated report lost its user attribution")
	}
}

func TestErrorLogRequiresMessageAndBlockType(t *testing.T) {
	app, _ := newTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/api/error-logs", fiber.Map{
		"blockType": "sync",
	}, "")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("error log request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("incomplete report status = %d, want 400", response.StatusCode)
	}
}
