package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/models"
)

func TestWeeklyPlanCreateAndWeekStartQuery(t *testing.T) {
	app, _ := newTestApp(t)
	authCookie := registerTestAccount(t, app, "weekly@example.com")

	createRequest := jsonRequest(t, http.MethodPost, "/api/weekly-plans", fiber.Map{
		"weekStartDate": "2026-03-02",
		"priorities": []fiber.Map{
			{"title": "Draft proposal", "description": "first pass"},
		},
		"progress": 10,
	}, authCookie)
	createResponse, err := app.Test(createRequest, -1)
	if err != nil {
		t.Fatalf("create plan failed: %v", err)
	}
	if createResponse.StatusCode != http.StatusCreated {
		t.Fatalf("create plan status = %d, want 201", createResponse.StatusCode)
	}
	var plan models.WeeklyPlan
	decodeJSONBody(t, createResponse, &plan)

	otherWeekRequest := jsonRequest(t, http.MethodPost, "/api/weekly-plans", fiber.Map{
		"weekStartDate": "2026-03-09",
	}, authCookie)
	otherWeekResponse, err := app.Test(otherWeekRequest, -1)
	if err != nil {
		t.Fatalf("create other week plan failed: %v", err)
	}
	otherWeekResponse.Body.Close()

	listRequest := httptest.NewRequest(http.MethodGet, "/api/weekly-plans?weekStart=2026-03-02", nil)
	listRequest.Header.Set("Cookie", authCookie)
	listResponse, err := app.Test(listRequest, -1)
	if err != nil {
		t.Fatalf("list plans failed: %v", err)
	}
	var plans []models.WeeklyPlan
	decodeJSONBody(t, listResponse, &plans)
	if len(plans) != 1 || plans[0].ID != plan.ID {
		t.Fatalf("week-filtered plans = %+v, want only plan %d", plans, plan.ID)
	}
}

func TestWeeklyPlanPatchNullClearsQuestLink(t *testing.T) {
	app, _ := newTestApp(t)
	authCookie := registerTestAccount(t, app, "weekly-unlink@example.com")

	quest := createTestQuestViaAPI(t, app, authCookie, "Linked quest")
	createRequest := jsonRequest(t, http.MethodPost, "/api/weekly-plans", fiber.Map{
		"weekStartDate": "2026-03-02",
		"questId":       quest.ID,
	}, authCookie)
	createResponse, err := app.Test(createRequest, -1)
	if err != nil {
		t.Fatalf("create plan failed: %v", err)
	}
	var plan models.WeeklyPlan
	decodeJSONBody(t, createResponse, &plan)
	if plan.QuestID == nil {
		t.Fatal("plan created without its quest link")
	}

	// A JSON null for questId unlinks; an absent key must not.
	noopRequest := jsonRequest(t, http.MethodPatch, fmt.Sprintf("/api/weekly-plans/%d", plan.ID), fiber.Map{
		"progress": 20,
	}, authCookie)
	noopResponse, err := app.Test(noopRequest, -1)
	if err != nil {
		t.Fatalf("progress-only patch failed: %v", err)
	}
	var untouched models.WeeklyPlan
	decodeJSONBody(t, noopResponse, &untouched)
	if untouched.QuestID == nil {
		t.Fatal("absent questId key cleared the link")
	}

	unlinkRequest := jsonRequest(t, http.MethodPatch, fmt.Sprintf("/api/weekly-plans/%d", plan.ID), fiber.Map{
		"questId": nil,
	}, authCookie)
	unlinkResponse, err := app.Test(unlinkRequest, -1)
	if err != nil {
		t.Fatalf("unlink patch failed: %v", err)
	}
	if unlinkResponse.StatusCode != http.StatusOK {
		t.Fatalf("unlink patch status = %d, want 200", unlinkResponse.StatusCode)
	}
	var unlinked models.WeeklyPlan
	decodeJSONBody(t, unlinkResponse, &unlinked)
	if unlinked.QuestID != nil {
		t.Fatalf("quest link not cleared: %d", *unlinked.QuestID)
	}
}

func TestWeeklyPlanPatchReflectionAndProgress(t *testing.T) {
	app, _ := newTestApp(t)
	authCookie := registerTestAccount(t, app, "weekly-patch@example.com")

	createRequest := jsonRequest(t, http.MethodPost, "/api/weekly-plans", fiber.Map{
		"weekStartDate": "2026-03-02",
	}, authCookie)
	createResponse, err := app.Test(createRequest, -1)
	if err != nil {
		t.Fatalf("create plan failed: %v", err)
	}
	var plan models.WeeklyPlan
	decodeJSONBody(t, createResponse, &plan)

	patchRequest := jsonRequest(t, http.MethodPatch, fmt.Sprintf("/api/weekly-plans/%d", plan.ID), fiber.Map{
		"reflection": fiber.Map{"wentWell": "Shipped early", "toImprove": "Fewer meetings"},
		"progress":   70,
	}, authCookie)
	patchResponse, err := app.Test(patchRequest, -1)
	if err != nil {
		t.Fatalf("patch plan failed: %v", err)
	}
	if patchResponse.StatusCode != http.StatusOK {
		t.Fatalf("patch plan status = %d, want 200", patchResponse.StatusCode)
	}
	var updated models.WeeklyPlan
	decodeJSONBody(t, patchResponse, &updated)
	if updated.Reflection.WentWell != "Shipped early" || updated.Progress != 70 {
		t.Fatalf("patch not applied: %+v", updated)
	}

	missingPatch := jsonRequest(t, http.MethodPatch, "/api/weekly-plans/424242", fiber.Map{
		"progress": 10,
	}, authCookie)
	missingResponse, err := app.Test(missingPatch, -1)
	if err != nil {
		t.Fatalf("missing plan patch failed: %v", err)
	}
	missingResponse.Body.Close()
	if missingResponse.StatusCode != http.StatusNotFound {
		t.Fatalf("missing plan status = %d, want 404", missingResponse.StatusCode)
	}
}
