package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func runHandler(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid json %q: %v", raw, err)
	}
	return resp.StatusCode, body
}

func TestHandleErrorClientError(t *testing.T) {
	status, body := runHandler(t, func(c *fiber.Ctx) error {
		return HandleError(c, NewError(fiber.StatusNotFound, "Project not found", "id 42"))
	})
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	errBody := body["error"].(map[string]interface{})
	if errBody["message"] != "Project not found" {
		t.Errorf("message = %v", errBody["message"])
	}
	if errBody["details"] != "id 42" {
		t.Errorf("4xx details should survive, got %v", errBody["details"])
	}
}

func TestHandleErrorStripsServerDetails(t *testing.T) {
	status, body := runHandler(t, func(c *fiber.Ctx) error {
		return HandleError(c, WrapError(errors.New("pq: connection refused"), fiber.StatusInternalServerError, "Failed to fetch projects"))
	})
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	errBody := body["error"].(map[string]interface{})
	if details, ok := errBody["details"].(string); ok && details != "" {
		t.Errorf("5xx details must be stripped, got %q", details)
	}
}

func TestHandleErrorUnknownError(t *testing.T) {
	status, body := runHandler(t, func(c *fiber.Ctx) error {
		return HandleError(c, errors.New("boom"))
	})
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	errBody := body["error"].(map[string]interface{})
	if errBody["message"] != "Something went wrong" {
		t.Errorf("message = %v", errBody["message"])
	}
}
