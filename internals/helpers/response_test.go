package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func doRequest(t *testing.T, handler fiber.Handler) (int, envelope) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env
}

func TestSuccessEnvelope(t *testing.T) {
	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return Success(c, "OK", fiber.Map{"answer": 42})
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, fiber.StatusOK, env.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "OK", env.Message)
	assert.JSONEq(t, `{"answer":42}`, string(env.Data))
}

func TestSuccessWithCodeEnvelope(t *testing.T) {
	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return SuccessWithCode(c, fiber.StatusCreated, "Created", nil)
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, fiber.StatusCreated, env.Code)
}

func TestFiberErrorsUseEnvelope(t *testing.T) {
	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "Record already exists")
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Record already exists", env.Message)
}

func TestValidationErrorEnvelope(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Role  string `validate:"required,oneof=Admin Teacher Student"`
	}
	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return ValidationError(c, Validate.Struct(payload{Email: "nope", Role: "Janitor"}))
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Equal(t, "email", env.Errors["Email"])
	assert.Equal(t, "oneof", env.Errors["Role"])
}

func TestDateHelpers(t *testing.T) {
	parsed, err := ParseDate("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", FormatDate(parsed))

	_, err = ParseDate("29-08-2026")
	assert.Error(t, err)

	noon := time.Date(2026, 8, 29, 12, 34, 56, 789, time.UTC)
	assert.Equal(t, parsed, TruncateToDay(noon))
}
