package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"userdesk/internal/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorHandler(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(zap.New(core))})
	app.Get("/first", func(c *fiber.Ctx) error { return errors.New("first failure") })
	app.Get("/other", func(c *fiber.Ctx) error { return errors.New("second failure") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/first", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Server error", body["message"])
	assert.Equal(t, "first failure", body["error"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/other", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeMap(t, resp)["message"], "/missing")

	entries := logs.FilterMessage("unhandled error").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "/first", entries[0].ContextMap()["path"])
	assert.Equal(t, "GET", entries[0].ContextMap()["method"])
	assert.Equal(t, "/other", entries[1].ContextMap()["path"])
}
