package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/kardex-textil/internal/interfaces/http"
	"github.com/jhoicas/kardex-textil/pkg/logger"
)

type logLine struct {
	Level  string `json:"level"`
	Path   string `json:"path"`
	Status int    `json:"status"`
}

func logRequest(t *testing.T, path string) logLine {
	t.Helper()
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/falla", func(c *fiber.Ctx) error { return errors.New("sin conexión") })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)

	var line logLine
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line), buf.String())
	return line
}

func TestRequestLogger_EstadoDeRespuesta(t *testing.T) {
	line := logRequest(t, "/ok")
	assert.Equal(t, http.StatusNoContent, line.Status)
	assert.Equal(t, "info", line.Level)
}

func TestRequestLogger_RutaInexistente_404Warn(t *testing.T) {
	line := logRequest(t, "/no-existe")
	assert.Equal(t, http.StatusNotFound, line.Status)
	assert.Equal(t, "warn", line.Level)
	assert.Equal(t, "/no-existe", line.Path)
}

func TestRequestLogger_ErrorSinCodigo_500Error(t *testing.T) {
	line := logRequest(t, "/falla")
	assert.Equal(t, http.StatusInternalServerError, line.Status)
	assert.Equal(t, "error", line.Level)
}
